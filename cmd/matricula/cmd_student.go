package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noah-isme/matricula-cli/internal/app"
	"github.com/noah-isme/matricula-cli/internal/service"
)

var (
	studentName  string
	studentMajor string

	studentCmd = &cobra.Command{
		Use:   "student",
		Short: "Manage students",
	}

	studentAddCmd = &cobra.Command{
		Use:   "add",
		Short: "Register a new student in a major",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				o := a.StudentService.Register(service.RegisterStudentRequest{
					Name:    studentName,
					MajorID: studentMajor,
				})
				return finishMutation(o, a.SaveStudents)
			})
		},
	}

	studentUpdateCmd = &cobra.Command{
		Use:   "update <id>",
		Short: "Update a student's name or major",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				req := service.UpdateStudentRequest{ID: args[0]}
				if cmd.Flags().Changed("name") {
					req.Name = &studentName
				}
				if cmd.Flags().Changed("major") {
					req.MajorID = &studentMajor
				}
				o := a.StudentService.Update(req)
				return finishMutation(o, a.SaveStudents)
			})
		},
	}

	studentRmCmd = &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a student with no enrollments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				o := a.StudentService.Delete(args[0])
				return finishMutation(o, a.SaveStudents)
			})
		},
	}

	studentLsCmd = &cobra.Command{
		Use:   "ls",
		Short: "List all students",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				rows := make([][]string, 0, a.Students.Len())
				for _, s := range a.Students.All() {
					rows = append(rows, []string{s.ID, s.Name, s.MajorID})
				}
				fmt.Print(renderTable([]string{"ID", "NAME", "MAJOR"}, rows))
				return nil
			})
		},
	}
)

func init() {
	studentAddCmd.Flags().StringVar(&studentName, "name", "", "student name")
	studentAddCmd.Flags().StringVar(&studentMajor, "major", "", "major id (e.g. CAR001)")
	studentUpdateCmd.Flags().StringVar(&studentName, "name", "", "new student name")
	studentUpdateCmd.Flags().StringVar(&studentMajor, "major", "", "new major id")
	studentCmd.AddCommand(studentAddCmd, studentUpdateCmd, studentRmCmd, studentLsCmd)
}
