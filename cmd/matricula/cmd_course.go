package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/noah-isme/matricula-cli/internal/app"
	"github.com/noah-isme/matricula-cli/internal/service"
)

var (
	courseName    string
	courseCredits int

	courseCmd = &cobra.Command{
		Use:   "course",
		Short: "Manage courses",
	}

	courseAddCmd = &cobra.Command{
		Use:   "add",
		Short: "Register a new course",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				o := a.CourseService.Register(service.RegisterCourseRequest{
					Name:    courseName,
					Credits: courseCredits,
				})
				return finishMutation(o, a.SaveCourses)
			})
		},
	}

	courseUpdateCmd = &cobra.Command{
		Use:   "update <id>",
		Short: "Update a course's name or credits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				req := service.UpdateCourseRequest{ID: args[0]}
				if cmd.Flags().Changed("name") {
					req.Name = &courseName
				}
				if cmd.Flags().Changed("credits") {
					req.Credits = &courseCredits
				}
				o := a.CourseService.Update(req)
				return finishMutation(o, a.SaveCourses)
			})
		},
	}

	courseRmCmd = &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a course not referenced by any enrollment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				o := a.CourseService.Delete(args[0])
				return finishMutation(o, a.SaveCourses)
			})
		},
	}

	courseLsCmd = &cobra.Command{
		Use:   "ls",
		Short: "List all courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				rows := make([][]string, 0, a.Courses.Len())
				for _, c := range a.Courses.All() {
					rows = append(rows, []string{c.ID, c.Name, strconv.Itoa(c.Credits)})
				}
				fmt.Print(renderTable([]string{"ID", "NAME", "CREDITS"}, rows))
				return nil
			})
		},
	}
)

func init() {
	courseAddCmd.Flags().StringVar(&courseName, "name", "", "course name")
	courseAddCmd.Flags().IntVar(&courseCredits, "credits", 0, "credit value (>= 0)")
	courseUpdateCmd.Flags().StringVar(&courseName, "name", "", "new course name")
	courseUpdateCmd.Flags().IntVar(&courseCredits, "credits", 0, "new credit value (>= 0)")
	courseCmd.AddCommand(courseAddCmd, courseUpdateCmd, courseRmCmd, courseLsCmd)
}
