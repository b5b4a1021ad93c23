package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noah-isme/matricula-cli/internal/app"
	"github.com/noah-isme/matricula-cli/internal/service"
)

var (
	majorName string

	majorCmd = &cobra.Command{
		Use:   "major",
		Short: "Manage academic majors (carreras)",
	}

	majorAddCmd = &cobra.Command{
		Use:   "add",
		Short: "Register a new major",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				o := a.MajorService.Register(service.RegisterMajorRequest{Name: majorName})
				return finishMutation(o, a.SaveMajors)
			})
		},
	}

	majorUpdateCmd = &cobra.Command{
		Use:   "update <id>",
		Short: "Update a major's name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				req := service.UpdateMajorRequest{ID: args[0]}
				if cmd.Flags().Changed("name") {
					req.Name = &majorName
				}
				o := a.MajorService.Update(req)
				return finishMutation(o, a.SaveMajors)
			})
		},
	}

	majorRmCmd = &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a major with no students assigned",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				o := a.MajorService.Delete(args[0])
				return finishMutation(o, a.SaveMajors)
			})
		},
	}

	majorLsCmd = &cobra.Command{
		Use:   "ls",
		Short: "List all majors",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				rows := make([][]string, 0, a.Majors.Len())
				for _, m := range a.Majors.All() {
					rows = append(rows, []string{m.ID, m.Name})
				}
				fmt.Print(renderTable([]string{"ID", "NAME"}, rows))
				return nil
			})
		},
	}
)

func init() {
	majorAddCmd.Flags().StringVar(&majorName, "name", "", "major name")
	majorUpdateCmd.Flags().StringVar(&majorName, "name", "", "new major name")
	majorCmd.AddCommand(majorAddCmd, majorUpdateCmd, majorRmCmd, majorLsCmd)
}
