package main

import (
	"github.com/spf13/cobra"

	"github.com/noah-isme/matricula-cli/internal/app"
	"github.com/noah-isme/matricula-cli/internal/service"
)

var (
	enrollCourses []string
	enrollTerm    string

	enrollCmd = &cobra.Command{
		Use:   "enroll <student-id>",
		Short: "Enroll a student into courses for an academic term",
		Long:  "Records an enrollment linking one student to a set of courses for one term.\nUnknown course ids are dropped with a notice; the enrollment is refused when\nno valid course id remains.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				o := a.EnrollmentService.Enroll(service.EnrollRequest{
					StudentID: args[0],
					CourseIDs: enrollCourses,
					Term:      enrollTerm,
				})
				return finishMutation(o, a.SaveEnrollments)
			})
		},
	}
)

func init() {
	enrollCmd.Flags().StringSliceVar(&enrollCourses, "course", nil, "course id, repeatable (e.g. --course C001 --course C002)")
	enrollCmd.Flags().StringVar(&enrollTerm, "term", "", "academic term label (e.g. 2025-01)")
}
