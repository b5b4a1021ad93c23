package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/noah-isme/matricula-cli/internal/app"
	appErrors "github.com/noah-isme/matricula-cli/pkg/errors"
	"github.com/noah-isme/matricula-cli/pkg/export"
)

var (
	reportFormat string
	reportOut    string

	reportCmd = &cobra.Command{
		Use:   "report",
		Short: "Relational reports over the enrollment ledger",
	}

	reportCoursesCmd = &cobra.Command{
		Use:   "courses <student-id>",
		Short: "Courses a student is enrolled in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				r, aerr := a.ReportService.CoursesOfStudent(args[0])
				if aerr != nil {
					return renderReportError(aerr)
				}
				return emitReport(a, r.Dataset())
			})
		},
	}

	reportStudentsCmd = &cobra.Command{
		Use:   "students <course-id>",
		Short: "Students enrolled in a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				r, aerr := a.ReportService.StudentsOfCourse(args[0])
				if aerr != nil {
					return renderReportError(aerr)
				}
				return emitReport(a, r.Dataset())
			})
		},
	}

	reportCreditsCmd = &cobra.Command{
		Use:   "credits <student-id>",
		Short: "Credit total of a student's most recent enrollment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				r, aerr := a.ReportService.CreditLoad(args[0])
				if aerr != nil {
					return renderReportError(aerr)
				}
				return emitReport(a, r.Dataset())
			})
		},
	}
)

func init() {
	reportCmd.PersistentFlags().StringVar(&reportFormat, "format", "table", "output format: table, csv or pdf")
	reportCmd.PersistentFlags().StringVar(&reportOut, "out", "", "export file name (default derived from the report title)")
	reportCmd.AddCommand(reportCoursesCmd, reportStudentsCmd, reportCreditsCmd)
}

func renderReportError(err *appErrors.Error) error {
	fmt.Fprintln(os.Stderr, styleError.Render("✗ "+err.Message))
	return errRendered
}

// emitReport prints the dataset to the terminal or exports it to a file
// under the configured exports directory.
func emitReport(a *app.App, d export.Dataset) error {
	if reportFormat == "table" {
		fmt.Println(styleHeader.Render(d.Title))
		fmt.Print(renderTable(d.Headers, d.Rows))
		return nil
	}

	renderer, err := export.ByFormat(reportFormat)
	if err != nil {
		return err
	}
	data, err := renderer.Render(d)
	if err != nil {
		return err
	}
	store, err := export.NewStore(a.Config.Exports.Dir)
	if err != nil {
		return err
	}
	name := reportOut
	if name == "" {
		name = slugify(d.Title) + "." + renderer.Ext()
	}
	path, err := store.Save(name, data)
	if err != nil {
		return err
	}
	fmt.Println(styleSuccess.Render("✓ report written to " + path))
	return nil
}

func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "_")
}
