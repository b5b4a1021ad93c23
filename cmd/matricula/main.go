package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/noah-isme/matricula-cli/internal/app"
	"github.com/noah-isme/matricula-cli/internal/service"
)

// errRendered signals that the failure was already printed.
var errRendered = errors.New("operation failed")

var rootCmd = &cobra.Command{
	Use:           "matricula",
	Short:         "Manage an academic enrollment ledger backed by flat files",
	Long:          "matricula keeps students, courses, majors and enrollments in CSV/JSON flat files\nand answers relational questions over the enrollment ledger.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errRendered) {
			fmt.Fprintln(os.Stderr, styleError.Render("✗ "+err.Error()))
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(majorCmd, studentCmd, courseCmd, enrollCmd, reportCmd)
}

// withApp constructs the application state, runs fn and releases the state
// afterwards. Every subcommand goes through here.
func withApp(fn func(a *app.App) error) error {
	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

// finishMutation persists the touched collection when the operation
// succeeded and renders the outcome.
func finishMutation(o service.Outcome, save func() error) error {
	if o.OK() {
		if err := save(); err != nil {
			return err
		}
	}
	return renderOutcome(o)
}

func renderOutcome(o service.Outcome) error {
	switch o.Kind {
	case service.KindSuccess:
		fmt.Println(styleSuccess.Render("✓ " + o.Message))
		return nil
	case service.KindInfo:
		fmt.Println(styleInfo.Render("• " + o.Message))
		return nil
	default:
		fmt.Fprintln(os.Stderr, styleError.Render("✗ "+o.Message))
		return errRendered
	}
}
