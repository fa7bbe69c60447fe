// Package main provides a command line tool that validates a data file
// against a rules file and prints the collected error messages.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by build
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// Exit codes
const (
	ExitSuccess          = 0
	ExitValidationFailed = 1
	ExitUsageError       = 2
)

// exitError carries the process exit code out of a command.
// A nil err means the command already reported the problem.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", ee.err)
		}
		return ee.code
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return ExitUsageError
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "datavalidator",
		Short:         "Validates data files against per-field rule chains",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(newValidateCmd(stdout, stderr))
	root.AddCommand(newVersionCmd(stdout))
	return root
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := NewPrinter(stdout)
			if format == formatJSON {
				return p.PrintJSON(map[string]string{
					"version":    version,
					"commit":     commit,
					"build_date": buildDate,
				})
			}
			p.Plainf("datavalidator version %s", version)
			p.Plainf("  Commit: %s", commit)
			p.Plainf("  Built:  %s", buildDate)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", formatText, "Output format (text|json)")
	return cmd
}
