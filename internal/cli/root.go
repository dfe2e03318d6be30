// Package cli implements the command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/hightemp/ccgen/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// newRootCmd builds the base command with flags bound to cfg.
func newRootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ccgen",
		Short: "Country code generator - emit a Country enum from the ISO-3166-1 code table",
		Long: `ccgen downloads a public page listing ISO-3166-1 country codes, reads
the code/name pairs from its first table and prints source code defining
a Country enum with Default, Display and FromStr implementations.

Generate the Rust enum:
  ccgen > src/country.rs

Other documents:
  ccgen --format yaml
  ccgen --format jsonschema --out schema/country.json

Output is written only after the whole document has been generated.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return &exitError{code: ExitInvalidInput, err: err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.URL, "url", cfg.URL, "page listing the country codes")
	flags.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "HTTP request timeout")
	flags.StringVar(&cfg.Mode, "mode", cfg.Mode, "pairing mode: rows or lines")
	flags.StringVar(&cfg.Format, "format", cfg.Format, "output format: rust, yaml, or jsonschema")
	flags.StringVar(&cfg.Reference, "reference", cfg.Reference, "project reference credited in the header")
	flags.StringVarP(&cfg.Out, "out", "o", cfg.Out, "write to file instead of stdout")
	flags.BoolVar(&cfg.Check, "check", cfg.Check, "warn about codes that are not ISO-3166-1 alpha-2")
	flags.BoolVar(&cfg.Dump, "dump", cfg.Dump, "dump parsed pairs to stderr")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "log progress to stderr")

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &exitError{code: ExitInvalidInput, err: err}
	})

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, built %s)\n", config.AppName, Version, Commit, BuildTime)
		},
	}
}

// Execute runs the root command and exits with a non-zero code on failure.
func Execute() {
	rootCmd := newRootCmd(config.DefaultConfig())
	if err := rootCmd.Execute(); err != nil {
		exitWithCode(exitCode(err), fmt.Sprintf("Error: %v", err))
	}
}

// ExitCode constants
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitInvalidInput = 2
	ExitFetchFailed  = 3
	ExitNoTable      = 4
	ExitBadData      = 5
)

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitFailure
}

func exitWithCode(code int, msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
}
