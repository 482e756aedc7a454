package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/xll-gen/bin2c/internal/errkind"
	"github.com/xll-gen/bin2c/internal/ui"
)

// Process exit codes. Negative values follow the historical tool; the shell
// sees them modulo 256 (234 and 24).
const (
	ExitOK      = 0
	ExitUsage   = -22 // -EINVAL
	ExitFailure = -1000
)

// rootOptions holds the flag values of the root command.
type rootOptions struct {
	configPath string
	logLevel   string
	logFile    string
	noAtomic   bool
}

// newRootCmd builds the root command. It is rebuilt on every run so flag state
// never leaks between invocations.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "bin2c <path and filename>",
		Short: "Convert a binary file into a C byte array",
		Long: `bin2c reads a binary file and writes <name>.c to the current directory.
The generated file declares a uint8_t array data_<name> holding the file content
and a DATA_<NAME>_SIZE constant holding its length.

Use -- before a file name that starts with a dash: bin2c -- -logo.bin`,
		Args:          exactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "Configuration file (default .bin2c.yaml if present)")
	f.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	f.StringVar(&opts.logFile, "log-file", "", "Write logs to this file instead of stderr")
	f.BoolVar(&opts.noAtomic, "no-atomic", false, "Write the output file in place instead of via temp file and rename")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errkind.Usage(err.Error())
	})
	cmd.CompletionOptions.DisableDefaultCmd = true

	return cmd
}

// exactArgs is cobra.ExactArgs returning a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errkind.Usage(fmt.Sprintf("accepts %d arg(s), received %d", n, len(args)))
		}
		return nil
	}
}

// Execute runs the root command with the process arguments and exits.
// This is called by main.main().
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
// It is the only place where errors are reported to the user.
func run(args []string, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errkind.ErrUsage):
		ui.PrintUsage(stdout, cmd.UseLine())
		return ExitUsage
	default:
		ui.PrintError(stderr, err)
		return ExitFailure
	}
}
