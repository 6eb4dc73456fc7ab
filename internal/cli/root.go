// Package cli provides the Cobra-based command line for c4validate.
// The root command validates a framework root; utility subcommands render
// injected workspaces and print version information.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/c4framework/c4validate/internal/cli/shared"
	"github.com/c4framework/c4validate/internal/cli/util"
	"github.com/c4framework/c4validate/internal/config"
	"github.com/c4framework/c4validate/internal/framework"
	"github.com/c4framework/c4validate/internal/progress"
	"github.com/c4framework/c4validate/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "c4validate <framework-path>",
		Short: "Validate a C4 framework directory",
		Long: `Validate a C4 framework directory

Runs five checks against the framework root, in order: directory structure,
file naming, archetype completeness, documentation and styles. Findings are
printed as errors and warnings; the exit status is 1 when any error is found.`,
		Example: `  # Validate the framework in the current directory
  c4validate .

  # Machine-readable output
  c4validate ./c4framework --format json

  # Treat warnings as failures in CI
  c4validate ./c4framework --fail-on-warnings`,
		Args:          requireFrameworkPath,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runValidate,
	}

	rootCmd.SetFlagErrorFunc(flagError)

	rootCmd.AddGroup(&cobra.Group{ID: shared.GroupValidation, Title: "Validation:"})
	rootCmd.SetHelpCommandGroupID(shared.GroupValidation)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultLocalPath, "Path to config file")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringP("format", "f", "text", "Report format: text, json or yaml")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Bool("progress", false, "Show per-check progress on stderr")
	rootCmd.PersistentFlags().Bool("fail-on-warnings", false, "Exit with status 1 when warnings are reported")

	// Register commands from subpackages
	util.Register(rootCmd)

	return rootCmd
}

// Execute runs the root command with the process arguments and returns an
// error whose exit code is decoded by ExitCode.
func Execute() error {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err != nil && !shared.IsExitError(err) {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// requireFrameworkPath accepts exactly one positional argument. Anything else
// prints the usage line and fails before any check runs.
func requireFrameworkPath(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(cmd.ErrOrStderr(), shared.UsageLine)
		return shared.NewExitError(shared.ExitFailure)
	}
	return nil
}

// flagError reports a bad flag on the root command like any other malformed
// invocation. Subcommands keep cobra's message, which names their own usage.
func flagError(cmd *cobra.Command, err error) error {
	if cmd != cmd.Root() {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), shared.UsageLine)
	return shared.NewExitError(shared.ExitFailure)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg := shared.LoadConfig(cmd)

	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	logger, err := shared.NewLogger(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts := []framework.Option{framework.WithLogger(logger)}
	if cfg.ShowProgress {
		display := progress.NewDisplay(cmd.ErrOrStderr(), terminalCapabilities(cmd.ErrOrStderr()))
		defer display.StopSpinner()
		opts = append(opts, framework.WithObserver(display))
	}

	root := args[0]
	result := framework.New(opts...).Validate(root)

	out := cmd.OutOrStdout()
	if err := report.Write(out, result, report.Options{
		Format: format,
		Color:  !cfg.NoColor && shared.IsTerminal(out),
	}); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	logger.Debug("report written",
		zap.String("root", root),
		zap.String("format", string(format)),
		zap.Bool("fail_on_warnings", cfg.FailOnWarnings))

	if result.HasErrors() || (cfg.FailOnWarnings && result.HasWarnings()) {
		return shared.NewExitError(shared.ExitFailure)
	}
	return nil
}

func terminalCapabilities(w io.Writer) progress.TerminalCapabilities {
	f, ok := w.(*os.File)
	if !ok {
		return progress.TerminalCapabilities{}
	}
	return progress.DetectTerminalCapabilities(f)
}
