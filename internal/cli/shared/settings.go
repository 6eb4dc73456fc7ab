package shared

import (
	"fmt"
	"io"
	"os"

	"github.com/c4framework/c4validate/internal/config"
	"github.com/c4framework/c4validate/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// LoadConfig loads the layered configuration and applies any global flags the
// user set explicitly on the command line. A config file or environment value
// that fails to load or validate is reported on stderr and the built-in
// defaults are used instead, so the checks still run.
func LoadConfig(cmd *cobra.Command) *config.Configuration {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; using default configuration\n", err)
		cfg = config.Default()
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("no-color") {
		cfg.NoColor, _ = flags.GetBool("no-color")
	}
	if flags.Changed("progress") {
		cfg.ShowProgress, _ = flags.GetBool("progress")
	}
	if flags.Changed("fail-on-warnings") {
		cfg.FailOnWarnings, _ = flags.GetBool("fail-on-warnings")
	}
	return cfg
}

// NewLogger builds the logger selected by the --debug flag.
func NewLogger(cmd *cobra.Command) (*zap.Logger, error) {
	debug, _ := cmd.Flags().GetBool("debug")
	logger, err := logging.New(debug)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return logger, nil
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}
