package util

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/c4framework/c4validate/internal/cli/shared"
	"github.com/c4framework/c4validate/internal/inject"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewInjectCmd creates the inject command. It never modifies the workspace
// file; the rendered text goes to stdout.
func NewInjectCmd() *cobra.Command {
	var frameworkDir string

	cmd := &cobra.Command{
		Use:   "inject <workspace.dsl>",
		Short: "Print a workspace with the framework includes injected",
		Long: `Print a workspace definition with the framework's archetypes, styles,
terminology and themes included.

The workspace is left untouched when injection is disabled in the config,
when it contains '` + inject.OptOutMarker + `', or when it already references the
framework. The reason is printed to stderr and the original text to stdout.`,
		Example: `  # Inject using the framework mounted next to the workspace
  c4validate inject workspace.dsl > workspace.injected.dsl

  # Use a framework checkout elsewhere
  c4validate inject workspace.dsl --framework ../c4framework`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := shared.LoadConfig(cmd)
			logger, err := shared.NewLogger(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			workspacePath := args[0]
			data, err := os.ReadFile(workspacePath)
			if err != nil {
				return fmt.Errorf("reading workspace: %w", err)
			}
			content := string(data)

			decision := inject.ShouldInject(content, inject.Options{
				Enabled:     cfg.InjectEnabled,
				AutoInclude: cfg.AutoInclude,
				Prefix:      cfg.IncludePrefix,
			})
			if !decision.Inject {
				fmt.Fprintf(cmd.ErrOrStderr(), "Skipping injection: %s\n", decision.Reason)
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			if frameworkDir == "" {
				frameworkDir = filepath.Join(filepath.Dir(workspacePath), cfg.IncludePrefix)
			}
			catalog, err := inject.Discover(frameworkDir)
			if err != nil {
				return fmt.Errorf("discovering framework files: %w", err)
			}
			if catalog.Empty() {
				logger.Warn("framework has no includable files", zap.String("framework", frameworkDir))
			}

			out := inject.NewInjector(catalog, cfg.IncludePrefix, logger).Inject(content)
			_, err = fmt.Fprint(cmd.OutOrStdout(), out.Text)
			return err
		},
	}
	cmd.GroupID = shared.GroupUtility
	cmd.Flags().StringVar(&frameworkDir, "framework", "",
		"Framework root to include (default: <include_prefix> next to the workspace)")
	return cmd
}
