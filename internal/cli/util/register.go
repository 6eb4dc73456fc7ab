// Package util provides utility CLI commands for c4validate.
// Includes: inject, version
package util

import (
	"github.com/c4framework/c4validate/internal/cli/shared"
	"github.com/spf13/cobra"
)

// Register adds all utility commands to the root command.
// This function is called from the root CLI package during initialization.
func Register(rootCmd *cobra.Command) {
	if !rootCmd.ContainsGroup(shared.GroupUtility) {
		rootCmd.AddGroup(&cobra.Group{ID: shared.GroupUtility, Title: "Utility Commands:"})
	}
	rootCmd.AddCommand(NewInjectCmd())
	rootCmd.AddCommand(NewVersionCmd())
}
