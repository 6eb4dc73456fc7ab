package util

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/c4framework/c4validate/internal/build"
	"github.com/c4framework/c4validate/internal/cli/shared"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Box drawing characters
const (
	boxTopLeft     = "╭"
	boxTopRight    = "╮"
	boxBottomLeft  = "╰"
	boxBottomRight = "╯"
	boxHorizontal  = "─"
	boxVertical    = "│"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Display version information (v)",
		Long:    "Display version, commit, build date, and Go version information for c4validate",
		Example: `  # Show version info
  c4validate version

  # Plain output (for scripts)
  c4validate version --plain`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			noColor, _ := cmd.Flags().GetBool("no-color")
			if plain || noColor || !shared.IsTerminal(cmd.OutOrStdout()) {
				printPlainVersion(cmd.OutOrStdout())
				return
			}
			printPrettyVersion(cmd.OutOrStdout(), shared.GetTerminalWidth())
		},
	}
	cmd.GroupID = shared.GroupUtility
	cmd.Flags().BoolVar(&plain, "plain", false, "Plain output without formatting")
	return cmd
}

// printPlainVersion prints a simple version output for scripting
func printPlainVersion(out io.Writer) {
	fmt.Fprintf(out, "c4validate %s\n", build.Version)
	fmt.Fprintf(out, "commit: %s\n", build.Commit)
	fmt.Fprintf(out, "built: %s\n", build.BuildDate)
	fmt.Fprintf(out, "go: %s\n", runtime.Version())
	fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// printPrettyVersion prints the version details inside a coloured box
func printPrettyVersion(out io.Writer, termWidth int) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	white := color.New(color.FgWhite, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	info := []struct {
		label string
		value string
	}{
		{"Version", build.Version},
		{"Commit", truncateCommit(build.Commit)},
		{"Built", build.BuildDate},
		{"Go", runtime.Version()},
		{"Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
	}

	boxWidth := 44
	if termWidth < 50 {
		boxWidth = termWidth - 6
	}
	contentWidth := boxWidth - 4

	pad := ""
	if termWidth > boxWidth {
		pad = strings.Repeat(" ", (termWidth-boxWidth)/2)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, pad+cyan("c4validate")+" C4 framework validator")
	fmt.Fprintln(out, pad+boxTopLeft+strings.Repeat(boxHorizontal, boxWidth-2)+boxTopRight)
	for _, item := range info {
		label := yellow(fmt.Sprintf("%10s", item.label))
		line := fmt.Sprintf("  %s    %s", label, white(item.value))
		lineLen := 10 + 4 + len(item.value) + 2
		if lineLen < contentWidth {
			line += strings.Repeat(" ", contentWidth-lineLen)
		}
		fmt.Fprintln(out, pad+boxVertical+" "+line+" "+boxVertical)
	}
	fmt.Fprintln(out, pad+boxBottomLeft+strings.Repeat(boxHorizontal, boxWidth-2)+boxBottomRight)
	fmt.Fprintln(out)
}

// truncateCommit shortens commit hash if it's too long
func truncateCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
