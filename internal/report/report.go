// Package report renders a framework ValidationResult for humans (coloured
// text) or machines (JSON, YAML).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/c4framework/c4validate/internal/framework"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats in help order.
func Formats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML)}
}

// ParseFormat converts a flag or config value into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid format %q (valid: %s)", s, strings.Join(Formats(), ", "))
	}
}

// Title is the first line of the text report.
const Title = "🔍 C4 Framework Validation Results"

// SuccessMessage is printed when no errors and no warnings were recorded.
const SuccessMessage = "✅ Framework validation passed!"

const separatorWidth = 40

// Options controls rendering.
type Options struct {
	Format Format
	Color  bool // Only meaningful for FormatText
}

// Write renders result to w in the requested format.
func Write(w io.Writer, result *framework.ValidationResult, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		return WriteJSON(w, result)
	case FormatYAML:
		return WriteYAML(w, result)
	default:
		return WriteText(w, result, opts.Color)
	}
}

// WriteText prints the title, one section per non-empty bucket, and the
// success line when there are neither errors nor warnings.
func WriteText(w io.Writer, result *framework.ValidationResult, useColor bool) error {
	errHeader := palette(useColor, color.FgRed, color.Bold)
	warnHeader := palette(useColor, color.FgYellow, color.Bold)
	infoHeader := palette(useColor, color.FgCyan, color.Bold)
	success := palette(useColor, color.FgGreen, color.Bold)

	var sb strings.Builder
	sb.WriteString(Title + "\n")
	sb.WriteString(strings.Repeat("=", separatorWidth) + "\n")

	writeSection(&sb, errHeader.Sprint("❌ ERRORS:"), result.Errors)
	writeSection(&sb, warnHeader.Sprint("⚠️  WARNINGS:"), result.Warnings)
	writeSection(&sb, infoHeader.Sprint("ℹ️  INFO:"), result.Info)

	if result.Passed() {
		sb.WriteString("\n" + success.Sprint(SuccessMessage) + "\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeSection(sb *strings.Builder, header string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString("\n" + header + "\n")
	for _, item := range items {
		fmt.Fprintf(sb, "  • %s\n", item)
	}
}

// palette builds a colour whose state does not depend on the global
// color.NoColor detection.
func palette(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// WriteJSON encodes result as indented JSON. Empty buckets encode as [].
func WriteJSON(w io.Writer, result *framework.ValidationResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(normalize(result)); err != nil {
		return fmt.Errorf("encoding json report: %w", err)
	}
	return nil
}

// WriteYAML encodes result as YAML. Empty buckets encode as [].
func WriteYAML(w io.Writer, result *framework.ValidationResult) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(normalize(result)); err != nil {
		return fmt.Errorf("encoding yaml report: %w", err)
	}
	return enc.Close()
}

func normalize(r *framework.ValidationResult) *framework.ValidationResult {
	out := framework.NewValidationResult()
	out.Errors = append(out.Errors, r.Errors...)
	out.Warnings = append(out.Warnings, r.Warnings...)
	out.Info = append(out.Info, r.Info...)
	return out
}
