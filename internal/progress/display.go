package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/c4framework/c4validate/internal/framework"
)

// Display renders check progress. It implements framework.Observer.
type Display struct {
	out          io.Writer
	capabilities TerminalCapabilities
	symbols      ProgressSymbols
	spinner      *spinner.Spinner
	current      CheckInfo
}

var _ framework.Observer = (*Display)(nil)

// NewDisplay creates a display writing to out (normally os.Stderr so the
// report on stdout stays clean).
func NewDisplay(out io.Writer, caps TerminalCapabilities) *Display {
	return &Display{
		out:          out,
		capabilities: caps,
		symbols:      SelectSymbols(caps),
	}
}

// CheckStarted begins displaying progress for a check
func (d *Display) CheckStarted(name string, number, total int) {
	check := CheckInfo{Name: name, Number: number, Total: total}
	if err := check.Validate(); err != nil {
		return
	}
	d.current = check

	msg := buildCheckMessage(check)

	if d.capabilities.IsTTY {
		d.spinner = spinner.New(
			spinner.CharSets[d.symbols.SpinnerSet],
			100*time.Millisecond,
			spinner.WithWriter(d.out),
		)
		d.spinner.Suffix = " " + msg
		d.spinner.Start()
		return
	}

	fmt.Fprintln(d.out, msg)
}

// CheckFinished stops the spinner and prints the check's outcome
func (d *Display) CheckFinished(name string, findings []framework.Finding) {
	d.StopSpinner()

	check := d.current
	if check.Name != name {
		check = CheckInfo{Name: name, Number: check.Number, Total: check.Total}
	}

	mark := checkmark(d.symbols, d.capabilities.SupportsColor)
	if len(findings) > 0 {
		mark = findingsMark(d.symbols, d.capabilities.SupportsColor)
	}
	fmt.Fprintf(d.out, "%s %s\n", mark, buildResultMessage(check, len(findings)))

	d.current = CheckInfo{}
}

// StopSpinner stops the spinner without printing a status line
func (d *Display) StopSpinner() {
	if d.spinner != nil {
		d.spinner.Stop()
		d.spinner = nil
	}
}
