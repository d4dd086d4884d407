package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// Reporter provides progress feedback while categories are scanned.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// stderrIsTerminal is replaced in tests.
var stderrIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// NewReporter returns a TerminalReporter if stderr is an interactive terminal,
// or a CIReporter when stderr is redirected or a CI environment variable is
// set. A quiet reporter discards everything.
func NewReporter(quiet bool) Reporter {
	if quiet {
		return Discard{}
	}
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" || !stderrIsTerminal() {
		return &CIReporter{Out: os.Stderr}
	}
	return &TerminalReporter{}
}

// TerminalReporter displays a progress bar in the terminal.
type TerminalReporter struct {
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Scanning categories"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int, message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Set(current)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints line-by-line progress suitable for CI logs.
type CIReporter struct {
	Out   io.Writer
	total int
}

func (r *CIReporter) Start(total int) {
	r.total = total
	fmt.Fprintf(r.Out, "Scanning %d categories\n", total)
}

func (r *CIReporter) Update(current int, message string) {
	fmt.Fprintf(r.Out, "[%d/%d] %s\n", current, r.total, message)
}

func (r *CIReporter) Finish() {
	fmt.Fprintln(r.Out, "Sidebar scan complete")
}

// Discard ignores all progress.
type Discard struct{}

func (Discard) Start(int) {}
func (Discard) Update(int, string) {}
func (Discard) Finish() {}
