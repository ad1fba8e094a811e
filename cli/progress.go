package cli

import (
	"fmt"
	"io"
)

// ProgressReporter prints dispatch progress to a writer, one line per
// step. Result lines are printed unstyled so they stay machine-readable.
type ProgressReporter struct {
	w      io.Writer
	styles Styles
}

// NewProgressReporter creates a new progress reporter
func NewProgressReporter(w io.Writer) *ProgressReporter {
	return &ProgressReporter{
		w:      w,
		styles: NewStyles(NewRenderer(w)),
	}
}

// Progress prints a step that is about to run.
func (p *ProgressReporter) Progress(message string) {
	fmt.Fprintf(p.w, "%s %s\n", p.styles.Accent.Render("→"), message)
}

// Result prints line verbatim.
func (p *ProgressReporter) Result(line string) {
	fmt.Fprintln(p.w, line)
}

// Notice prints an informational line.
func (p *ProgressReporter) Notice(message string) {
	fmt.Fprintln(p.w, p.styles.Muted.Render(message))
}
