package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Kanagawa palette
const (
	colorOrange = "#FFA066"
	colorBlue   = "#7FB4CA"
	colorCyan   = "#7E9CD8"
	colorViolet = "#957FB8"
	colorRed    = "#FF5D62"
	colorGreen  = "#98BB6C"
	colorMuted  = "#727169"
)

// Styles is the set of lipgloss styles used for terminal output.
type Styles struct {
	Title   lipgloss.Style
	Section lipgloss.Style
	Command lipgloss.Style
	Flag    lipgloss.Style
	Accent  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Italic  lipgloss.Style
}

// NewRenderer returns a lipgloss renderer for w. Writers that are not
// terminals get the ASCII profile so no escape codes are emitted.
func NewRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if !isTerminal(w) {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// NewStyles builds Styles bound to a renderer.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color(colorOrange)),
		Section: r.NewStyle().Italic(true).Foreground(lipgloss.Color(colorOrange)),
		Command: r.NewStyle().Bold(true).Foreground(lipgloss.Color(colorBlue)),
		Flag:    r.NewStyle().Foreground(lipgloss.Color(colorViolet)),
		Accent:  r.NewStyle().Foreground(lipgloss.Color(colorCyan)),
		Success: r.NewStyle().Foreground(lipgloss.Color(colorGreen)),
		Error:   r.NewStyle().Bold(true).Foreground(lipgloss.Color(colorRed)),
		Muted:   r.NewStyle().Foreground(lipgloss.Color(colorMuted)),
		Italic:  r.NewStyle().Italic(true),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
