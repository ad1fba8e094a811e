package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

const maxWidth = 72
const minWidth = 40

// getTerminalWidth returns the terminal width capped at maxWidth. Writers
// that are not terminals get maxWidth.
func getTerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return maxWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width < minWidth {
		return maxWidth
	}
	if width > maxWidth {
		return maxWidth
	}
	return width
}

// wrapText wraps text to the specified width, preserving existing line breaks.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = maxWidth
	}

	var result []string
	for _, paragraph := range strings.Split(text, "\n") {
		if len(paragraph) <= width {
			result = append(result, paragraph)
			continue
		}

		var line string
		for _, word := range strings.Fields(paragraph) {
			if line == "" {
				line = word
			} else if len(line)+1+len(word) <= width {
				line += " " + word
			} else {
				result = append(result, line)
				line = word
			}
		}
		if line != "" {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}

// SetStyledHelp applies the styled help layout to a command.
func SetStyledHelp(cmd *cobra.Command) {
	cmd.SetHelpFunc(styledHelpFunc)
	cmd.SetUsageFunc(styledUsageFunc)
}

// styledUsageFunc prints nothing; errors are reported by ErrorHandler.
func styledUsageFunc(cmd *cobra.Command) error {
	return nil
}

// renderExamples styles example lines with muted comments and styled commands.
func renderExamples(w io.Writer, s Styles, examples string, program string) {
	for _, line := range strings.Split(examples, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			fmt.Fprintln(w)
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			fmt.Fprintln(w, " "+s.Muted.Render(trimmed))
		} else {
			fmt.Fprintln(w, " "+styleCommandLine(s, trimmed, program))
		}
	}
}

// styleCommandLine applies styling to different parts of a command example.
func styleCommandLine(s Styles, line, program string) string {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return line
	}

	result := make([]string, 0, len(parts))
	for i, part := range parts {
		switch {
		case i == 0 && part == program:
			result = append(result, s.Command.Render(part))
		case strings.HasPrefix(part, "-"):
			result = append(result, s.Flag.Render(part))
		default:
			result = append(result, part)
		}
	}
	return "  " + strings.Join(result, " ")
}

func styledHelpFunc(cmd *cobra.Command, args []string) {
	w := cmd.OutOrStdout()
	s := NewStyles(NewRenderer(w))
	width := getTerminalWidth(w) - 2

	fmt.Fprintln(w, " "+s.Title.Render(strings.ToUpper(cmd.CommandPath())))

	if cmd.Short != "" {
		for _, line := range strings.Split(wrapText(cmd.Short, width), "\n") {
			fmt.Fprintln(w, " "+s.Italic.Render(line))
		}
	}
	if cmd.Long != "" && cmd.Long != cmd.Short {
		fmt.Fprintln(w)
		for _, line := range strings.Split(wrapText(cmd.Long, width), "\n") {
			fmt.Fprintln(w, " "+line)
		}
	}

	fmt.Fprintln(w, "\n "+s.Section.Render("USAGE"))
	fmt.Fprintf(w, " %s\n", cmd.UseLine())

	var visibleFlags []*pflag.Flag
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Hidden {
			visibleFlags = append(visibleFlags, f)
		}
	})

	if len(visibleFlags) > 0 {
		fmt.Fprintln(w, "\n "+s.Section.Render("FLAGS"))
		maxFlagLen := 0
		for _, f := range visibleFlags {
			if l := len(formatFlagName(f)); l > maxFlagLen {
				maxFlagLen = l
			}
		}
		for _, f := range visibleFlags {
			flagStr := formatFlagName(f)
			padding := strings.Repeat(" ", maxFlagLen-len(flagStr))
			indent := strings.Repeat(" ", maxFlagLen+3)

			_, plainUsage := pflag.UnquoteUsage(f)
			usage, choices := parseChoices(plainUsage)
			fmt.Fprintf(w, " %s%s  %s\n", s.Flag.Render(flagStr), padding, usage)
			for _, choice := range choices {
				fmt.Fprintf(w, " %s  %s\n", indent, s.Muted.Render("• "+choice))
			}
		}
	}

	if cmd.Example != "" {
		fmt.Fprintln(w, "\n "+s.Section.Render("EXAMPLES"))
		renderExamples(w, s, cmd.Example, cmd.Name())
	}
}

// formatFlagName returns a formatted flag string like "-c, --config <path>".
func formatFlagName(f *pflag.Flag) string {
	name := fmt.Sprintf("    --%s", f.Name)
	if f.Shorthand != "" {
		name = fmt.Sprintf("-%s, --%s", f.Shorthand, f.Name)
	}
	if f.NoOptDefVal == "" {
		varname, _ := pflag.UnquoteUsage(f)
		if varname == "" {
			varname = "value"
		}
		name += " <" + varname + ">"
	}
	return name
}

// parseChoices extracts choices from a flag usage string in the inline
// form "description: x, y, z". At least three choices are required.
func parseChoices(usage string) (description string, choices []string) {
	colonIdx := strings.Index(usage, ": ")
	if colonIdx == -1 {
		return usage, nil
	}

	choicesStr := usage[colonIdx+2:]
	if !strings.Contains(choicesStr, ", ") {
		return usage, nil
	}

	parts := strings.Split(choicesStr, ", ")
	if len(parts) < 3 {
		return usage, nil
	}

	for i, p := range parts {
		p = strings.TrimPrefix(p, "or ")
		parts[i] = strings.TrimSpace(p)
	}

	return usage[:colonIdx+1], parts
}
