package cli

import (
	"fmt"
	"io"

	"github.com/grovetools/hyprdispatch/errors"
)

// ErrorTag prefixes every diagnostic line.
const ErrorTag = "Error:"

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	w       io.Writer
	styles  Styles
	program string
}

// NewErrorHandler creates a new error handler writing to w.
func NewErrorHandler(w io.Writer, program string, verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		w:       w,
		styles:  NewStyles(NewRenderer(w)),
		program: program,
	}
}

// Handle prints err with a code-specific hint and returns it unchanged.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}

	de, ok := errors.As(err)
	if !ok {
		h.line(err.Error())
		return err
	}

	h.line(de.Message)

	switch de.Code {
	case errors.ErrCodeUnknownOption:
		h.hint(fmt.Sprintf("Run '%s --help' for usage.", h.program))
	case errors.ErrCodeToolNotFound:
		h.hint(fmt.Sprintf("Make sure %v is installed and on PATH, or set control_tool in the config file.", de.Details["tool"]))
	case errors.ErrCodeNoSession:
		h.hint("Is Hyprland running? Set HYPRLAND_INSTANCE_SIGNATURE to target an instance explicitly.")
	case errors.ErrCodeExternalInvocationFailed:
		h.hint("Remaining actions were not run.")
	}

	if h.Verbose {
		fmt.Fprintf(h.w, "\nError details:\n%s\n", de.ToJSON())
	}
	return err
}

func (h *ErrorHandler) line(msg string) {
	fmt.Fprintf(h.w, "%s %s\n", h.styles.Error.Render(ErrorTag), msg)
}

func (h *ErrorHandler) hint(msg string) {
	fmt.Fprintln(h.w, h.styles.Muted.Render(msg))
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeUnknownOption:
		return 2
	case errors.ErrCodeToolNotFound:
		return 127
	}
	return 1
}
