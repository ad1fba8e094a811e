package dispatch

import (
	"context"
	"fmt"
	"io"

	"github.com/grovetools/hyprdispatch/command"
)

//go:generate mockgen -destination=mocks/mock_runner.go -package=mocks github.com/grovetools/hyprdispatch/pkg/dispatch Runner

// Runner executes the control tool with a verb and arguments and waits for
// it to finish. A non-nil error means the process could not be run at all;
// a non-zero exit is reported through Result.ExitCode.
type Runner interface {
	Run(ctx context.Context, verb string, args ...string) (command.Result, error)
}

// Reporter receives the user-facing output of a dispatch run.
type Reporter interface {
	// Progress is called before each external invocation.
	Progress(message string)
	// Result prints a machine-readable line such as KEY=value.
	Result(line string)
	// Notice prints an informational line.
	Notice(message string)
}

// WriterReporter writes unstyled lines to W.
type WriterReporter struct {
	W io.Writer
}

func (r WriterReporter) Progress(message string) { fmt.Fprintln(r.W, message) }
func (r WriterReporter) Result(line string)      { fmt.Fprintln(r.W, line) }
func (r WriterReporter) Notice(message string)   { fmt.Fprintln(r.W, message) }
