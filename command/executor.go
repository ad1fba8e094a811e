package command

import (
	"context"
	"os/exec"
)

// Executor creates exec.Cmd instances and locates binaries. The abstraction
// lets tests point commands at scripts in a temporary directory without
// touching PATH.
type Executor interface {
	// CommandContext creates a new context-aware exec.Cmd instance.
	CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd

	// LookPath resolves name the way the shell would.
	LookPath(name string) (string, error)
}

// RealExecutor is the production implementation of the Executor interface,
// which uses the standard os/exec package.
type RealExecutor struct{}

// CommandContext creates a standard context-aware exec.Cmd.
func (e *RealExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, name, args...)
}

// LookPath delegates to exec.LookPath.
func (e *RealExecutor) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
