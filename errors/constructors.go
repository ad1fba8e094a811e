package errors

import (
	"fmt"
	"os/exec"
	"strings"
)

// ToolNotFound reports that the control tool is not on PATH.
func ToolNotFound(tool string, err error) *DispatchError {
	return Wrap(err, ErrCodeToolNotFound, fmt.Sprintf("control tool %q not found in PATH", tool)).
		WithDetail("tool", tool)
}

// NoSession reports that no compositor session could be determined.
// runtimeDir is the directory that discovery expected to find.
func NoSession(runtimeDir, reason string) *DispatchError {
	return New(ErrCodeNoSession,
		fmt.Sprintf("no Hyprland session found: %s (expected runtime directory: %s)", reason, runtimeDir)).
		WithDetail("runtimeDir", runtimeDir).
		WithDetail("reason", reason)
}

// UnknownOption reports an unrecognized or malformed invocation argument.
func UnknownOption(token string) *DispatchError {
	return New(ErrCodeUnknownOption, fmt.Sprintf("unknown option: %s", token)).
		WithDetail("token", token)
}

// MissingValue reports a flag given without its required value.
func MissingValue(flag string) *DispatchError {
	return New(ErrCodeUnknownOption, fmt.Sprintf("option %s requires a value", flag)).
		WithDetail("token", flag)
}

// InvalidArgument reports a value rejected by validation. allowed may be
// empty when the value is not drawn from an enumerated set.
func InvalidArgument(what, value string, allowed ...string) *DispatchError {
	msg := fmt.Sprintf("invalid %s %q", what, value)
	if len(allowed) > 0 {
		msg += fmt.Sprintf(" (allowed: %s)", strings.Join(allowed, ", "))
	}
	e := New(ErrCodeInvalidArgument, msg).WithDetail("value", value)
	if len(allowed) > 0 {
		e = e.WithDetail("allowed", allowed)
	}
	return e
}

// EmptyArgument reports a required value that was given as an empty string.
func EmptyArgument(what string) *DispatchError {
	return New(ErrCodeInvalidArgument, fmt.Sprintf("%s must not be empty", what)).
		WithDetail("value", "")
}

// ExternalInvocationFailed reports a control tool invocation that exited
// non-zero. stderr is included in the message when present.
func ExternalInvocationFailed(cmd string, exitCode int, stderr string) *DispatchError {
	msg := fmt.Sprintf("command failed: %s (exit code %d)", cmd, exitCode)
	if s := strings.TrimSpace(stderr); s != "" {
		msg += ": " + s
	}
	return New(ErrCodeExternalInvocationFailed, msg).
		WithDetail("command", cmd).
		WithDetail("exitCode", exitCode).
		WithDetail("stderr", stderr)
}

// CommandFailed wraps an error from starting or running a command.
func CommandFailed(cmd string, err error) *DispatchError {
	e := Wrap(err, ErrCodeExternalInvocationFailed, fmt.Sprintf("command failed: %s", cmd)).
		WithDetail("command", cmd)

	// Extract exit code if available
	if exitErr, ok := err.(*exec.ExitError); ok {
		e = e.WithDetail("exitCode", exitErr.ExitCode())
	}

	return e
}

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *DispatchError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(path string, err error) *DispatchError {
	return Wrap(err, ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", path)).
		WithDetail("path", path)
}
