package command

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"unicode"
)

// Result is the outcome of a finished command.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the command exited zero.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// SafeBuilder provides command construction with argument validation
type SafeBuilder struct {
	validators map[string]func(string) error
	executor   Executor
}

// NewSafeBuilder creates a new SafeBuilder instance with a RealExecutor
func NewSafeBuilder() *SafeBuilder {
	return NewSafeBuilderWithExecutor(&RealExecutor{})
}

// NewSafeBuilderWithExecutor creates a new SafeBuilder with a custom Executor
func NewSafeBuilderWithExecutor(exec Executor) *SafeBuilder {
	return &SafeBuilder{
		validators: makeDefaultValidators(),
		executor:   exec,
	}
}

// Executor returns the executor commands are created with.
func (sb *SafeBuilder) Executor() Executor {
	return sb.executor
}

// makeDefaultValidators returns the default set of validators
func makeDefaultValidators() map[string]func(string) error {
	return map[string]func(string) error{
		"verb":   validateVerb,
		"target": validateTarget,
		"env":    validateEnvAssignment,
	}
}

var verbPattern = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

// validateVerb ensures control verbs and dispatcher names are plain words
func validateVerb(verb string) error {
	if verb == "" {
		return fmt.Errorf("verb cannot be empty")
	}
	if !verbPattern.MatchString(verb) {
		return fmt.Errorf("invalid verb: %q (must be lowercase letters and digits)", verb)
	}
	return nil
}

// validateTarget ensures a dispatch argument is non-empty and printable.
// Control characters would split the request on the compositor's socket.
func validateTarget(target string) error {
	if strings.TrimSpace(target) == "" {
		return fmt.Errorf("target cannot be empty")
	}
	for _, r := range target {
		if unicode.IsControl(r) {
			return fmt.Errorf("target contains control character %U", r)
		}
	}
	return nil
}

var envKeyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// validateEnvAssignment ensures an override has the form KEY=value
func validateEnvAssignment(kv string) error {
	key, _, ok := strings.Cut(kv, "=")
	if !ok {
		return fmt.Errorf("environment override %q is not KEY=value", kv)
	}
	if !envKeyPattern.MatchString(key) {
		return fmt.Errorf("invalid environment variable name: %q", key)
	}
	return nil
}

// Validate validates specific arguments
func (sb *SafeBuilder) Validate(argType string, value string) error {
	validator, exists := sb.validators[argType]
	if !exists {
		return fmt.Errorf("no validator for argument type: %s", argType)
	}

	return validator(value)
}

// Command represents a validated command ready to run
type Command struct {
	ctx      context.Context
	name     string
	args     []string
	env      []string
	executor Executor
}

// Build creates a new command. It does not start anything.
func (sb *SafeBuilder) Build(ctx context.Context, name string, args ...string) (*Command, error) {
	if name == "" {
		return nil, fmt.Errorf("command name cannot be empty")
	}

	return &Command{
		ctx:      ctx,
		name:     name,
		args:     args,
		executor: sb.executor,
	}, nil
}

// WithEnv adds environment overrides applied on top of the parent
// environment. Later entries win over earlier ones and over the parent.
func (c *Command) WithEnv(env ...string) *Command {
	c.env = append(c.env, env...)
	return c
}

// String renders the command line for diagnostics.
func (c *Command) String() string {
	return strings.Join(append([]string{c.name}, c.args...), " ")
}

// Exec creates and returns an exec.Cmd
func (c *Command) Exec() *exec.Cmd {
	cmd := c.executor.CommandContext(c.ctx, c.name, c.args...)
	if len(c.env) > 0 {
		cmd.Env = mergeEnv(os.Environ(), c.env)
	}
	return cmd
}

// Run executes the command to completion. A non-zero exit is reported in
// Result.ExitCode with a nil error; the error is reserved for failures to
// start or wait for the process.
func (c *Command) Run() (Result, error) {
	var stdout, stderr bytes.Buffer
	cmd := c.Exec()
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		result.ExitCode = -1
		return result, err
	}
	return result, nil
}

// mergeEnv returns base with overrides applied, keeping one entry per key.
func mergeEnv(base, overrides []string) []string {
	index := make(map[string]int, len(base))
	merged := make([]string, 0, len(base)+len(overrides))
	for _, kv := range append(append([]string{}, base...), overrides...) {
		key, _, _ := strings.Cut(kv, "=")
		if i, ok := index[key]; ok {
			merged[i] = kv
			continue
		}
		index[key] = len(merged)
		merged = append(merged, kv)
	}
	return merged
}
