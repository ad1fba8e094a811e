// Package hyprctl runs the Hyprland control tool.
package hyprctl

import (
	"context"
	"fmt"

	"github.com/grovetools/hyprdispatch/command"
	"github.com/grovetools/hyprdispatch/errors"
	"github.com/sirupsen/logrus"
)

// Client invokes the control tool. A Client is immutable; WithEnv returns
// a copy.
type Client struct {
	builder *command.SafeBuilder
	tool    string // resolved path of the executable
	env     []string
	logger  *logrus.Entry
}

// NewClient locates tool (a name looked up on PATH, or a path) and returns
// a client for it. A missing tool is a TOOL_NOT_FOUND error.
func NewClient(tool string, logger *logrus.Entry) (*Client, error) {
	return NewClientWithBuilder(tool, command.NewSafeBuilder(), logger)
}

// NewClientWithBuilder is NewClient with a caller-supplied builder.
func NewClientWithBuilder(tool string, builder *command.SafeBuilder, logger *logrus.Entry) (*Client, error) {
	path, err := builder.Executor().LookPath(tool)
	if err != nil {
		return nil, errors.ToolNotFound(tool, err)
	}
	logger.WithField("path", path).Debug("Found control tool")

	return &Client{
		builder: builder,
		tool:    path,
		logger:  logger,
	}, nil
}

// Tool returns the resolved executable path.
func (c *Client) Tool() string {
	return c.tool
}

// WithEnv returns a client whose processes also receive env, given as
// KEY=value entries.
func (c *Client) WithEnv(env ...string) (*Client, error) {
	for _, kv := range env {
		if err := c.builder.Validate("env", kv); err != nil {
			return nil, err
		}
	}
	clone := *c
	clone.env = append(append([]string(nil), c.env...), env...)
	return &clone, nil
}

// Run invokes the tool with verb and args and waits for it to exit. A
// non-zero exit is returned in the Result, not as an error.
func (c *Client) Run(ctx context.Context, verb string, args ...string) (command.Result, error) {
	if err := c.builder.Validate("verb", verb); err != nil {
		return command.Result{}, err
	}
	for _, arg := range args {
		if err := c.builder.Validate("target", arg); err != nil {
			return command.Result{}, errors.InvalidArgument(verb+" argument", arg)
		}
	}

	cmd, err := c.builder.Build(ctx, c.tool, append([]string{verb}, args...)...)
	if err != nil {
		return command.Result{}, fmt.Errorf("failed to build command: %w", err)
	}
	cmd = cmd.WithEnv(c.env...)

	c.logger.WithField("command", cmd.String()).Debug("Running control tool")
	res, err := cmd.Run()
	if err != nil {
		return res, errors.CommandFailed(cmd.String(), err)
	}
	c.logger.WithField("exitCode", res.ExitCode).Debug("Control tool finished")
	return res, nil
}

// Dispatch runs "dispatch <dispatcher> <arg>".
func (c *Client) Dispatch(ctx context.Context, dispatcher, arg string) (command.Result, error) {
	if err := c.builder.Validate("verb", dispatcher); err != nil {
		return command.Result{}, err
	}
	return c.Run(ctx, "dispatch", dispatcher, arg)
}
