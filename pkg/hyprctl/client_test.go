package hyprctl

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/grovetools/hyprdispatch/errors"
	"github.com/grovetools/hyprdispatch/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func TestNewClientToolNotFound(t *testing.T) {
	_, err := NewClient(filepath.Join(t.TempDir(), "hyprctl"), quietLogger())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeToolNotFound))
}

func TestNewClientOnPath(t *testing.T) {
	tool := testutil.NewFakeTool(t, "hyprctl", "")
	t.Setenv("PATH", tool.Dir)

	client, err := NewClient("hyprctl", quietLogger())
	require.NoError(t, err)
	assert.Equal(t, tool.Path, client.Tool())
}

func TestDispatchPassesArgumentsAndEnv(t *testing.T) {
	tool := testutil.NewFakeTool(t, "hyprctl", "")
	client, err := NewClient(tool.Path, quietLogger())
	require.NoError(t, err)

	client, err = client.WithEnv("HYPRLAND_INSTANCE_SIGNATURE=sig123")
	require.NoError(t, err)

	res, err := client.Dispatch(context.Background(), "workspace", "3")
	require.NoError(t, err)
	assert.True(t, res.Success())
	assert.Equal(t, "ok\n", res.Stdout)

	assert.Equal(t, []string{"sig123|dispatch workspace 3"}, tool.Calls(t))
}

func TestWithEnvDoesNotMutateOriginal(t *testing.T) {
	tool := testutil.NewFakeTool(t, "hyprctl", "")
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "")

	base, err := NewClient(tool.Path, quietLogger())
	require.NoError(t, err)
	_, err = base.WithEnv("HYPRLAND_INSTANCE_SIGNATURE=other")
	require.NoError(t, err)

	_, err = base.Run(context.Background(), "dispatch", "focusmonitor", "DP-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"|dispatch focusmonitor DP-1"}, tool.Calls(t))
}

func TestWithEnvRejectsMalformed(t *testing.T) {
	tool := testutil.NewFakeTool(t, "hyprctl", "")
	client, err := NewClient(tool.Path, quietLogger())
	require.NoError(t, err)

	_, err = client.WithEnv("not-an-assignment")
	assert.Error(t, err)
}

func TestRunReportsExitCode(t *testing.T) {
	tool := testutil.NewFakeTool(t, "hyprctl", "dispatch workspace 3")
	client, err := NewClient(tool.Path, quietLogger())
	require.NoError(t, err)

	res, err := client.Dispatch(context.Background(), "workspace", "3")
	require.NoError(t, err)
	assert.Equal(t, 1, res.ExitCode)
	assert.Contains(t, res.Stderr, "fake failure")
}

func TestDispatchValidation(t *testing.T) {
	tool := testutil.NewFakeTool(t, "hyprctl", "")
	client, err := NewClient(tool.Path, quietLogger())
	require.NoError(t, err)

	_, err = client.Dispatch(context.Background(), "Work Space", "3")
	assert.Error(t, err)

	_, err = client.Dispatch(context.Background(), "workspace", "3\n4")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidArgument))

	assert.Empty(t, tool.Calls(t))
}
