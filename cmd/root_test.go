package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/grovetools/hyprdispatch/config"
	"github.com/grovetools/hyprdispatch/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	tool   *testutil.FakeTool
	vars   map[string]string
	stdout bytes.Buffer
	stderr bytes.Buffer
}

// newHarness points the control tool at a fake hyprctl through a config
// file. failArgs is passed to testutil.NewFakeTool.
func newHarness(t *testing.T, failArgs string) *harness {
	t.Helper()

	tool := testutil.NewFakeTool(t, "hyprctl", failArgs)
	cfgPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(fmt.Sprintf("control_tool: %s\n", tool.Path)), 0644))

	return &harness{
		tool: tool,
		vars: map[string]string{
			config.EnvConfigFile: cfgPath,
			"XDG_CONFIG_HOME":    t.TempDir(),
		},
	}
}

func (h *harness) run(args ...string) int {
	return Execute(context.Background(), args, Options{
		Env:    config.NewEnvironment(h.vars),
		Stdout: &h.stdout,
		Stderr: &h.stderr,
	})
}

func TestPrintSignatureFromEnvironment(t *testing.T) {
	h := newHarness(t, "")
	h.vars[config.EnvInstanceSignature] = "abc"

	code := h.run("--print-signature")

	assert.Equal(t, 0, code)
	assert.Equal(t, "HYPRLAND_INSTANCE_SIGNATURE=abc\n", h.stdout.String())
	assert.Empty(t, h.tool.Calls(t))
}

func TestDiscoveredSessionIsExportedToTool(t *testing.T) {
	h := newHarness(t, "")
	h.vars[config.EnvRuntimeDir] = testutil.RuntimeDir(t, "zeta", "alpha")

	code := h.run("--workspace", "1", "--print-signature")

	require.Equal(t, 0, code, h.stderr.String())
	assert.Equal(t, []string{"alpha|dispatch workspace 1"}, h.tool.Calls(t))
	assert.Equal(t, "→ Switching to workspace 1\nHYPRLAND_INSTANCE_SIGNATURE=alpha\n", h.stdout.String())
}

func TestEnvironmentSignatureWinsOverDiscovery(t *testing.T) {
	h := newHarness(t, "")
	h.vars[config.EnvInstanceSignature] = "explicit"
	h.vars[config.EnvRuntimeDir] = testutil.RuntimeDir(t, "alpha")

	require.Equal(t, 0, h.run("--monitor", "DP-1"), h.stderr.String())
	assert.Equal(t, []string{"explicit|dispatch focusmonitor DP-1"}, h.tool.Calls(t))
}

func TestActionsRunInOrder(t *testing.T) {
	h := newHarness(t, "")
	h.vars[config.EnvInstanceSignature] = "sig"

	code := h.run("--move-window", "4", "--fullscreen", "enable", "--workspace", "4", "--monitor", "1")

	require.Equal(t, 0, code, h.stderr.String())
	assert.Equal(t, []string{
		"sig|dispatch movetoworkspace 4",
		"sig|dispatch fullscreen enable",
		"sig|dispatch workspace 4",
		"sig|dispatch focusmonitor 1",
	}, h.tool.Calls(t))
	assert.Equal(t, "→ Moving window to workspace 4\n"+
		"→ Setting fullscreen: enable\n"+
		"→ Switching to workspace 4\n"+
		"→ Focusing monitor 1\n", h.stdout.String())
}

func TestNoSession(t *testing.T) {
	t.Run("runtime dir unset", func(t *testing.T) {
		h := newHarness(t, "")
		code := h.run("--workspace", "1")
		assert.Equal(t, 1, code)
		assert.Contains(t, h.stderr.String(), "Error:")
		assert.Contains(t, h.stderr.String(), "$XDG_RUNTIME_DIR/hypr")
		assert.Empty(t, h.tool.Calls(t))
	})

	t.Run("runtime dir missing", func(t *testing.T) {
		h := newHarness(t, "")
		base := t.TempDir()
		h.vars[config.EnvRuntimeDir] = base
		code := h.run("--print-signature")
		assert.Equal(t, 1, code)
		assert.Contains(t, h.stderr.String(), filepath.Join(base, "hypr"))
		assert.Empty(t, h.stdout.String())
	})

	t.Run("runtime dir empty", func(t *testing.T) {
		h := newHarness(t, "")
		h.vars[config.EnvRuntimeDir] = testutil.RuntimeDir(t)
		assert.Equal(t, 1, h.run())
		assert.Contains(t, h.stderr.String(), "Error:")
	})
}

func TestInvalidFullscreenModeRunsNothing(t *testing.T) {
	h := newHarness(t, "")
	h.vars[config.EnvInstanceSignature] = "sig"

	code := h.run("--fullscreen", "spin")

	assert.Equal(t, 1, code)
	assert.Empty(t, h.tool.Calls(t))
	assert.Contains(t, h.stderr.String(), "Error:")
	assert.Contains(t, h.stderr.String(), `"spin"`)
	assert.Contains(t, h.stderr.String(), "enable, disable, toggle")
}

func TestFailureShortCircuits(t *testing.T) {
	h := newHarness(t, "dispatch workspace 2")
	h.vars[config.EnvInstanceSignature] = "sig"

	code := h.run("--workspace", "1", "--workspace", "2", "--workspace", "3")

	assert.Equal(t, 1, code)
	assert.Equal(t, []string{
		"sig|dispatch workspace 1",
		"sig|dispatch workspace 2",
	}, h.tool.Calls(t))
	assert.NotContains(t, h.stdout.String(), "workspace 3")
	assert.Contains(t, h.stderr.String(), "dispatch workspace 2")
	assert.Contains(t, h.stderr.String(), "fake failure")
}

func TestLaterInvalidActionStopsAfterEarlierOnes(t *testing.T) {
	h := newHarness(t, "")
	h.vars[config.EnvInstanceSignature] = "sig"

	code := h.run("--workspace", "1", "--fullscreen", "spin", "--workspace", "2")

	assert.Equal(t, 1, code)
	assert.Equal(t, []string{"sig|dispatch workspace 1"}, h.tool.Calls(t))
}

func TestZeroActions(t *testing.T) {
	h := newHarness(t, "")
	h.vars[config.EnvRuntimeDir] = testutil.RuntimeDir(t, "inst")

	code := h.run()

	assert.Equal(t, 0, code)
	assert.Equal(t, "HYPRLAND_INSTANCE_SIGNATURE=inst\nNo actions requested.\n", h.stdout.String())
	assert.Empty(t, h.tool.Calls(t))
}

func TestHelpExitsBeforeAnythingElse(t *testing.T) {
	for _, args := range [][]string{
		{"--help"},
		{"--workspace", "1", "-h"},
		{"--bogus", "--help"},
	} {
		h := newHarness(t, "")
		// No session and a missing tool would both fail a real run.
		h.vars[config.EnvConfigFile] = filepath.Join(t.TempDir(), "missing.yml")

		code := h.run(args...)

		assert.Equal(t, 0, code, "args %v", args)
		assert.Contains(t, h.stdout.String(), "USAGE")
		assert.Contains(t, h.stdout.String(), "--fullscreen <mode>")
		assert.Empty(t, h.stderr.String())
		assert.Empty(t, h.tool.Calls(t))
	}
}

func TestVersion(t *testing.T) {
	h := newHarness(t, "")
	assert.Equal(t, 0, h.run("--version"))
	assert.Contains(t, h.stdout.String(), ProgramName)
}

func TestUnknownOptionExitCode(t *testing.T) {
	h := newHarness(t, "")
	h.vars[config.EnvInstanceSignature] = "sig"

	code := h.run("--workspace", "1", "--bogus")

	assert.Equal(t, 2, code)
	assert.Contains(t, h.stderr.String(), "--bogus")
	assert.Empty(t, h.tool.Calls(t))
}

func TestToolNotFoundBeforeSessionResolution(t *testing.T) {
	h := newHarness(t, "")
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`control_tool = "hyprctl-definitely-missing"`+"\n"), 0644))
	h.vars[config.EnvConfigFile] = cfgPath

	code := h.run("--workspace", "1")

	assert.Equal(t, 127, code)
	assert.Contains(t, h.stderr.String(), "hyprctl-definitely-missing")
	assert.NotContains(t, h.stderr.String(), "XDG_RUNTIME_DIR")
}

func TestExplicitConfigFlag(t *testing.T) {
	h := newHarness(t, "")
	h.vars[config.EnvInstanceSignature] = "sig"

	missing := filepath.Join(t.TempDir(), "nope.yml")
	assert.Equal(t, 1, h.run("--config", missing, "--workspace", "1"))
	assert.Contains(t, h.stderr.String(), missing)
	assert.Empty(t, h.tool.Calls(t))
}

func TestInvalidConfig(t *testing.T) {
	h := newHarness(t, "")
	h.vars[config.EnvInstanceSignature] = "sig"
	cfgPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("control_tool: 42\n"), 0644))
	h.vars[config.EnvConfigFile] = cfgPath

	assert.Equal(t, 1, h.run("--workspace", "1"))
	assert.Contains(t, h.stderr.String(), "invalid configuration")
}

func TestVerboseLogsToStderr(t *testing.T) {
	h := newHarness(t, "")
	h.vars[config.EnvRuntimeDir] = testutil.RuntimeDir(t, "b", "a")

	require.Equal(t, 0, h.run("-v", "--workspace", "1"))
	assert.Contains(t, h.stderr.String(), "Discovered session")
	assert.NotContains(t, h.stdout.String(), "Discovered session")
}
