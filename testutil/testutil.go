// Package testutil holds helpers shared by hyprdispatch tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// RuntimeDir creates a temporary XDG_RUNTIME_DIR containing a hypr
// directory with one subdirectory per entry, and returns the base path.
func RuntimeDir(t *testing.T, entries ...string) string {
	t.Helper()

	base := t.TempDir()
	hyprDir := filepath.Join(base, "hypr")
	require.NoError(t, os.MkdirAll(hyprDir, 0700))
	for _, entry := range entries {
		require.NoError(t, os.MkdirAll(filepath.Join(hyprDir, entry), 0700))
	}
	return base
}

// FakeTool is a control tool stand-in written to a temporary directory.
type FakeTool struct {
	// Path is the absolute path of the executable script.
	Path string
	// Dir is the directory holding the script, suitable for PATH.
	Dir string
	// LogPath receives one line per invocation:
	// "<HYPRLAND_INSTANCE_SIGNATURE>|<arg1> <arg2> ...".
	LogPath string
}

// NewFakeTool writes an executable named name that logs each invocation.
// When an invocation's arguments equal failArgs, it prints to stderr and
// exits 1; pass "" to never fail.
func NewFakeTool(t *testing.T, name, failArgs string) *FakeTool {
	t.Helper()

	dir := t.TempDir()
	logPath := filepath.Join(dir, "calls.log")
	script := fmt.Sprintf(`#!/bin/sh
printf '%%s|%%s\n' "$HYPRLAND_INSTANCE_SIGNATURE" "$*" >> %q
if [ -n %q ] && [ "$*" = %q ]; then
  echo "fake failure: $*" >&2
  exit 1
fi
echo ok
`, logPath, failArgs, failArgs)

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return &FakeTool{Path: path, Dir: dir, LogPath: logPath}
}

// Calls returns the logged invocations in order.
func (f *FakeTool) Calls(t *testing.T) []string {
	t.Helper()

	data, err := os.ReadFile(f.LogPath)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}
