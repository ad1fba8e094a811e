package cmd

import (
	"testing"

	"github.com/grovetools/hyprdispatch/errors"
	"github.com/grovetools/hyprdispatch/pkg/action"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (Invocation, error) {
	t.Helper()
	return ParseArgs(NewFlagSet(), args)
}

func TestParseArgsPreservesOrder(t *testing.T) {
	inv, err := parse(t, "--workspace", "2", "--fullscreen", "toggle", "--monitor", "DP-1", "--move-window", "4", "--print-signature")
	require.NoError(t, err)

	assert.Equal(t, []action.Action{
		action.Workspace{Target: "2"},
		action.Fullscreen{Mode: action.FullscreenToggle},
		action.Monitor{Target: "DP-1"},
		action.MoveWindow{Target: "4"},
		action.PrintSignature{},
	}, inv.Queue.Actions())
}

func TestParseArgsReversedOrder(t *testing.T) {
	inv, err := parse(t, "--print-signature", "--workspace", "1")
	require.NoError(t, err)
	assert.Equal(t, []action.Kind{action.KindPrintSignature, action.KindWorkspace}, inv.Queue.Kinds())
}

func TestParseArgsEqualsSyntax(t *testing.T) {
	spaced, err := parse(t, "--workspace", "3")
	require.NoError(t, err)
	joined, err := parse(t, "--workspace=3")
	require.NoError(t, err)
	assert.Equal(t, spaced.Queue.Actions(), joined.Queue.Actions())
}

func TestParseArgsRepeatedFlags(t *testing.T) {
	inv, err := parse(t, "--workspace", "1", "--workspace", "2", "--workspace", "1")
	require.NoError(t, err)
	assert.Equal(t, []action.Action{
		action.Workspace{Target: "1"},
		action.Workspace{Target: "2"},
		action.Workspace{Target: "1"},
	}, inv.Queue.Actions())
}

func TestParseArgsRelativeWorkspace(t *testing.T) {
	inv, err := parse(t, "--workspace", "-1")
	require.NoError(t, err)
	assert.Equal(t, []action.Action{action.Workspace{Target: "-1"}}, inv.Queue.Actions())
}

func TestParseArgsEmpty(t *testing.T) {
	inv, err := parse(t)
	require.NoError(t, err)
	assert.True(t, inv.Queue.Empty())
	assert.False(t, inv.Help)
}

func TestParseArgsUnknownOption(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		token string
	}{
		{"unknown long flag", []string{"--workspace", "1", "--bogus"}, "--bogus"},
		{"unknown with value", []string{"--frobnicate=3"}, "--frobnicate=3"},
		{"unknown shorthand", []string{"-x"}, "-x"},
		{"positional", []string{"stray"}, "stray"},
		{"bare double dash prefix", []string{"--=1"}, "--=1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeUnknownOption))
			assert.Contains(t, err.Error(), tt.token)
		})
	}
}

func TestParseArgsMissingValue(t *testing.T) {
	tests := []struct {
		name string
		args []string
		flag string
	}{
		{"at end", []string{"--monitor"}, "--monitor"},
		{"followed by flag", []string{"--monitor", "--workspace", "1"}, "--monitor"},
		{"config shorthand", []string{"-c"}, "-c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeUnknownOption))
			assert.Contains(t, err.Error(), tt.flag)
		})
	}
}

func TestParseArgsEmptyTarget(t *testing.T) {
	inv, err := parse(t, "--workspace", "")
	require.NoError(t, err)
	assert.Equal(t, []action.Action{action.Workspace{Target: ""}}, inv.Queue.Actions())
}

func TestParseArgsKeepsInvalidFullscreenMode(t *testing.T) {
	// Validation happens at dispatch time, in queue order.
	inv, err := parse(t, "--fullscreen", "spin")
	require.NoError(t, err)
	assert.Equal(t, []action.Action{action.Fullscreen{Mode: "spin"}}, inv.Queue.Actions())
}

func TestParseArgsDoubleDash(t *testing.T) {
	inv, err := parse(t, "--workspace", "1", "--", "--bogus", "stray", "--help")
	require.NoError(t, err)
	assert.False(t, inv.Help)
	assert.Equal(t, []action.Kind{action.KindWorkspace}, inv.Queue.Kinds())
}

func TestParseArgsHelpWins(t *testing.T) {
	for _, args := range [][]string{
		{"--help"},
		{"-h"},
		{"--workspace", "1", "--help"},
		{"--bogus", "-h"},
		{"--fullscreen", "spin", "--help", "--monitor"},
	} {
		inv, err := parse(t, args...)
		require.NoError(t, err, "args %v", args)
		assert.True(t, inv.Help, "args %v", args)
		assert.True(t, inv.Queue.Empty())
	}
}

func TestParseArgsAmbientFlags(t *testing.T) {
	inv, err := parse(t, "-v", "-c", "/tmp/hd.yml", "--workspace", "1")
	require.NoError(t, err)
	assert.True(t, inv.Verbose)
	assert.Equal(t, "/tmp/hd.yml", inv.ConfigPath)
	assert.Equal(t, 1, inv.Queue.Len())

	inv, err = parse(t, "--version")
	require.NoError(t, err)
	assert.True(t, inv.Version)
}

func TestParseArgsPrintSignatureFalse(t *testing.T) {
	inv, err := parse(t, "--print-signature=false", "--workspace", "1")
	require.NoError(t, err)
	assert.Equal(t, []action.Kind{action.KindWorkspace}, inv.Queue.Kinds())
}
