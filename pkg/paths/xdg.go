// Package paths provides XDG-compliant path resolution for hyprdispatch.
//
// Nothing here reads the process environment directly. Callers pass a
// LookupFunc, normally backed by a config.Environment snapshot taken once
// at startup.
//
// Resolution order for the configuration directory:
// 1. XDG_CONFIG_HOME → $XDG_CONFIG_HOME/hyprdispatch
// 2. HOME → ~/.config/hyprdispatch
package paths

import (
	"path/filepath"
)

const (
	// AppName is the directory name used under XDG base directories.
	AppName = "hyprdispatch"

	// CompositorSubdir is the fixed directory under XDG_RUNTIME_DIR where
	// Hyprland keeps one entry per running instance.
	CompositorSubdir = "hypr"
)

// LookupFunc returns the value of an environment variable, or "" if unset.
type LookupFunc func(key string) string

// getConfigHome returns the base config home directory.
func getConfigHome(lookup LookupFunc) string {
	if xdgConfigHome := lookup("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	if homeDir := lookup("HOME"); homeDir != "" {
		return filepath.Join(homeDir, ".config")
	}
	return ""
}

// ConfigDir returns the hyprdispatch configuration directory, or "" when
// neither XDG_CONFIG_HOME nor HOME is set.
func ConfigDir(lookup LookupFunc) string {
	base := getConfigHome(lookup)
	if base == "" {
		return ""
	}
	return filepath.Join(base, AppName)
}

// ConfigCandidates returns the config file paths to try, in order.
func ConfigCandidates(lookup LookupFunc) []string {
	dir := ConfigDir(lookup)
	if dir == "" {
		return nil
	}
	return []string{
		filepath.Join(dir, "config.yml"),
		filepath.Join(dir, "config.yaml"),
		filepath.Join(dir, "config.toml"),
	}
}

// CompositorRuntimeDir returns <XDG_RUNTIME_DIR>/hypr, or "" when
// XDG_RUNTIME_DIR is unset or empty.
func CompositorRuntimeDir(lookup LookupFunc) string {
	base := lookup("XDG_RUNTIME_DIR")
	if base == "" {
		return ""
	}
	return filepath.Join(base, CompositorSubdir)
}
