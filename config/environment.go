package config

import (
	"os"
	"strings"

	"github.com/grovetools/hyprdispatch/pkg/paths"
)

// Environment variables read by hyprdispatch.
const (
	EnvInstanceSignature = "HYPRLAND_INSTANCE_SIGNATURE"
	EnvRuntimeDir        = "XDG_RUNTIME_DIR"
	EnvConfigFile        = "HYPRDISPATCH_CONFIG"
	EnvLogLevel          = "HYPRDISPATCH_LOG_LEVEL"
)

// Environment is an immutable snapshot of environment variables. It is
// captured once at startup and passed explicitly to the components that
// need it.
type Environment struct {
	vars map[string]string
}

// NewEnvironment returns an Environment holding a copy of vars.
func NewEnvironment(vars map[string]string) Environment {
	copied := make(map[string]string, len(vars))
	for k, v := range vars {
		copied[k] = v
	}
	return Environment{vars: copied}
}

// EnvironmentFromOS snapshots the current process environment.
func EnvironmentFromOS() Environment {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return Environment{vars: vars}
}

// Get returns the value of key, or "" when unset.
func (e Environment) Get(key string) string {
	return e.vars[key]
}

// Lookup returns the value of key and whether it was set.
func (e Environment) Lookup(key string) (string, bool) {
	v, ok := e.vars[key]
	return v, ok
}

// LookupFunc adapts the snapshot for the paths package.
func (e Environment) LookupFunc() paths.LookupFunc {
	return e.Get
}
