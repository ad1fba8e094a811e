// Package session determines which Hyprland instance hyprdispatch talks to.
//
// An explicit HYPRLAND_INSTANCE_SIGNATURE always wins. Without one, the
// first entry (lexical order) of $XDG_RUNTIME_DIR/hypr is used. That
// tie-break is deterministic; it does not look at which instance is newest
// or active.
package session

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/grovetools/hyprdispatch/config"
	"github.com/grovetools/hyprdispatch/errors"
	"github.com/grovetools/hyprdispatch/pkg/paths"
	"github.com/sirupsen/logrus"
)

// Source records where a session identifier came from.
type Source string

const (
	SourceEnvironment Source = "environment"
	SourceDiscovered  Source = "discovered"
)

// Session is a resolved compositor instance.
type Session struct {
	// Signature is the instance identifier, used verbatim.
	Signature string
	// Source is how Signature was obtained.
	Source Source
	// RuntimeDir is the discovery directory that was consulted, empty when
	// the environment supplied the signature.
	RuntimeDir string
}

// ChildEnv returns the environment overrides that make spawned control
// tool processes target this session.
func (s *Session) ChildEnv() []string {
	return []string{s.EnvLine()}
}

// EnvLine renders the signature as KEY=value.
func (s *Session) EnvLine() string {
	return fmt.Sprintf("%s=%s", config.EnvInstanceSignature, s.Signature)
}

// Resolver resolves the session for one invocation.
type Resolver struct {
	env    config.Environment
	logger *logrus.Entry
}

// NewResolver creates a Resolver over an environment snapshot.
func NewResolver(env config.Environment, logger *logrus.Entry) *Resolver {
	return &Resolver{env: env, logger: logger}
}

// Resolve returns the session identifier, or a NO_SESSION error naming the
// runtime directory it expected.
func (r *Resolver) Resolve() (*Session, error) {
	if sig := r.env.Get(config.EnvInstanceSignature); sig != "" {
		r.logger.WithField("signature", sig).Debug("Using session from environment")
		return &Session{Signature: sig, Source: SourceEnvironment}, nil
	}

	runtimeDir := paths.CompositorRuntimeDir(r.env.LookupFunc())
	if runtimeDir == "" {
		return nil, errors.NoSession(
			"$"+config.EnvRuntimeDir+"/"+paths.CompositorSubdir,
			config.EnvInstanceSignature+" and "+config.EnvRuntimeDir+" are not set",
		)
	}

	info, err := os.Stat(runtimeDir)
	if err != nil {
		return nil, errors.NoSession(runtimeDir, "runtime directory does not exist")
	}
	if !info.IsDir() {
		return nil, errors.NoSession(runtimeDir, "runtime path is not a directory")
	}

	candidates, err := listCandidates(runtimeDir)
	if err != nil {
		return nil, errors.NoSession(runtimeDir, fmt.Sprintf("cannot list runtime directory: %v", err))
	}
	if len(candidates) == 0 {
		return nil, errors.NoSession(runtimeDir, "runtime directory is empty")
	}

	sig := candidates[0]
	entry := r.logger.WithField("signature", sig).WithField("runtimeDir", runtimeDir)
	if len(candidates) > 1 {
		// Several instances may be running; only the first is targeted.
		entry = entry.WithField("skipped", strings.Join(candidates[1:], ","))
	}
	entry.Debug("Discovered session in runtime directory")

	return &Session{Signature: sig, Source: SourceDiscovered, RuntimeDir: runtimeDir}, nil
}

// listCandidates returns the visible entries of dir in lexical order.
func listCandidates(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
