// Package action defines the operations hyprdispatch can perform against a
// compositor and the ordered queue they are executed from.
//
// Action is a closed set: only the types in this package implement it.
package action

import (
	"fmt"
	"strings"

	"github.com/grovetools/hyprdispatch/errors"
)

// Kind names an action variant.
type Kind string

const (
	KindWorkspace      Kind = "workspace"
	KindFullscreen     Kind = "fullscreen"
	KindMonitor        Kind = "monitor"
	KindMoveWindow     Kind = "move-window"
	KindPrintSignature Kind = "print-signature"
)

// Kinds lists every action kind in the order they appear in usage text.
var Kinds = []Kind{KindWorkspace, KindFullscreen, KindMonitor, KindMoveWindow, KindPrintSignature}

// Action is one requested operation.
type Action interface {
	// Kind identifies the variant.
	Kind() Kind
	// Validate checks the action's argument before anything is executed.
	Validate() error

	sealed()
}

// Workspace switches to a workspace.
type Workspace struct {
	Target string
}

// Fullscreen changes the fullscreen state of the focused window.
type Fullscreen struct {
	Mode FullscreenMode
}

// Monitor focuses a monitor by name or index.
type Monitor struct {
	Target string
}

// MoveWindow moves the focused window to a workspace.
type MoveWindow struct {
	Target string
}

// PrintSignature reports the resolved session identifier.
type PrintSignature struct{}

func (Workspace) Kind() Kind      { return KindWorkspace }
func (Fullscreen) Kind() Kind     { return KindFullscreen }
func (Monitor) Kind() Kind        { return KindMonitor }
func (MoveWindow) Kind() Kind     { return KindMoveWindow }
func (PrintSignature) Kind() Kind { return KindPrintSignature }

func (a Workspace) Validate() error    { return requireTarget("workspace", a.Target) }
func (a Fullscreen) Validate() error   { return a.Mode.Validate() }
func (a Monitor) Validate() error      { return requireTarget("monitor", a.Target) }
func (a MoveWindow) Validate() error   { return requireTarget("move-window target", a.Target) }
func (PrintSignature) Validate() error { return nil }

func (Workspace) sealed()      {}
func (Fullscreen) sealed()     {}
func (Monitor) sealed()        {}
func (MoveWindow) sealed()     {}
func (PrintSignature) sealed() {}

func (a Workspace) String() string    { return fmt.Sprintf("workspace(%s)", a.Target) }
func (a Fullscreen) String() string   { return fmt.Sprintf("fullscreen(%s)", a.Mode) }
func (a Monitor) String() string      { return fmt.Sprintf("monitor(%s)", a.Target) }
func (a MoveWindow) String() string   { return fmt.Sprintf("move-window(%s)", a.Target) }
func (PrintSignature) String() string { return "print-signature" }

func requireTarget(what, target string) error {
	if strings.TrimSpace(target) == "" {
		return errors.EmptyArgument(what)
	}
	return nil
}

// New builds the action for kind from its flag value. PrintSignature
// ignores value.
func New(kind Kind, value string) (Action, error) {
	switch kind {
	case KindWorkspace:
		return Workspace{Target: value}, nil
	case KindFullscreen:
		return Fullscreen{Mode: FullscreenMode(value)}, nil
	case KindMonitor:
		return Monitor{Target: value}, nil
	case KindMoveWindow:
		return MoveWindow{Target: value}, nil
	case KindPrintSignature:
		return PrintSignature{}, nil
	}
	return nil, fmt.Errorf("unknown action kind %q", kind)
}
