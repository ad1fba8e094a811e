package action

import (
	"github.com/grovetools/hyprdispatch/errors"
)

// FullscreenMode is the requested fullscreen state.
type FullscreenMode string

const (
	FullscreenEnable  FullscreenMode = "enable"
	FullscreenDisable FullscreenMode = "disable"
	FullscreenToggle  FullscreenMode = "toggle"
)

// FullscreenModes is the allowed set, in display order.
var FullscreenModes = []FullscreenMode{FullscreenEnable, FullscreenDisable, FullscreenToggle}

// Validate rejects modes outside FullscreenModes.
func (m FullscreenMode) Validate() error {
	for _, allowed := range FullscreenModes {
		if m == allowed {
			return nil
		}
	}
	names := make([]string, len(FullscreenModes))
	for i, allowed := range FullscreenModes {
		names[i] = string(allowed)
	}
	return errors.InvalidArgument("fullscreen mode", string(m), names...)
}
