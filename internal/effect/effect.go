// Package effect defines the capability contract every visual effect
// implements and a global registry for effect factories. Effects contain
// pure pixel math with no external dependencies (especially no Bubble Tea);
// the platform handles input, timing and compositing.
package effect

import "github.com/vovakirdan/termdemo/internal/core"

// Effect is the flat capability interface all effects implement. Effects
// are self-contained: no effect observes another effect's state, and every
// Update call must write every pixel of the framebuffer.
type Effect interface {
	// Name returns the display name shown on the HUD.
	Name() string

	// Init (re)allocates internal state for the given logical canvas size.
	// Called at startup and again on every resize; it must be safe to call
	// repeatedly.
	Init(width, height int)

	// Update renders one frame. t is seconds since this effect was last
	// activated (not wall clock, so pausing and transitions are seamless);
	// dt is the fixed simulation step. The framebuffer is owned by the
	// effect for the duration of the call.
	Update(t, dt float64, fb *core.Framebuffer)

	// Params returns the tunable parameters in display order. The list may
	// be empty; names stay stable identifiers between calls.
	Params() []core.ParamDesc

	// SetParam adjusts a parameter by name. Out-of-range values are clamped
	// to the descriptor's range; unknown names are ignored. Never fatal.
	SetParam(name string, value float64)
}

// NoParams is embedded by effects without tunable parameters.
type NoParams struct{}

// Params reports an empty parameter list.
func (NoParams) Params() []core.ParamDesc { return nil }

// SetParam ignores all adjustments.
func (NoParams) SetParam(string, float64) {}
