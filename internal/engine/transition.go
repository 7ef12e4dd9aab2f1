// Package engine hosts the effect sequencer and the transition blender:
// the state machine that decides which effects run each frame and how two
// effects' outputs are composited into one framebuffer.
package engine

import (
	"strings"

	"github.com/vovakirdan/termdemo/internal/core"
)

// TransitionKind selects how two effect frames are blended during a scene
// change. All kinds share one configured duration.
type TransitionKind int

const (
	// TransitionCut switches frames at the halfway point.
	TransitionCut TransitionKind = iota
	// TransitionFade fades out to black, then in from black.
	TransitionFade
	// TransitionDissolve linearly interpolates each pixel channel.
	TransitionDissolve
	// TransitionWipeLeft reveals the incoming frame left to right.
	TransitionWipeLeft
	// TransitionWipeDown reveals the incoming frame top to bottom.
	TransitionWipeDown
)

// String returns the config-file name of the kind.
func (k TransitionKind) String() string {
	switch k {
	case TransitionCut:
		return "cut"
	case TransitionFade:
		return "fade"
	case TransitionWipeLeft:
		return "wipe-left"
	case TransitionWipeDown:
		return "wipe-down"
	default:
		return "dissolve"
	}
}

// ParseTransitionKind converts a config string to a TransitionKind.
// Returns TransitionDissolve and false for unrecognized names.
func ParseTransitionKind(s string) (TransitionKind, bool) {
	switch strings.ToLower(s) {
	case "cut":
		return TransitionCut, true
	case "fade":
		return TransitionFade, true
	case "dissolve":
		return TransitionDissolve, true
	case "wipe-left", "wipeleft":
		return TransitionWipeLeft, true
	case "wipe-down", "wipedown":
		return TransitionWipeDown, true
	default:
		return TransitionDissolve, false
	}
}

// Blend composites from and to into out according to the transition kind.
// progress is clamped to [0,1]: 0 yields the outgoing frame, 1 the incoming
// frame. All three slices must have length width*height.
func Blend(kind TransitionKind, from, to, out []core.RGB, width, height int, progress float64) {
	progress = core.Clamp01(progress)
	n := len(out)
	if len(from) < n {
		n = len(from)
	}
	if len(to) < n {
		n = len(to)
	}

	switch kind {
	case TransitionCut:
		if progress < 0.5 {
			copy(out[:n], from[:n])
		} else {
			copy(out[:n], to[:n])
		}

	case TransitionFade:
		black := core.RGB{}
		if progress < 0.5 {
			t := progress * 2
			for i := 0; i < n; i++ {
				out[i] = core.Lerp(from[i], black, t)
			}
		} else {
			t := (progress - 0.5) * 2
			for i := 0; i < n; i++ {
				out[i] = core.Lerp(black, to[i], t)
			}
		}

	case TransitionWipeLeft:
		threshold := int(float64(width) * progress)
		for i := 0; i < n; i++ {
			if i%width < threshold {
				out[i] = to[i]
			} else {
				out[i] = from[i]
			}
		}

	case TransitionWipeDown:
		threshold := int(float64(height) * progress)
		for i := 0; i < n; i++ {
			if i/width < threshold {
				out[i] = to[i]
			} else {
				out[i] = from[i]
			}
		}

	default: // dissolve
		for i := 0; i < n; i++ {
			out[i] = core.Lerp(from[i], to[i], progress)
		}
	}
}
