package engine

import (
	"testing"

	"github.com/vovakirdan/termdemo/internal/core"
)

func solidFrame(n int, c core.RGB) []core.RGB {
	pix := make([]core.RGB, n)
	for i := range pix {
		pix[i] = c
	}
	return pix
}

func TestBlendEndpoints(t *testing.T) {
	const w, h = 8, 6
	from := solidFrame(w*h, core.RGB{R: 200, G: 40, B: 10})
	to := solidFrame(w*h, core.RGB{R: 0, G: 160, B: 255})
	out := make([]core.RGB, w*h)

	kinds := []TransitionKind{
		TransitionCut, TransitionFade, TransitionDissolve,
		TransitionWipeLeft, TransitionWipeDown,
	}
	for _, kind := range kinds {
		Blend(kind, from, to, out, w, h, 0)
		for i := range out {
			if out[i] != from[i] {
				t.Errorf("%v at progress 0: pixel %d = %v, expected outgoing %v", kind, i, out[i], from[i])
				break
			}
		}

		Blend(kind, from, to, out, w, h, 1)
		for i := range out {
			if out[i] != to[i] {
				t.Errorf("%v at progress 1: pixel %d = %v, expected incoming %v", kind, i, out[i], to[i])
				break
			}
		}
	}
}

func TestBlendProgressClamped(t *testing.T) {
	const w, h = 4, 4
	from := solidFrame(w*h, core.RGB{R: 100})
	to := solidFrame(w*h, core.RGB{B: 100})
	out := make([]core.RGB, w*h)

	Blend(TransitionDissolve, from, to, out, w, h, -2)
	if out[0] != from[0] {
		t.Errorf("negative progress should yield outgoing frame, got %v", out[0])
	}
	Blend(TransitionDissolve, from, to, out, w, h, 5)
	if out[0] != to[0] {
		t.Errorf("progress above 1 should yield incoming frame, got %v", out[0])
	}
}

func TestDissolveMidpoint(t *testing.T) {
	const w, h = 4, 4
	from := solidFrame(w*h, core.RGB{R: 0, G: 100, B: 200})
	to := solidFrame(w*h, core.RGB{R: 200, G: 0, B: 100})
	out := make([]core.RGB, w*h)

	Blend(TransitionDissolve, from, to, out, w, h, 0.5)
	want := core.RGB{R: 100, G: 50, B: 150}
	for i := range out {
		if out[i] != want {
			t.Errorf("dissolve midpoint: pixel %d = %v, expected %v", i, out[i], want)
			break
		}
	}
}

func TestCutSwitchesAtHalfway(t *testing.T) {
	const w, h = 4, 4
	from := solidFrame(w*h, core.RGB{R: 255})
	to := solidFrame(w*h, core.RGB{B: 255})
	out := make([]core.RGB, w*h)

	Blend(TransitionCut, from, to, out, w, h, 0.49)
	if out[0] != from[0] {
		t.Errorf("cut at 0.49 = %v, expected outgoing", out[0])
	}
	Blend(TransitionCut, from, to, out, w, h, 0.5)
	if out[0] != to[0] {
		t.Errorf("cut at 0.5 = %v, expected incoming", out[0])
	}
}

func TestFadePassesThroughBlack(t *testing.T) {
	const w, h = 4, 4
	from := solidFrame(w*h, core.RGB{R: 255, G: 255, B: 255})
	to := solidFrame(w*h, core.RGB{R: 10, G: 200, B: 10})
	out := make([]core.RGB, w*h)

	Blend(TransitionFade, from, to, out, w, h, 0.5)
	if out[0] != (core.RGB{}) {
		t.Errorf("fade midpoint = %v, expected black", out[0])
	}
}

func TestWipeLeftBoundary(t *testing.T) {
	const w, h = 10, 4
	from := solidFrame(w*h, core.RGB{R: 255})
	to := solidFrame(w*h, core.RGB{B: 255})
	out := make([]core.RGB, w*h)

	Blend(TransitionWipeLeft, from, to, out, w, h, 0.5)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want := from[0]
			if x < w/2 {
				want = to[0]
			}
			if out[y*w+x] != want {
				t.Errorf("wipe-left at (%d, %d) = %v, expected %v", x, y, out[y*w+x], want)
			}
		}
	}
}

func TestWipeDownBoundary(t *testing.T) {
	const w, h = 4, 10
	from := solidFrame(w*h, core.RGB{R: 255})
	to := solidFrame(w*h, core.RGB{B: 255})
	out := make([]core.RGB, w*h)

	Blend(TransitionWipeDown, from, to, out, w, h, 0.5)
	for y := 0; y < h; y++ {
		want := from[0]
		if y < h/2 {
			want = to[0]
		}
		for x := 0; x < w; x++ {
			if out[y*w+x] != want {
				t.Errorf("wipe-down at (%d, %d) = %v, expected %v", x, y, out[y*w+x], want)
			}
		}
	}
}

func TestParseTransitionKind(t *testing.T) {
	tests := []struct {
		in   string
		want TransitionKind
		ok   bool
	}{
		{"cut", TransitionCut, true},
		{"fade", TransitionFade, true},
		{"dissolve", TransitionDissolve, true},
		{"wipe-left", TransitionWipeLeft, true},
		{"wipeleft", TransitionWipeLeft, true},
		{"wipe-down", TransitionWipeDown, true},
		{"WIPE-DOWN", TransitionWipeDown, true},
		{"sparkle", TransitionDissolve, false},
		{"", TransitionDissolve, false},
	}
	for _, tt := range tests {
		got, ok := ParseTransitionKind(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseTransitionKind(%q) = (%v, %v), expected (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
