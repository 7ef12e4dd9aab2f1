package effects

import (
	"testing"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func TestCatalogRegistered(t *testing.T) {
	for _, id := range Order() {
		if !effect.Exists(id) {
			t.Errorf("catalog id %q is not registered", id)
		}
	}
}

func TestPlaylistComplete(t *testing.T) {
	playlist, err := Playlist()
	if err != nil {
		t.Fatalf("Playlist() error: %v", err)
	}
	if len(playlist) != len(Order()) {
		t.Fatalf("Playlist() has %d effects, expected %d", len(playlist), len(Order()))
	}
	for i, e := range playlist {
		if e.Name() == "" {
			t.Errorf("effect %q has an empty display name", Order()[i])
		}
	}
}

// TestFullCoverage checks that every effect overwrites the whole buffer on
// each update: stale pixels from a previous scene must never survive.
func TestFullCoverage(t *testing.T) {
	sentinel := core.RGB{R: 123, G: 45, B: 67}

	for _, id := range Order() {
		e, err := effect.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) error: %v", id, err)
		}

		const w, h = 40, 24
		e.Init(w, h)
		fb := core.NewFramebuffer(w, h)

		// Run a few frames so canvas-based effects settle, then check the
		// frame after a sentinel fill.
		var tt float64
		for i := 0; i < 5; i++ {
			tt += core.FixedStep
			e.Update(tt, core.FixedStep, fb)
		}
		fb.Fill(sentinel)
		tt += core.FixedStep
		e.Update(tt, core.FixedStep, fb)

		for i, p := range fb.Pix {
			if p == sentinel {
				t.Errorf("%q left pixel %d untouched", id, i)
				break
			}
		}
	}
}

func TestInitIdempotent(t *testing.T) {
	for _, id := range Order() {
		e, err := effect.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) error: %v", id, err)
		}

		e.Init(30, 20)
		e.Init(30, 20)
		e.Init(50, 10) // resize

		fb := core.NewFramebuffer(50, 10)
		e.Update(core.FixedStep, core.FixedStep, fb) // must not panic
	}
}

func TestTinyCanvas(t *testing.T) {
	for _, id := range Order() {
		e, err := effect.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) error: %v", id, err)
		}

		e.Init(1, 1)
		fb := core.NewFramebuffer(1, 1)
		e.Update(core.FixedStep, core.FixedStep, fb) // must not panic
	}
}

func TestParamDescriptorsWellFormed(t *testing.T) {
	for _, id := range Order() {
		e, err := effect.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) error: %v", id, err)
		}
		e.Init(10, 10)

		for _, p := range e.Params() {
			if p.Name == "" {
				t.Errorf("%q has a param with an empty name", id)
			}
			if p.Min >= p.Max {
				t.Errorf("%q param %q: Min %v >= Max %v", id, p.Name, p.Min, p.Max)
			}
			if p.Value < p.Min || p.Value > p.Max {
				t.Errorf("%q param %q: Value %v outside [%v, %v]", id, p.Name, p.Value, p.Min, p.Max)
			}
			if p.Step <= 0 {
				t.Errorf("%q param %q: Step %v, expected > 0", id, p.Name, p.Step)
			}
		}
	}
}

func TestSetParamClamps(t *testing.T) {
	for _, id := range Order() {
		e, err := effect.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) error: %v", id, err)
		}
		e.Init(10, 10)

		for _, p := range e.Params() {
			e.SetParam(p.Name, p.Max+1000)
			e.SetParam(p.Name, p.Min-1000)
		}
		for _, p := range e.Params() {
			if p.Value < p.Min || p.Value > p.Max {
				t.Errorf("%q param %q: out-of-range set produced Value %v outside [%v, %v]",
					id, p.Name, p.Value, p.Min, p.Max)
			}
		}

		// Unknown names are silent no-ops.
		e.SetParam("definitely-not-a-param", 1)
	}
}
