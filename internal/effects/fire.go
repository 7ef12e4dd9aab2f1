package effects

import (
	"math/rand"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("fire", func() effect.Effect { return newFire() })
}

// fire propagates a heat field upward from randomly seeded bottom rows.
type fire struct {
	width     int
	height    int
	heat      []float64
	rng       *rand.Rand
	cooling   float64
	intensity float64
}

func newFire() *fire {
	return &fire{rng: newRNG(), cooling: 0.4, intensity: 1.0}
}

func (f *fire) Name() string { return "Fire" }

func (f *fire) Init(width, height int) {
	f.width = width
	f.height = height
	f.heat = make([]float64, width*height)
}

func (f *fire) Update(_, _ float64, fb *core.Framebuffer) {
	w, h := f.width, f.height
	if w == 0 || h < 3 {
		fb.Clear()
		return
	}

	// Seed the bottom two rows with random heat.
	for y := h - 2; y < h; y++ {
		for x := 0; x < w; x++ {
			f.heat[y*w+x] = f.rng.Float64() * f.intensity
		}
	}

	// Propagate upward; processing top-down keeps the rows below unmodified
	// for this pass.
	for y := 0; y < h-2; y++ {
		for x := 0; x < w; x++ {
			below := f.heat[(y+1)*w+x]
			left := below
			if x > 0 {
				left = f.heat[(y+1)*w+x-1]
			}
			right := below
			if x < w-1 {
				right = f.heat[(y+1)*w+x+1]
			}
			twoBelow := f.heat[(y+2)*w+x]

			avg := (below + left + right + twoBelow) / 4
			v := avg - f.cooling*0.012
			if v < 0 {
				v = 0
			}
			f.heat[y*w+x] = v
		}
	}

	for i, v := range f.heat {
		fb.Pix[i] = firePalette(v)
	}
}

func (f *fire) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "cooling", Min: 0.05, Max: 2, Value: f.cooling, Step: 0.05},
		{Name: "intensity", Min: 0.2, Max: 1.5, Value: f.intensity, Step: 0.05},
	}
}

func (f *fire) SetParam(name string, value float64) {
	switch name {
	case "cooling":
		f.cooling = core.Clamp(value, 0.05, 2)
	case "intensity":
		f.intensity = core.Clamp(value, 0.2, 1.5)
	}
}
