package effects

import (
	"math/rand"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("water", func() effect.Effect { return newWater() })
}

// water simulates ripples with the classic two-buffer height-field method:
// each cell becomes the damped average of its neighbors minus its previous
// value. Random drops keep the surface agitated.
type water struct {
	width   int
	height  int
	cur     []float64
	prev    []float64
	rng     *rand.Rand
	acc     float64
	damping float64
	drops   float64
}

func newWater() *water {
	return &water{rng: newRNG(), damping: 0.985, drops: 1.0}
}

func (w *water) Name() string { return "Water" }

func (w *water) Init(width, height int) {
	w.width = width
	w.height = height
	w.cur = make([]float64, width*height)
	w.prev = make([]float64, width*height)
}

func (w *water) drop() {
	if w.width < 6 || w.height < 6 {
		return
	}
	x := 2 + w.rng.Intn(w.width-4)
	y := 2 + w.rng.Intn(w.height-4)
	amp := 60 + w.rng.Float64()*120
	w.cur[y*w.width+x] = amp
	w.cur[y*w.width+x+1] = amp * 0.5
	w.cur[y*w.width+x-1] = amp * 0.5
}

func (w *water) step() {
	wd, ht := w.width, w.height
	for y := 1; y < ht-1; y++ {
		for x := 1; x < wd-1; x++ {
			i := y*wd + x
			v := (w.cur[i-1]+w.cur[i+1]+w.cur[i-wd]+w.cur[i+wd])/2 - w.prev[i]
			w.prev[i] = v * w.damping
		}
	}
	w.cur, w.prev = w.prev, w.cur
}

func (w *water) Update(_, dt float64, fb *core.Framebuffer) {
	w.acc += dt * w.drops
	for w.acc >= 0.25 {
		w.acc -= 0.25
		w.drop()
	}
	w.step()

	wd := w.width
	for y := 0; y < w.height; y++ {
		for x := 0; x < wd; x++ {
			i := y*wd + x
			// Fake refraction: shade by the local height gradient.
			var gx float64
			if x > 0 && x < wd-1 {
				gx = w.cur[i+1] - w.cur[i-1]
			}
			v := core.Clamp(90+gx*3, 0, 255)
			fb.Pix[i] = core.RGB{
				R: uint8(v * 0.15),
				G: uint8(v * 0.55),
				B: uint8(core.Clamp(v*1.1+30, 0, 255)),
			}
		}
	}
}

func (w *water) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "damping", Min: 0.9, Max: 0.999, Value: w.damping, Step: 0.005},
		{Name: "drops", Min: 0.2, Max: 4, Value: w.drops, Step: 0.2},
	}
}

func (w *water) SetParam(name string, value float64) {
	switch name {
	case "damping":
		w.damping = core.Clamp(value, 0.9, 0.999)
	case "drops":
		w.drops = core.Clamp(value, 0.2, 4)
	}
}
