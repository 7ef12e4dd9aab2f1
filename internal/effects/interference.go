package effects

import (
	"math"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("interference", func() effect.Effect { return newInterference() })
}

// interference sums circular waves from two orbiting sources.
type interference struct {
	width  int
	height int
	freq   float64
	speed  float64
}

func newInterference() *interference {
	return &interference{freq: 1.0, speed: 1.0}
}

func (e *interference) Name() string { return "Interference" }

func (e *interference) Init(width, height int) {
	e.width = width
	e.height = height
}

func (e *interference) Update(t, _ float64, fb *core.Framebuffer) {
	w := float64(e.width)
	h := float64(e.height)
	t *= e.speed

	x1 := w/2 + math.Cos(t*0.7)*w*0.3
	y1 := h/2 + math.Sin(t*0.9)*h*0.3
	x2 := w/2 + math.Cos(t*1.1+math.Pi)*w*0.3
	y2 := h/2 + math.Sin(t*0.6+math.Pi)*h*0.3

	k := 0.35 * e.freq
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			fx, fy := float64(x), float64(y)
			d1 := math.Hypot(fx-x1, fy-y1)
			d2 := math.Hypot(fx-x2, fy-y2)
			v := (math.Sin(d1*k-t*3) + math.Sin(d2*k-t*3)) * 0.5

			fb.Pix[y*e.width+x] = core.RGB{
				R: uint8((v*0.5 + 0.5) * 90),
				G: uint8((v*0.5 + 0.5) * 180),
				B: uint8((v*0.5 + 0.5) * 255),
			}
		}
	}
}

func (e *interference) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "freq", Min: 0.2, Max: 4, Value: e.freq, Step: 0.2},
		{Name: "speed", Min: 0.2, Max: 4, Value: e.speed, Step: 0.2},
	}
}

func (e *interference) SetParam(name string, value float64) {
	switch name {
	case "freq":
		e.freq = core.Clamp(value, 0.2, 4)
	case "speed":
		e.speed = core.Clamp(value, 0.2, 4)
	}
}
