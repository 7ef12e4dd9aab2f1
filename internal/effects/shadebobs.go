package effects

import (
	"math"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("shadebobs", func() effect.Effect { return newShadebobs() })
}

// shadebobs moves soft additive blobs along Lissajous paths over a slowly
// fading canvas, saturating where paths cross.
type shadebobs struct {
	width  int
	height int
	canvas *trail
	count  float64
}

func newShadebobs() *shadebobs {
	return &shadebobs{canvas: newTrail(), count: 3}
}

func (s *shadebobs) Name() string { return "Shadebobs" }

func (s *shadebobs) Init(width, height int) {
	s.width = width
	s.height = height
	s.canvas.resize(width, height)
}

func (s *shadebobs) Update(t, dt float64, fb *core.Framebuffer) {
	s.canvas.decay(math.Pow(0.75, dt))

	cx := float64(s.width) / 2
	cy := float64(s.height) / 2
	r := 3

	n := int(s.count)
	for b := 0; b < n; b++ {
		fb2 := float64(b)
		x := cx + math.Sin(t*(1.1+fb2*0.25)+fb2*2.1)*cx*0.75
		y := cy + math.Cos(t*(0.9+fb2*0.31)+fb2*1.7)*cy*0.75
		hue := math.Mod(fb2*120+t*15, 360)
		col := core.HSV(hue, 0.7, 1)

		// Soft round stamp.
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				d := math.Hypot(float64(dx), float64(dy))
				if d > float64(r) {
					continue
				}
				gain := (1 - d/float64(r)) * 0.15
				s.canvas.add(int(x)+dx, int(y)+dy, col, gain)
			}
		}
	}

	s.canvas.blit(fb)
}

func (s *shadebobs) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "bobs", Min: 1, Max: 8, Value: s.count, Step: 1},
	}
}

func (s *shadebobs) SetParam(name string, value float64) {
	if name == "bobs" {
		s.count = math.Round(core.Clamp(value, 1, 8))
	}
}
