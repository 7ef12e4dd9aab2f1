package effects

import (
	"math"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("spirograph", func() effect.Effect { return newSpirograph() })
}

// spirograph traces a hypotrochoid whose gear ratio morphs over time.
type spirograph struct {
	width  int
	height int
	canvas *trail
	ratio  float64
	pen    float64
}

func newSpirograph() *spirograph {
	return &spirograph{canvas: newTrail(), ratio: 0.55, pen: 0.8}
}

func (s *spirograph) Name() string { return "Spirograph" }

func (s *spirograph) Init(width, height int) {
	s.width = width
	s.height = height
	s.canvas.resize(width, height)
}

func (s *spirograph) Update(t, dt float64, fb *core.Framebuffer) {
	s.canvas.decay(math.Pow(0.45, dt))

	cx := float64(s.width) / 2
	cy := float64(s.height) / 2
	radius := math.Min(cx, cy) * 0.9

	// Morph the ratio slowly so the figure keeps evolving.
	r := s.ratio + 0.08*math.Sin(t*0.07)
	d := s.pen

	const samples = 160
	for i := 0; i < samples; i++ {
		u := t*2 + float64(i)*dt*2/samples
		k := (1 - r) / r
		x := (1-r)*math.Cos(u) + d*r*math.Cos(k*u)
		y := (1-r)*math.Sin(u) - d*r*math.Sin(k*u)

		px := int(cx + x*radius)
		py := int(cy + y*radius)
		hue := math.Mod(u*25+360000, 360)
		s.canvas.add(px, py, core.HSV(hue, 0.7, 1), 0.45)
	}

	s.canvas.blit(fb)
}

func (s *spirograph) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "ratio", Min: 0.15, Max: 0.85, Value: s.ratio, Step: 0.05},
		{Name: "pen", Min: 0.2, Max: 1.5, Value: s.pen, Step: 0.05},
	}
}

func (s *spirograph) SetParam(name string, value float64) {
	switch name {
	case "ratio":
		s.ratio = core.Clamp(value, 0.15, 0.85)
	case "pen":
		s.pen = core.Clamp(value, 0.2, 1.5)
	}
}
