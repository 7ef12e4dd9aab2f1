package effects

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("snowfall", func() effect.Effect { return newSnowfall() })
}

type flake struct {
	x, y  float64
	drift float64
	speed float64
	size  float64
}

// snowfall drifts flakes of varying depth over a dusk gradient; slower,
// dimmer flakes read as farther away.
type snowfall struct {
	width  int
	height int
	flakes []flake
	rng    *rand.Rand
	wind   float64
}

func newSnowfall() *snowfall {
	return &snowfall{rng: newRNG(), wind: 0}
}

func (s *snowfall) Name() string { return "Snowfall" }

func (s *snowfall) Init(width, height int) {
	s.width = width
	s.height = height
	s.flakes = make([]flake, width)
	for i := range s.flakes {
		s.flakes[i] = s.spawn()
		s.flakes[i].y = s.rng.Float64() * float64(height)
	}
}

func (s *snowfall) spawn() flake {
	depth := s.rng.Float64() // 0 far .. 1 near
	return flake{
		x:     s.rng.Float64() * float64(s.width),
		y:     -2,
		drift: s.rng.Float64()*2 - 1,
		speed: 3 + depth*10,
		size:  depth,
	}
}

func (s *snowfall) Update(t, dt float64, fb *core.Framebuffer) {
	for y := 0; y < s.height; y++ {
		v := uint8(8 + 26*float64(y)/float64(s.height))
		row := fb.Pix[y*s.width : (y+1)*s.width]
		for x := range row {
			row[x] = core.RGB{R: v / 2, G: v / 2, B: v}
		}
	}

	for i := range s.flakes {
		f := &s.flakes[i]
		f.y += f.speed * dt
		f.x += (f.drift*math.Sin(t+f.x*0.05) + s.wind*f.speed*0.3) * dt * 4
		if f.y >= float64(s.height) {
			*f = s.spawn()
		}

		b := uint8(120 + f.size*135)
		c := core.RGB{R: b, G: b, B: b}
		x, y := int(f.x), int(f.y)
		fb.Set(x, y, c)
		if f.size > 0.7 {
			fb.Set(x+1, y, c)
		}
	}
}

func (s *snowfall) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "wind", Min: -1, Max: 1, Value: s.wind, Step: 0.1},
	}
}

func (s *snowfall) SetParam(name string, value float64) {
	if name == "wind" {
		s.wind = core.Clamp(value, -1, 1)
	}
}
