package effects

import (
	"math/rand"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("starfield", func() effect.Effect { return newStarfield() })
}

const starCount = 400

type star struct {
	x, y, z float64
}

// starfield flies through a 3D star cloud projected onto the canvas.
type starfield struct {
	width  int
	height int
	stars  []star
	rng    *rand.Rand
	speed  float64
}

func newStarfield() *starfield {
	return &starfield{rng: newRNG(), speed: 1.0}
}

func (s *starfield) Name() string { return "Starfield" }

func (s *starfield) Init(width, height int) {
	s.width = width
	s.height = height
	if s.stars == nil {
		s.stars = make([]star, starCount)
		for i := range s.stars {
			s.stars[i] = s.spawn()
			s.stars[i].z = s.rng.Float64()*0.9 + 0.1
		}
	}
}

func (s *starfield) spawn() star {
	return star{
		x: s.rng.Float64()*2 - 1,
		y: s.rng.Float64()*2 - 1,
		z: 1.0,
	}
}

func (s *starfield) Update(_, dt float64, fb *core.Framebuffer) {
	fb.Clear()
	cx := float64(s.width) / 2
	cy := float64(s.height) / 2

	for i := range s.stars {
		st := &s.stars[i]
		st.z -= dt * 0.4 * s.speed
		if st.z <= 0.02 {
			*st = s.spawn()
		}

		px := int(cx + st.x/st.z*cx*0.8)
		py := int(cy + st.y/st.z*cy*0.8)
		if px < 0 || px >= s.width || py < 0 || py >= s.height {
			*st = s.spawn()
			continue
		}

		b := core.Clamp01(1.2 - st.z)
		c := uint8(b * 255)
		fb.Pix[py*s.width+px] = core.RGB{R: c, G: c, B: c}
		// Near stars get a small bright cross.
		if st.z < 0.25 {
			fb.Set(px+1, py, core.RGB{R: c, G: c, B: c})
			fb.Set(px, py+1, core.RGB{R: c, G: c, B: c})
		}
	}
}

func (s *starfield) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "speed", Min: 0.2, Max: 4, Value: s.speed, Step: 0.2},
	}
}

func (s *starfield) SetParam(name string, value float64) {
	if name == "speed" {
		s.speed = core.Clamp(value, 0.2, 4)
	}
}
