package effects

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("flowfield", func() effect.Effect { return newFlowfield() })
}

type flowParticle struct {
	x, y float64
	hue  float64
}

// flowfield advects particles through a time-varying noise field, tracing
// their paths on a slowly fading canvas.
type flowfield struct {
	width  int
	height int
	parts  []flowParticle
	canvas trail
	rng    *rand.Rand
	scale  float64
	speed  float64
}

func newFlowfield() *flowfield {
	return &flowfield{rng: newRNG(), scale: 1.0, speed: 1.0}
}

func (f *flowfield) Name() string { return "Flow Field" }

func (f *flowfield) Init(width, height int) {
	f.width = width
	f.height = height
	f.canvas.resize(width, height)
	f.parts = make([]flowParticle, 500)
	for i := range f.parts {
		f.parts[i] = f.spawn()
	}
}

func (f *flowfield) spawn() flowParticle {
	return flowParticle{
		x:   f.rng.Float64() * float64(f.width),
		y:   f.rng.Float64() * float64(f.height),
		hue: 180 + f.rng.Float64()*120,
	}
}

// angle samples the noise field; two octaves keep the streams coherent but
// not laminar.
func (f *flowfield) angle(x, y, t float64) float64 {
	s := 0.04 * f.scale
	n := valueNoise(x*s+t*0.15, y*s)
	n += 0.5 * valueNoise(x*s*2.7+31, y*s*2.7+t*0.1)
	return n * 4 * math.Pi
}

func (f *flowfield) Update(t, dt float64, fb *core.Framebuffer) {
	f.canvas.decay(math.Pow(0.965, dt*60))

	v := float64(f.height) * 0.4 * f.speed
	for i := range f.parts {
		p := &f.parts[i]
		a := f.angle(p.x, p.y, t)
		p.x += math.Cos(a) * v * dt
		p.y += math.Sin(a) * v * dt

		if p.x < 0 || p.x >= float64(f.width) || p.y < 0 || p.y >= float64(f.height) || f.rng.Float64() < 0.003 {
			*p = f.spawn()
			continue
		}
		f.canvas.add(int(p.x), int(p.y), core.HSV(math.Mod(p.hue+t*8, 360), 0.75, 1), 0.45)
	}

	f.canvas.blit(fb)
}

func (f *flowfield) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "scale", Min: 0.3, Max: 3, Value: f.scale, Step: 0.1},
		{Name: "speed", Min: 0.2, Max: 3, Value: f.speed, Step: 0.2},
	}
}

func (f *flowfield) SetParam(name string, value float64) {
	switch name {
	case "scale":
		f.scale = core.Clamp(value, 0.3, 3)
	case "speed":
		f.speed = core.Clamp(value, 0.2, 3)
	}
}
