package effects

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("fireworks", func() effect.Effect { return newFireworks() })
}

type particle struct {
	x, y   float64
	vx, vy float64
	life   float64
	col    core.RGB
}

type rocket struct {
	x, y  float64
	vy    float64
	fuse  float64
	hue   float64
	alive bool
}

// fireworks launches rockets that burst into gravity-bound sparks drawn
// onto a fading trail canvas.
type fireworks struct {
	width   int
	height  int
	rockets []rocket
	sparks  []particle
	canvas  trail
	rng     *rand.Rand
	timer   float64
	rate    float64
	gravity float64
}

func newFireworks() *fireworks {
	return &fireworks{rng: newRNG(), rate: 1.0, gravity: 18}
}

func (f *fireworks) Name() string { return "Fireworks" }

func (f *fireworks) Init(width, height int) {
	f.width = width
	f.height = height
	f.canvas.resize(width, height)
	f.rockets = f.rockets[:0]
	f.sparks = f.sparks[:0]
	f.timer = 0
}

func (f *fireworks) launch() {
	f.rockets = append(f.rockets, rocket{
		x:     float64(f.width) * (0.15 + 0.7*f.rng.Float64()),
		y:     float64(f.height),
		vy:    -(float64(f.height)*0.55 + f.rng.Float64()*float64(f.height)*0.25),
		fuse:  0.8 + f.rng.Float64()*0.6,
		hue:   f.rng.Float64() * 360,
		alive: true,
	})
}

func (f *fireworks) burst(r *rocket) {
	n := 60 + f.rng.Intn(60)
	for i := 0; i < n; i++ {
		ang := f.rng.Float64() * 2 * math.Pi
		sp := f.rng.Float64() * float64(f.height) * 0.35
		f.sparks = append(f.sparks, particle{
			x:    r.x,
			y:    r.y,
			vx:   math.Cos(ang) * sp,
			vy:   math.Sin(ang) * sp,
			life: 1.2 + f.rng.Float64()*0.8,
			col:  core.HSV(r.hue+f.rng.Float64()*30-15, 0.85, 1),
		})
	}
}

func (f *fireworks) Update(_, dt float64, fb *core.Framebuffer) {
	f.canvas.decay(math.Pow(0.88, dt*60))

	f.timer -= dt
	if f.timer <= 0 {
		f.launch()
		f.timer = (0.4 + f.rng.Float64()*0.8) / f.rate
	}

	live := f.rockets[:0]
	for i := range f.rockets {
		r := &f.rockets[i]
		r.fuse -= dt
		r.y += r.vy * dt
		r.vy += f.gravity * dt * 0.5
		if r.fuse <= 0 || r.vy >= 0 {
			f.burst(r)
			continue
		}
		f.canvas.add(int(r.x), int(r.y), core.RGB{R: 255, G: 220, B: 160}, 0.8)
		live = append(live, *r)
	}
	f.rockets = live

	alive := f.sparks[:0]
	for i := range f.sparks {
		p := &f.sparks[i]
		p.life -= dt
		if p.life <= 0 {
			continue
		}
		p.x += p.vx * dt
		p.y += p.vy * dt
		p.vy += f.gravity * dt
		p.vx *= 1 - 0.6*dt
		gain := core.Clamp01(p.life)
		f.canvas.add(int(p.x), int(p.y), p.col, gain)
		alive = append(alive, *p)
	}
	f.sparks = alive

	f.canvas.blit(fb)
}

func (f *fireworks) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "rate", Min: 0.2, Max: 3, Value: f.rate, Step: 0.2},
		{Name: "gravity", Min: 5, Max: 40, Value: f.gravity, Step: 2.5},
	}
}

func (f *fireworks) SetParam(name string, value float64) {
	switch name {
	case "rate":
		f.rate = core.Clamp(value, 0.2, 3)
	case "gravity":
		f.gravity = core.Clamp(value, 5, 40)
	}
}
