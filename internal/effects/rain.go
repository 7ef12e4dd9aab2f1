package effects

import (
	"math/rand"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("rain", func() effect.Effect { return newRain() })
}

type raindrop struct {
	x, y  float64
	speed float64
}

// rain renders slanted falling streaks over a night gradient.
type rain struct {
	width  int
	height int
	drops  []raindrop
	rng    *rand.Rand
	amount float64
	wind   float64
}

func newRain() *rain {
	return &rain{rng: newRNG(), amount: 1.0, wind: 0.3}
}

func (r *rain) Name() string { return "Rain" }

func (r *rain) Init(width, height int) {
	r.width = width
	r.height = height
	n := width * 2
	r.drops = make([]raindrop, n)
	for i := range r.drops {
		r.drops[i] = r.spawn()
		r.drops[i].y = r.rng.Float64() * float64(height)
	}
}

func (r *rain) spawn() raindrop {
	return raindrop{
		x:     r.rng.Float64() * float64(r.width),
		y:     -r.rng.Float64() * 10,
		speed: 25 + r.rng.Float64()*35,
	}
}

func (r *rain) Update(_, dt float64, fb *core.Framebuffer) {
	// Night-sky gradient.
	for y := 0; y < r.height; y++ {
		v := uint8(6 + 20*float64(y)/float64(r.height))
		row := fb.Pix[y*r.width : (y+1)*r.width]
		for x := range row {
			row[x] = core.RGB{R: v / 3, G: v / 2, B: v}
		}
	}

	active := int(float64(len(r.drops)) * r.amount / 2)
	for i := 0; i < active; i++ {
		d := &r.drops[i]
		d.y += d.speed * dt
		d.x += r.wind * d.speed * dt * 0.5
		if d.y >= float64(r.height) {
			*d = r.spawn()
		}

		x, y := int(d.x), int(d.y)
		b := uint8(120 + d.speed*2)
		fb.Set(x, y, core.RGB{R: b / 2, G: b - 40, B: b})
		fb.Set(x, y-1, core.RGB{R: b / 4, G: (b - 40) / 2, B: b / 2})
	}
}

func (r *rain) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "amount", Min: 0.1, Max: 2, Value: r.amount, Step: 0.1},
		{Name: "wind", Min: -1, Max: 1, Value: r.wind, Step: 0.1},
	}
}

func (r *rain) SetParam(name string, value float64) {
	switch name {
	case "amount":
		r.amount = core.Clamp(value, 0.1, 2)
	case "wind":
		r.wind = core.Clamp(value, -1, 1)
	}
}
