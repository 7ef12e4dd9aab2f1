package effects

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("lightning", func() effect.Effect { return newLightning() })
}

// lightning strikes jagged recursive bolts with a screen flash, leaving a
// brief afterglow on a trail canvas.
type lightning struct {
	width  int
	height int
	canvas trail
	rng    *rand.Rand
	timer  float64
	flash  float64
	freq   float64
}

func newLightning() *lightning {
	return &lightning{rng: newRNG(), freq: 1.0}
}

func (l *lightning) Name() string { return "Lightning" }

func (l *lightning) Init(width, height int) {
	l.width = width
	l.height = height
	l.canvas.resize(width, height)
	l.timer = 0.5
	l.flash = 0
}

// bolt draws a segment with random lateral jitter, forking as it descends.
func (l *lightning) bolt(x0, y0, x1, y1 float64, depth int, gain float64) {
	if depth <= 0 || gain < 0.1 {
		l.line(x0, y0, x1, y1, gain)
		return
	}
	mx := (x0+x1)/2 + (l.rng.Float64()*2-1)*(y1-y0)*0.35
	my := (y0 + y1) / 2
	l.bolt(x0, y0, mx, my, depth-1, gain)
	l.bolt(mx, my, x1, y1, depth-1, gain)
	if l.rng.Float64() < 0.3 {
		fx := mx + (l.rng.Float64()*2-1)*float64(l.width)*0.2
		l.bolt(mx, my, fx, y1, depth-2, gain*0.5)
	}
}

func (l *lightning) line(x0, y0, x1, y1, gain float64) {
	steps := int(math.Hypot(x1-x0, y1-y0)) + 1
	c := core.RGB{R: 200, G: 210, B: 255}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		l.canvas.add(int(x0+(x1-x0)*t), int(y0+(y1-y0)*t), c, gain)
	}
}

func (l *lightning) Update(_, dt float64, fb *core.Framebuffer) {
	l.canvas.decay(math.Pow(0.80, dt*60))
	l.flash *= math.Pow(0.75, dt*60)

	l.timer -= dt * l.freq
	if l.timer <= 0 {
		x := float64(l.width) * (0.2 + 0.6*l.rng.Float64())
		xEnd := x + (l.rng.Float64()*2-1)*float64(l.width)*0.25
		l.bolt(x, 0, xEnd, float64(l.height-1), 5, 1.0)
		l.flash = 0.5
		l.timer = 0.8 + l.rng.Float64()*2.2
	}

	// Storm-sky base plus strike flash.
	fv := uint8(core.Clamp(l.flash*255, 0, 90))
	for y := 0; y < l.height; y++ {
		v := uint8(10 + 18*float64(y)/float64(l.height))
		row := fb.Pix[y*l.width : (y+1)*l.width]
		for x := range row {
			row[x] = core.RGB{R: v/2 + fv, G: v/2 + fv, B: v + fv}
		}
	}

	// Additive overlay of the bolt glow.
	for i := range fb.Pix {
		p := &fb.Pix[i]
		p.R = uint8(math.Min(float64(p.R)+l.canvas.r[i], 255))
		p.G = uint8(math.Min(float64(p.G)+l.canvas.g[i], 255))
		p.B = uint8(math.Min(float64(p.B)+l.canvas.b[i], 255))
	}
}

func (l *lightning) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "frequency", Min: 0.2, Max: 4, Value: l.freq, Step: 0.2},
	}
}

func (l *lightning) SetParam(name string, value float64) {
	if name == "frequency" {
		l.freq = core.Clamp(value, 0.2, 4)
	}
}
