package effects

import (
	"math"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("lissajous", func() effect.Effect { return newLissajous() })
}

// lissajous traces a glowing Lissajous curve with slowly drifting frequency
// ratio, leaving a fading trail.
type lissajous struct {
	width  int
	height int
	canvas *trail
	a      float64
	b      float64
}

func newLissajous() *lissajous {
	return &lissajous{canvas: newTrail(), a: 3, b: 4}
}

func (l *lissajous) Name() string { return "Lissajous" }

func (l *lissajous) Init(width, height int) {
	l.width = width
	l.height = height
	l.canvas.resize(width, height)
}

func (l *lissajous) Update(t, dt float64, fb *core.Framebuffer) {
	l.canvas.decay(math.Pow(0.3, dt))

	cx := float64(l.width) / 2
	cy := float64(l.height) / 2
	drift := math.Sin(t*0.1) * 0.3

	// Draw a short arc of the curve each frame; the trail joins them up.
	const samples = 120
	for s := 0; s < samples; s++ {
		u := t + float64(s)*dt/samples
		x := int(cx + math.Sin(u*l.a+drift)*cx*0.85)
		y := int(cy + math.Sin(u*l.b)*cy*0.85)
		hue := math.Mod(u*40+360000, 360)
		l.canvas.add(x, y, core.HSV(hue, 0.8, 1), 0.5)
	}

	l.canvas.blit(fb)
}

func (l *lissajous) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "freq-x", Min: 1, Max: 9, Value: l.a, Step: 1},
		{Name: "freq-y", Min: 1, Max: 9, Value: l.b, Step: 1},
	}
}

func (l *lissajous) SetParam(name string, value float64) {
	switch name {
	case "freq-x":
		l.a = math.Round(core.Clamp(value, 1, 9))
	case "freq-y":
		l.b = math.Round(core.Clamp(value, 1, 9))
	}
}
