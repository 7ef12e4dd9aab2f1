package effects

import (
	"math"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("kefrensbars", func() effect.Effect { return newKefrensbars() })
}

// kefrensbars recreates the Alcatraz "Kefrens bars": each scanline copies
// the one above it and stamps a single colored bar at a sine position,
// smearing the bars into ribbons down the screen.
type kefrensbars struct {
	width  int
	height int
	line   []core.RGB
	bars   float64
	speed  float64
}

func newKefrensbars() *kefrensbars {
	return &kefrensbars{bars: 8, speed: 1.0}
}

func (k *kefrensbars) Name() string { return "Kefrens Bars" }

func (k *kefrensbars) Init(width, height int) {
	k.width = width
	k.height = height
	k.line = make([]core.RGB, width)
}

func (k *kefrensbars) Update(t, _ float64, fb *core.Framebuffer) {
	w := k.width
	t *= k.speed

	for i := range k.line {
		k.line[i] = core.RGB{}
	}

	n := int(k.bars)
	barW := 5
	for y := 0; y < k.height; y++ {
		fy := float64(y) / float64(k.height)

		for b := 0; b < n; b++ {
			fb2 := float64(b)
			pos := 0.5 +
				0.35*math.Sin(t*1.3+fy*6+fb2*2*math.Pi/float64(n)) +
				0.1*math.Sin(t*2.1+fb2)
			x0 := int(pos*float64(w)) - barW/2

			hue := math.Mod(fb2/float64(n)*360+t*30, 360)
			for dx := 0; dx < barW; dx++ {
				x := x0 + dx
				if x < 0 || x >= w {
					continue
				}
				v := math.Sin(float64(dx) / float64(barW-1) * math.Pi)
				k.line[x] = core.HSV(hue, 0.85, 0.3+0.7*v)
			}
		}

		copy(fb.Pix[y*w:(y+1)*w], k.line)
	}
}

func (k *kefrensbars) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "bars", Min: 2, Max: 16, Value: k.bars, Step: 1},
		{Name: "speed", Min: 0.2, Max: 4, Value: k.speed, Step: 0.2},
	}
}

func (k *kefrensbars) SetParam(name string, value float64) {
	switch name {
	case "bars":
		k.bars = math.Round(core.Clamp(value, 2, 16))
	case "speed":
		k.speed = core.Clamp(value, 0.2, 4)
	}
}
