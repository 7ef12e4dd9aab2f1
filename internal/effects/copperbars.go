package effects

import (
	"math"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("copperbars", func() effect.Effect { return newCopperbars() })
}

// copperbars bounces horizontal gradient bars over a dark backdrop, an
// Amiga copper-list staple.
type copperbars struct {
	width  int
	height int
	count  float64
	speed  float64
}

func newCopperbars() *copperbars {
	return &copperbars{count: 6, speed: 1.0}
}

func (c *copperbars) Name() string { return "Copper Bars" }

func (c *copperbars) Init(width, height int) {
	c.width = width
	c.height = height
}

func (c *copperbars) Update(t, _ float64, fb *core.Framebuffer) {
	h := float64(c.height)
	barH := math.Max(3, h/12)

	// Dark vertical backdrop gradient.
	for y := 0; y < c.height; y++ {
		g := uint8(20 * float64(y) / h)
		bg := core.RGB{R: g / 2, G: 0, B: g}
		row := fb.Pix[y*c.width : (y+1)*c.width]
		for x := range row {
			row[x] = bg
		}
	}

	n := int(c.count)
	for i := 0; i < n; i++ {
		phase := t*c.speed + float64(i)*2*math.Pi/float64(n)
		center := (math.Sin(phase)*0.5 + 0.5) * (h - barH)
		hue := math.Mod(float64(i)/float64(n)*360, 360)

		for dy := 0.0; dy < barH; dy++ {
			y := int(center + dy)
			if y < 0 || y >= c.height {
				continue
			}
			// Brightness peaks at the bar center for a rounded look.
			v := math.Sin(dy / barH * math.Pi)
			col := core.HSV(hue, 0.9, v)
			row := fb.Pix[y*c.width : (y+1)*c.width]
			for x := range row {
				if col.R > row[x].R || col.G > row[x].G || col.B > row[x].B {
					row[x] = col
				}
			}
		}
	}
}

func (c *copperbars) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "bars", Min: 2, Max: 12, Value: c.count, Step: 1},
		{Name: "speed", Min: 0.2, Max: 4, Value: c.speed, Step: 0.2},
	}
}

func (c *copperbars) SetParam(name string, value float64) {
	switch name {
	case "bars":
		c.count = math.Round(core.Clamp(value, 2, 12))
	case "speed":
		c.speed = core.Clamp(value, 0.2, 4)
	}
}
