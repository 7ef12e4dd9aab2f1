package effects

import (
	"math"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("dotsphere", func() effect.Effect { return newDotsphere() })
}

const sphereDots = 600

// dotsphere rotates a Fibonacci-distributed point sphere with depth
// shading.
type dotsphere struct {
	width  int
	height int
	points [][3]float64
	speed  float64
}

func newDotsphere() *dotsphere {
	d := &dotsphere{speed: 1.0}
	// Fibonacci sphere gives a near-uniform dot distribution.
	golden := math.Pi * (3 - math.Sqrt(5))
	d.points = make([][3]float64, sphereDots)
	for i := range d.points {
		y := 1 - 2*float64(i)/float64(sphereDots-1)
		r := math.Sqrt(1 - y*y)
		theta := golden * float64(i)
		d.points[i] = [3]float64{math.Cos(theta) * r, y, math.Sin(theta) * r}
	}
	return d
}

func (d *dotsphere) Name() string { return "Dot Sphere" }

func (d *dotsphere) Init(width, height int) {
	d.width = width
	d.height = height
}

func (d *dotsphere) Update(t, _ float64, fb *core.Framebuffer) {
	fb.Clear()
	t *= d.speed

	sy, cy := math.Sincos(t * 0.5)
	sx, cx := math.Sincos(t * 0.3)

	cxp := float64(d.width) / 2
	cyp := float64(d.height) / 2
	radius := math.Min(cxp, cyp) * 0.8

	for i, p := range d.points {
		// Rotate around Y then X.
		x := p[0]*cy + p[2]*sy
		z := -p[0]*sy + p[2]*cy
		y := p[1]*cx - z*sx
		z = p[1]*sx + z*cx

		// Simple perspective.
		persp := 1.5 / (2.2 + z)
		px := int(cxp + x*radius*persp)
		py := int(cyp + y*radius*persp)

		depth := core.Clamp01((1.2 - z) / 2)
		hue := math.Mod(float64(i)/float64(sphereDots)*360+t*20, 360)
		fb.Set(px, py, core.HSV(hue, 0.6, 0.25+0.75*depth))
	}
}

func (d *dotsphere) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "speed", Min: 0.2, Max: 4, Value: d.speed, Step: 0.2},
	}
}

func (d *dotsphere) SetParam(name string, value float64) {
	if name == "speed" {
		d.speed = core.Clamp(value, 0.2, 4)
	}
}
