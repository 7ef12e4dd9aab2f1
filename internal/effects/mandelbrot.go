package effects

import (
	"math"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("mandelbrot", func() effect.Effect { return newMandelbrot() })
}

// Seahorse valley, a popular deep-zoom target.
const (
	mandelCenterX = -0.743643887037
	mandelCenterY = 0.131825904205
)

// mandelbrot cycles a zoom into the Mandelbrot set with smooth escape-time
// coloring.
type mandelbrot struct {
	width  int
	height int
	iter   float64
}

func newMandelbrot() *mandelbrot {
	return &mandelbrot{iter: 64}
}

func (m *mandelbrot) Name() string { return "Mandelbrot" }

func (m *mandelbrot) Init(width, height int) {
	m.width = width
	m.height = height
}

func (m *mandelbrot) Update(t, _ float64, fb *core.Framebuffer) {
	// Breathe in and out of the zoom instead of hitting float limits.
	cycle := math.Mod(t*0.25, 14)
	if cycle > 7 {
		cycle = 14 - cycle
	}
	scale := 3.0 * math.Pow(0.5, cycle)

	maxIter := int(m.iter)
	aspect := float64(m.width) / float64(m.height)

	for y := 0; y < m.height; y++ {
		ci := mandelCenterY + (float64(y)/float64(m.height)-0.5)*scale
		for x := 0; x < m.width; x++ {
			cr := mandelCenterX + (float64(x)/float64(m.width)-0.5)*scale*aspect

			zr, zi := 0.0, 0.0
			i := 0
			for ; i < maxIter; i++ {
				zr2, zi2 := zr*zr, zi*zi
				if zr2+zi2 > 4 {
					break
				}
				zr, zi = zr2-zi2+cr, 2*zr*zi+ci
			}

			if i == maxIter {
				fb.Pix[y*m.width+x] = core.RGB{}
				continue
			}
			// Smooth iteration count for banding-free gradients.
			smooth := float64(i) + 1 - math.Log2(math.Log2(zr*zr+zi*zi)/2+1e-9)
			hue := math.Mod(smooth*6+t*10+360000, 360)
			fb.Pix[y*m.width+x] = core.HSV(hue, 0.8, core.Clamp01(smooth/12))
		}
	}
}

func (m *mandelbrot) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "iterations", Min: 16, Max: 256, Value: m.iter, Step: 16},
	}
}

func (m *mandelbrot) SetParam(name string, value float64) {
	if name == "iterations" {
		m.iter = math.Round(core.Clamp(value, 16, 256))
	}
}
