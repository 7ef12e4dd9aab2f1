package effects

import (
	"math"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("moire", func() effect.Effect { return newMoire() })
}

// moire XORs concentric ring patterns from two drifting centers.
type moire struct {
	width  int
	height int
	rings  float64
}

func newMoire() *moire {
	return &moire{rings: 1.0}
}

func (m *moire) Name() string { return "Moire" }

func (m *moire) Init(width, height int) {
	m.width = width
	m.height = height
}

func (m *moire) Update(t, _ float64, fb *core.Framebuffer) {
	w := float64(m.width)
	h := float64(m.height)

	x1 := w/2 + math.Sin(t*0.8)*w*0.25
	y1 := h/2 + math.Cos(t*0.6)*h*0.25
	x2 := w/2 + math.Sin(t*0.5+2)*w*0.25
	y2 := h/2 + math.Cos(t*0.9+1)*h*0.25

	scale := 0.25 * m.rings
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			fx, fy := float64(x), float64(y)
			r1 := int(math.Hypot(fx-x1, fy-y1) * scale)
			r2 := int(math.Hypot(fx-x2, fy-y2) * scale)

			if (r1^r2)&1 == 1 {
				hue := math.Mod(t*30+float64(r1+r2)*2, 360)
				fb.Pix[y*m.width+x] = core.HSV(hue, 0.6, 0.9)
			} else {
				fb.Pix[y*m.width+x] = core.RGB{R: 8, G: 8, B: 16}
			}
		}
	}
}

func (m *moire) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "rings", Min: 0.3, Max: 3, Value: m.rings, Step: 0.1},
	}
}

func (m *moire) SetParam(name string, value float64) {
	if name == "rings" {
		m.rings = core.Clamp(value, 0.3, 3)
	}
}
