package effects

import (
	"math"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("metaballs", func() effect.Effect { return newMetaballs() })
}

// metaballs renders the summed inverse-square field of orbiting blobs.
type metaballs struct {
	width  int
	height int
	count  float64
	speed  float64
}

func newMetaballs() *metaballs {
	return &metaballs{count: 4, speed: 1.0}
}

func (m *metaballs) Name() string { return "Metaballs" }

func (m *metaballs) Init(width, height int) {
	m.width = width
	m.height = height
}

func (m *metaballs) Update(t, _ float64, fb *core.Framebuffer) {
	w := float64(m.width)
	h := float64(m.height)
	t *= m.speed

	n := int(m.count)
	bx := make([]float64, n)
	by := make([]float64, n)
	for i := 0; i < n; i++ {
		fi := float64(i)
		bx[i] = w/2 + math.Sin(t*(0.5+fi*0.17)+fi*2.1)*w*0.35
		by[i] = h/2 + math.Cos(t*(0.6+fi*0.13)+fi*1.3)*h*0.35
	}

	r := math.Min(w, h) * 0.25
	r2 := r * r
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			field := 0.0
			for i := 0; i < n; i++ {
				dx := float64(x) - bx[i]
				dy := float64(y) - by[i]
				field += r2 / (dx*dx + dy*dy + 1)
			}

			v := core.Clamp01(field / 3)
			hue := math.Mod(field*40+t*20, 360)
			if field > 1.0 {
				fb.Pix[y*m.width+x] = core.HSV(hue, 0.7, 0.5+0.5*v)
			} else {
				fb.Pix[y*m.width+x] = core.RGB{B: uint8(40 * v)}
			}
		}
	}
}

func (m *metaballs) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "balls", Min: 2, Max: 8, Value: m.count, Step: 1},
		{Name: "speed", Min: 0.2, Max: 4, Value: m.speed, Step: 0.2},
	}
}

func (m *metaballs) SetParam(name string, value float64) {
	switch name {
	case "balls":
		m.count = math.Round(core.Clamp(value, 2, 8))
	case "speed":
		m.speed = core.Clamp(value, 0.2, 4)
	}
}
