package effects

import (
	"math/rand"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("matrix", func() effect.Effect { return newMatrix() })
}

type matrixDrop struct {
	y     float64
	speed float64
	len   int
}

// matrixRain renders falling bright-headed green trails, one drop per
// column.
type matrixRain struct {
	width  int
	height int
	drops  []matrixDrop
	rng    *rand.Rand
	speed  float64
}

func newMatrix() *matrixRain {
	return &matrixRain{rng: newRNG(), speed: 1.0}
}

func (m *matrixRain) Name() string { return "Matrix" }

func (m *matrixRain) Init(width, height int) {
	m.width = width
	m.height = height
	m.drops = make([]matrixDrop, width)
	for x := range m.drops {
		m.drops[x] = m.spawn()
		m.drops[x].y = m.rng.Float64() * float64(height)
	}
}

func (m *matrixRain) spawn() matrixDrop {
	return matrixDrop{
		y:     -m.rng.Float64() * float64(m.height),
		speed: 8 + m.rng.Float64()*25,
		len:   4 + m.rng.Intn(m.height/2+1),
	}
}

func (m *matrixRain) Update(_, dt float64, fb *core.Framebuffer) {
	fb.Clear()

	for x := range m.drops {
		d := &m.drops[x]
		d.y += d.speed * dt * m.speed
		if d.y-float64(d.len) > float64(m.height) {
			*d = m.spawn()
		}

		head := int(d.y)
		for k := 0; k < d.len; k++ {
			y := head - k
			if y < 0 || y >= m.height {
				continue
			}
			if k == 0 {
				fb.Pix[y*m.width+x] = core.RGB{R: 190, G: 255, B: 190}
				continue
			}
			fade := 1 - float64(k)/float64(d.len)
			// Flicker low in the tail for the shimmering glyph look.
			if m.rng.Intn(12) == 0 {
				fade *= 0.4
			}
			fb.Pix[y*m.width+x] = core.RGB{G: uint8(60 + 180*fade), B: uint8(20 * fade)}
		}
	}
}

func (m *matrixRain) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "speed", Min: 0.2, Max: 4, Value: m.speed, Step: 0.2},
	}
}

func (m *matrixRain) SetParam(name string, value float64) {
	if name == "speed" {
		m.speed = core.Clamp(value, 0.2, 4)
	}
}
