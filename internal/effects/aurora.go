package effects

import (
	"math"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("aurora", func() effect.Effect { return newAurora() })
}

// aurora layers drifting noise-driven curtains of green and violet light
// over a starless night sky.
type aurora struct {
	width  int
	height int
	speed  float64
	bands  float64
}

func newAurora() *aurora {
	return &aurora{speed: 1.0, bands: 3}
}

func (a *aurora) Name() string { return "Aurora" }

func (a *aurora) Init(width, height int) {
	a.width = width
	a.height = height
}

func (a *aurora) Update(t, _ float64, fb *core.Framebuffer) {
	w, h := a.width, a.height
	ts := t * a.speed

	for y := 0; y < h; y++ {
		fy := float64(y) / float64(h)
		// Sky darkens toward the horizon.
		skyV := 18 * (1 - fy*0.6)
		for x := 0; x < w; x++ {
			fx := float64(x) / float64(w)

			var r, g, b float64
			b = skyV
			r = skyV * 0.3
			g = skyV * 0.4

			for band := 0; band < int(a.bands); band++ {
				fb2 := float64(band)
				// Curtain centerline wanders with low-frequency noise.
				center := 0.2 + 0.15*fb2 +
					0.12*math.Sin(fx*3+ts*0.3+fb2*2) +
					0.1*(valueNoise(fx*4+fb2*10, ts*0.2)-0.5)
				width := 0.06 + 0.03*valueNoise(fx*6, ts*0.15+fb2*5)

				d := math.Abs(fy - center)
				glow := math.Exp(-d * d / (2 * width * width))

				// Shimmer along the curtain.
				glow *= 0.6 + 0.4*valueNoise(fx*12+ts*0.8, fb2*7)

				g += glow * 130
				b += glow * 60
				r += glow * 45 * (fb2 / math.Max(a.bands-1, 1))
			}

			fb.Pix[y*w+x] = core.RGB{
				R: uint8(core.Clamp(r, 0, 255)),
				G: uint8(core.Clamp(g, 0, 255)),
				B: uint8(core.Clamp(b, 0, 255)),
			}
		}
	}
}

func (a *aurora) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "speed", Min: 0.2, Max: 3, Value: a.speed, Step: 0.2},
		{Name: "bands", Min: 1, Max: 5, Value: a.bands, Step: 1},
	}
}

func (a *aurora) SetParam(name string, value float64) {
	switch name {
	case "speed":
		a.speed = core.Clamp(value, 0.2, 3)
	case "bands":
		a.bands = math.Round(core.Clamp(value, 1, 5))
	}
}
