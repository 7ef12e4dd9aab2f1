package effects

import (
	"math"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("rotozoom", func() effect.Effect { return newRotozoom() })
}

// rotozoom samples an infinite checkerboard under continuous rotation and
// breathing zoom.
type rotozoom struct {
	width  int
	height int
	speed  float64
	tile   float64
}

func newRotozoom() *rotozoom {
	return &rotozoom{speed: 1.0, tile: 8}
}

func (r *rotozoom) Name() string { return "Rotozoom" }

func (r *rotozoom) Init(width, height int) {
	r.width = width
	r.height = height
}

func (r *rotozoom) Update(t, _ float64, fb *core.Framebuffer) {
	t *= r.speed
	zoom := 0.5 + 0.4*math.Sin(t*0.7)
	sin, cos := math.Sincos(t * 0.5)
	cx := float64(r.width) / 2
	cy := float64(r.height) / 2

	inv := 1 / (r.tile * (0.4 + zoom))
	for y := 0; y < r.height; y++ {
		dy := float64(y) - cy
		for x := 0; x < r.width; x++ {
			dx := float64(x) - cx

			u := (dx*cos - dy*sin) * inv
			v := (dx*sin + dy*cos) * inv

			iu := int(math.Floor(u + t))
			iv := int(math.Floor(v))

			if (iu+iv)&1 == 0 {
				hue := math.Mod(t*25+float64((iu*3+iv*7)%12)*30+360000, 360)
				fb.Pix[y*r.width+x] = core.HSV(hue, 0.8, 0.9)
			} else {
				fb.Pix[y*r.width+x] = core.RGB{R: 16, G: 16, B: 24}
			}
		}
	}
}

func (r *rotozoom) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "speed", Min: 0.2, Max: 4, Value: r.speed, Step: 0.2},
		{Name: "tile", Min: 2, Max: 24, Value: r.tile, Step: 1},
	}
}

func (r *rotozoom) SetParam(name string, value float64) {
	switch name {
	case "speed":
		r.speed = core.Clamp(value, 0.2, 4)
	case "tile":
		r.tile = core.Clamp(value, 2, 24)
	}
}
