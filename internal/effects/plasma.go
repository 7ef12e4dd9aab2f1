package effects

import (
	"math"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("plasma", func() effect.Effect { return newPlasma() })
}

// plasma is the classic sum-of-sines color field.
type plasma struct {
	width  int
	height int
	speed  float64
	scale  float64
}

func newPlasma() *plasma {
	return &plasma{speed: 1.0, scale: 1.0}
}

func (p *plasma) Name() string { return "Plasma" }

func (p *plasma) Init(width, height int) {
	p.width = width
	p.height = height
}

func (p *plasma) Update(t, _ float64, fb *core.Framebuffer) {
	w := float64(p.width)
	h := float64(p.height)
	if w == 0 || h == 0 {
		return
	}

	t *= p.speed
	for y := 0; y < p.height; y++ {
		fy := float64(y) / h * p.scale
		for x := 0; x < p.width; x++ {
			fx := float64(x) / w * p.scale

			v1 := math.Sin(fx*10 + t)
			v2 := math.Sin((fy*10 + t) * 0.7)
			v3 := (math.Sin(fx*6+fy*6+t*0.8) + math.Sin(math.Sqrt(fx*fx+fy*fy))) * 0.5
			v4 := math.Sin(math.Sqrt(fx*fx+fy*fy)*4 - t*1.2)
			v := (v1 + v2 + v3 + v4) * 0.25

			fb.Pix[y*p.width+x] = core.RGB{
				R: uint8((math.Cos(v*math.Pi)*0.5 + 0.5) * 255),
				G: uint8((math.Cos(v*math.Pi+2.094)*0.5 + 0.5) * 255),
				B: uint8((math.Cos(v*math.Pi+4.189)*0.5 + 0.5) * 255),
			}
		}
	}
}

func (p *plasma) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "speed", Min: 0.1, Max: 5, Value: p.speed, Step: 0.1},
		{Name: "scale", Min: 0.2, Max: 4, Value: p.scale, Step: 0.1},
	}
}

func (p *plasma) SetParam(name string, value float64) {
	switch name {
	case "speed":
		p.speed = core.Clamp(value, 0.1, 5)
	case "scale":
		p.scale = core.Clamp(value, 0.2, 4)
	}
}
