package effects

import (
	"math"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("julia", func() effect.Effect { return newJulia() })
}

// julia animates a Julia set by orbiting the seed constant around the main
// cardioid boundary.
type julia struct {
	width  int
	height int
	iter   float64
	speed  float64
}

func newJulia() *julia {
	return &julia{iter: 48, speed: 1.0}
}

func (j *julia) Name() string { return "Julia" }

func (j *julia) Init(width, height int) {
	j.width = width
	j.height = height
}

func (j *julia) Update(t, _ float64, fb *core.Framebuffer) {
	t *= j.speed
	cr := -0.4 + 0.25*math.Cos(t*0.4)
	ci := 0.6 + 0.15*math.Sin(t*0.3)

	maxIter := int(j.iter)
	aspect := float64(j.width) / float64(j.height)
	scale := 3.0

	for y := 0; y < j.height; y++ {
		zi0 := (float64(y)/float64(j.height) - 0.5) * scale
		for x := 0; x < j.width; x++ {
			zr := (float64(x)/float64(j.width) - 0.5) * scale * aspect * 0.5
			zi := zi0

			i := 0
			for ; i < maxIter; i++ {
				zr2, zi2 := zr*zr, zi*zi
				if zr2+zi2 > 4 {
					break
				}
				zr, zi = zr2-zi2+cr, 2*zr*zi+ci
			}

			if i == maxIter {
				fb.Pix[y*j.width+x] = core.RGB{R: 10, B: 20}
				continue
			}
			v := float64(i) / float64(maxIter)
			hue := math.Mod(280+v*160+t*8, 360)
			fb.Pix[y*j.width+x] = core.HSV(hue, 0.75, core.Clamp01(0.2+v*1.6))
		}
	}
}

func (j *julia) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "iterations", Min: 16, Max: 192, Value: j.iter, Step: 16},
		{Name: "speed", Min: 0.2, Max: 4, Value: j.speed, Step: 0.2},
	}
}

func (j *julia) SetParam(name string, value float64) {
	switch name {
	case "iterations":
		j.iter = math.Round(core.Clamp(value, 16, 192))
	case "speed":
		j.speed = core.Clamp(value, 0.2, 4)
	}
}
