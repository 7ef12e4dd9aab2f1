package effects

import (
	"math"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("rasterbars", func() effect.Effect { return newRasterbars() })
}

// rasterbars renders per-scanline color cycling: every row gets a color
// from overlapping sine waves, like racing the beam with a palette.
type rasterbars struct {
	width  int
	height int
	speed  float64
	waves  float64
}

func newRasterbars() *rasterbars {
	return &rasterbars{speed: 1.0, waves: 3}
}

func (r *rasterbars) Name() string { return "Raster Bars" }

func (r *rasterbars) Init(width, height int) {
	r.width = width
	r.height = height
}

func (r *rasterbars) Update(t, _ float64, fb *core.Framebuffer) {
	h := float64(r.height)
	for y := 0; y < r.height; y++ {
		fy := float64(y) / h

		v := 0.0
		for k := 1.0; k <= r.waves; k++ {
			v += math.Sin(fy*math.Pi*2*k + t*r.speed*(0.6+k*0.3))
		}
		v /= r.waves

		hue := math.Mod(fy*120+t*r.speed*40+360000, 360)
		col := core.HSV(hue, 0.85, 0.25+0.75*core.Clamp01(v*0.5+0.5))

		row := fb.Pix[y*r.width : (y+1)*r.width]
		for x := range row {
			row[x] = col
		}
	}
}

func (r *rasterbars) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "speed", Min: 0.2, Max: 4, Value: r.speed, Step: 0.2},
		{Name: "waves", Min: 1, Max: 6, Value: r.waves, Step: 1},
	}
}

func (r *rasterbars) SetParam(name string, value float64) {
	switch name {
	case "speed":
		r.speed = core.Clamp(value, 0.2, 4)
	case "waves":
		r.waves = math.Round(core.Clamp(value, 1, 6))
	}
}
