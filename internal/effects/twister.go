package effects

import (
	"math"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("twister", func() effect.Effect { return newTwister() })
}

// twister renders the classic twisting column: a square bar whose four
// edges rotate per scanline.
type twister struct {
	width  int
	height int
	speed  float64
	wave   float64
}

func newTwister() *twister {
	return &twister{speed: 1.0, wave: 1.0}
}

func (tw *twister) Name() string { return "Twister" }

func (tw *twister) Init(width, height int) {
	tw.width = width
	tw.height = height
}

var twisterFaces = [4]core.RGB{
	{R: 230, G: 80, B: 80},
	{R: 240, G: 200, B: 80},
	{R: 90, G: 200, B: 120},
	{R: 90, G: 140, B: 240},
}

func (tw *twister) Update(t, _ float64, fb *core.Framebuffer) {
	w := tw.width
	cx := float64(w) / 2
	halfW := float64(w) * 0.28
	t *= tw.speed

	for y := 0; y < tw.height; y++ {
		fy := float64(y) / float64(tw.height)

		// Background gradient behind the bar.
		bgV := uint8(18 + 22*fy)
		row := fb.Pix[y*w : (y+1)*w]
		for x := range row {
			row[x] = core.RGB{R: bgV / 2, G: bgV / 3, B: bgV}
		}

		angle := t*1.2 + math.Sin(fy*math.Pi*2*tw.wave+t)*1.1

		// Four corner x-positions of the rotated square at this scanline.
		var edge [4]float64
		for c := 0; c < 4; c++ {
			edge[c] = cx + math.Sin(angle+float64(c)*math.Pi/2)*halfW
		}

		// Each visible face spans two adjacent corners.
		for c := 0; c < 4; c++ {
			x0, x1 := edge[c], edge[(c+1)%4]
			if x1 <= x0 {
				continue
			}
			shade := 0.45 + 0.55*math.Sin((x1-x0)/(2*halfW)*math.Pi)
			col := twisterFaces[c].Scale(shade)
			for x := int(x0); x < int(x1); x++ {
				if x >= 0 && x < w {
					row[x] = col
				}
			}
		}
	}
}

func (tw *twister) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "speed", Min: 0.2, Max: 4, Value: tw.speed, Step: 0.2},
		{Name: "wave", Min: 0, Max: 3, Value: tw.wave, Step: 0.1},
	}
}

func (tw *twister) SetParam(name string, value float64) {
	switch name {
	case "speed":
		tw.speed = core.Clamp(value, 0.2, 4)
	case "wave":
		tw.wave = core.Clamp(value, 0, 3)
	}
}
