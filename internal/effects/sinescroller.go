package effects

import (
	"math"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("sinescroller", func() effect.Effect { return newSinescroller() })
}

const scrollText = "TERMDEMO * PIXELS IN YOUR TERMINAL * GREETS TO ALL DEMOSCENERS!   "

// sinescroller scrolls bitmap text along a sine wave, scaled up to the
// canvas, over a dim starless gradient.
type sinescroller struct {
	width  int
	height int
	speed  float64
	amp    float64
}

func newSinescroller() *sinescroller {
	return &sinescroller{speed: 1.0, amp: 1.0}
}

func (s *sinescroller) Name() string { return "Sine Scroller" }

func (s *sinescroller) Init(width, height int) {
	s.width = width
	s.height = height
}

func (s *sinescroller) Update(t, _ float64, fb *core.Framebuffer) {
	w, h := s.width, s.height

	// Background gradient.
	for y := 0; y < h; y++ {
		v := uint8(10 + 25*float64(y)/float64(h))
		row := fb.Pix[y*w : (y+1)*w]
		for x := range row {
			row[x] = core.RGB{R: v / 3, G: 0, B: v}
		}
	}

	// Scale the 7px font to roughly a third of the canvas height.
	scale := h / (glyphH * 3)
	if scale < 1 {
		scale = 1
	}
	textW := len(scrollText) * glyphAdvance * scale
	offset := int(t*s.speed*float64(30*scale)) % textW

	midY := h / 2
	ampPx := float64(h) / 4 * s.amp

	runes := []rune(scrollText)
	for x := 0; x < w; x++ {
		// Which column of the repeating text band is under this pixel.
		tx := (x + offset) % textW
		ci := tx / (glyphAdvance * scale)
		gx := tx % (glyphAdvance * scale) / scale

		wave := math.Sin((float64(x)/float64(w))*4*math.Pi + t*s.speed*2)
		top := midY + int(wave*ampPx) - glyphH*scale/2

		hue := math.Mod(float64(x)/float64(w)*180+t*40, 360)
		col := core.HSV(hue, 0.8, 1)

		for gy := 0; gy < glyphH; gy++ {
			if !glyphPixel(runes[ci], gx, gy) {
				continue
			}
			for sy := 0; sy < scale; sy++ {
				y := top + gy*scale + sy
				if y >= 0 && y < h {
					fb.Pix[y*w+x] = col
				}
			}
		}
	}
}

func (s *sinescroller) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "speed", Min: 0.2, Max: 4, Value: s.speed, Step: 0.2},
		{Name: "amplitude", Min: 0, Max: 2, Value: s.amp, Step: 0.1},
	}
}

func (s *sinescroller) SetParam(name string, value float64) {
	switch name {
	case "speed":
		s.speed = core.Clamp(value, 0.2, 4)
	case "amplitude":
		s.amp = core.Clamp(value, 0, 2)
	}
}
