package effects

import (
	"math"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("truchet", func() effect.Effect { return newTruchet() })
}

// truchet tiles the canvas with quarter-circle arcs whose orientation comes
// from a hash of the tile coordinates, slowly mutating over time.
type truchet struct {
	width  int
	height int
	tile   float64
	speed  float64
}

func newTruchet() *truchet {
	return &truchet{tile: 12, speed: 1.0}
}

func (tr *truchet) Name() string { return "Truchet" }

func (tr *truchet) Init(width, height int) {
	tr.width = width
	tr.height = height
}

func (tr *truchet) Update(t, _ float64, fb *core.Framebuffer) {
	size := tr.tile
	// Tiles flip orientation in waves as the epoch advances.
	epoch := t * 0.4 * tr.speed

	for y := 0; y < tr.height; y++ {
		for x := 0; x < tr.width; x++ {
			tx := math.Floor(float64(x) / size)
			ty := math.Floor(float64(y) / size)
			fx := float64(x)/size - tx
			fy := float64(y)/size - ty

			h := hash2(int(tx), int(ty))
			flip := (h>>3)&1 == 1
			// A slice of tiles toggles each epoch step.
			if int(epoch+float64(h%7))%2 == 1 {
				flip = !flip
			}
			if flip {
				fx = 1 - fx
			}

			// Distance to the two quarter-circle arcs centered on
			// opposite tile corners.
			d1 := math.Abs(math.Hypot(fx, fy) - 0.5)
			d2 := math.Abs(math.Hypot(fx-1, fy-1) - 0.5)
			d := math.Min(d1, d2)

			lum := core.Clamp01(1 - d/0.18)
			lum = lum * lum
			hue := math.Mod(tx*17+ty*31+t*20, 360)
			bg := core.RGB{R: 12, G: 10, B: 24}
			fb.Pix[y*tr.width+x] = core.Lerp(bg, core.HSV(hue, 0.6, 1), lum)
		}
	}
}

func (tr *truchet) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "tile", Min: 6, Max: 32, Value: tr.tile, Step: 2},
		{Name: "speed", Min: 0.2, Max: 3, Value: tr.speed, Step: 0.2},
	}
}

func (tr *truchet) SetParam(name string, value float64) {
	switch name {
	case "tile":
		tr.tile = core.Clamp(value, 6, 32)
	case "speed":
		tr.speed = core.Clamp(value, 0.2, 3)
	}
}
