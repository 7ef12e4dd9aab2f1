package effects

import (
	"math"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("tunnel", func() effect.Effect { return newTunnel() })
}

// tunnel maps every pixel to polar texture coordinates flying toward the
// viewer, the classic demoscene tunnel.
type tunnel struct {
	width  int
	height int
	speed  float64
	twist  float64
}

func newTunnel() *tunnel {
	return &tunnel{speed: 1.0, twist: 1.0}
}

func (tn *tunnel) Name() string { return "Tunnel" }

func (tn *tunnel) Init(width, height int) {
	tn.width = width
	tn.height = height
}

func (tn *tunnel) Update(t, _ float64, fb *core.Framebuffer) {
	cx := float64(tn.width) / 2
	cy := float64(tn.height) / 2

	for y := 0; y < tn.height; y++ {
		dy := (float64(y) - cy) / cy
		for x := 0; x < tn.width; x++ {
			dx := (float64(x) - cx) / cx
			dist := math.Sqrt(dx*dx+dy*dy) + 1e-6
			angle := math.Atan2(dy, dx)

			u := 0.3/dist + t*tn.speed*0.5
			v := angle/math.Pi*2 + t*tn.twist*0.2

			band := math.Sin(u*math.Pi*4) * math.Sin(v*math.Pi*3)
			shade := core.Clamp01(dist * 1.2)

			hue := math.Mod(u*40+v*30+360000, 360)
			c := core.HSV(hue, 0.8, (0.4+0.6*core.Clamp01(band*0.5+0.5))*shade)
			fb.Pix[y*tn.width+x] = c
		}
	}
}

func (tn *tunnel) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "speed", Min: 0.2, Max: 4, Value: tn.speed, Step: 0.2},
		{Name: "twist", Min: 0, Max: 4, Value: tn.twist, Step: 0.2},
	}
}

func (tn *tunnel) SetParam(name string, value float64) {
	switch name {
	case "speed":
		tn.speed = core.Clamp(value, 0.2, 4)
	case "twist":
		tn.twist = core.Clamp(value, 0, 4)
	}
}
