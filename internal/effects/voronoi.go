package effects

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("voronoi", func() effect.Effect { return newVoronoi() })
}

type voronoiSite struct {
	x, y   float64
	vx, vy float64
	hue    float64
}

// voronoi shades each pixel by its two nearest drifting sites: cell color
// from the winner, darkened near the boundary between them.
type voronoi struct {
	width  int
	height int
	sites  []voronoiSite
	rng    *rand.Rand
	count  float64
	speed  float64
}

func newVoronoi() *voronoi {
	return &voronoi{rng: newRNG(), count: 12, speed: 1.0}
}

func (v *voronoi) Name() string { return "Voronoi" }

func (v *voronoi) Init(width, height int) {
	v.width = width
	v.height = height
	v.reseed()
}

func (v *voronoi) reseed() {
	n := int(v.count)
	v.sites = make([]voronoiSite, n)
	for i := range v.sites {
		ang := v.rng.Float64() * 2 * math.Pi
		sp := (0.05 + v.rng.Float64()*0.1) * float64(v.height)
		v.sites[i] = voronoiSite{
			x:   v.rng.Float64() * float64(v.width),
			y:   v.rng.Float64() * float64(v.height),
			vx:  math.Cos(ang) * sp,
			vy:  math.Sin(ang) * sp,
			hue: float64(i) / float64(n) * 360,
		}
	}
}

func (v *voronoi) Update(t, dt float64, fb *core.Framebuffer) {
	if len(v.sites) != int(v.count) {
		v.reseed()
	}

	for i := range v.sites {
		s := &v.sites[i]
		s.x += s.vx * dt * v.speed
		s.y += s.vy * dt * v.speed
		if s.x < 0 || s.x >= float64(v.width) {
			s.vx = -s.vx
			s.x = core.Clamp(s.x, 0, float64(v.width)-1)
		}
		if s.y < 0 || s.y >= float64(v.height) {
			s.vy = -s.vy
			s.y = core.Clamp(s.y, 0, float64(v.height)-1)
		}
	}

	for y := 0; y < v.height; y++ {
		fy := float64(y)
		for x := 0; x < v.width; x++ {
			fx := float64(x)
			d1, d2 := math.MaxFloat64, math.MaxFloat64
			best := 0
			for i := range v.sites {
				dx := fx - v.sites[i].x
				dy := fy - v.sites[i].y
				d := dx*dx + dy*dy
				if d < d1 {
					d2 = d1
					d1 = d
					best = i
				} else if d < d2 {
					d2 = d
				}
			}

			// Edge factor: distance to the bisector between the two
			// nearest sites.
			edge := (math.Sqrt(d2) - math.Sqrt(d1)) / 2
			shade := core.Clamp01(edge / 3)
			hue := math.Mod(v.sites[best].hue+t*15, 360)
			fb.Pix[y*v.width+x] = core.HSV(hue, 0.7, 0.25+0.75*shade)
		}
	}
}

func (v *voronoi) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "sites", Min: 3, Max: 30, Value: v.count, Step: 1},
		{Name: "speed", Min: 0.2, Max: 3, Value: v.speed, Step: 0.2},
	}
}

func (v *voronoi) SetParam(name string, value float64) {
	switch name {
	case "sites":
		v.count = math.Round(core.Clamp(value, 3, 30))
	case "speed":
		v.speed = core.Clamp(value, 0.2, 3)
	}
}
