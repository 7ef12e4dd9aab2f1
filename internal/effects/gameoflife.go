package effects

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("gameoflife", func() effect.Effect { return newGameOfLife() })
}

// gameOfLife runs Conway's Life on a wrapping grid, coloring cells by age
// and reseeding when the population collapses.
type gameOfLife struct {
	width   int
	height  int
	age     []int
	next    []int
	rng     *rand.Rand
	acc     float64
	density float64
}

func newGameOfLife() *gameOfLife {
	return &gameOfLife{rng: newRNG(), density: 0.3}
}

func (g *gameOfLife) Name() string { return "Game of Life" }

func (g *gameOfLife) Init(width, height int) {
	g.width = width
	g.height = height
	g.age = make([]int, width*height)
	g.next = make([]int, width*height)
	g.seed()
}

func (g *gameOfLife) seed() {
	for i := range g.age {
		if g.rng.Float64() < g.density {
			g.age[i] = 1
		} else {
			g.age[i] = 0
		}
	}
}

func (g *gameOfLife) step() {
	w, h := g.width, g.height
	alive := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					if g.age[ny*w+nx] > 0 {
						n++
					}
				}
			}

			i := y*w + x
			switch {
			case g.age[i] > 0 && (n == 2 || n == 3):
				g.next[i] = g.age[i] + 1
			case g.age[i] == 0 && n == 3:
				g.next[i] = 1
			default:
				g.next[i] = 0
			}
			if g.next[i] > 0 {
				alive++
			}
		}
	}
	g.age, g.next = g.next, g.age

	if alive < len(g.age)/100 {
		g.seed()
	}
}

func (g *gameOfLife) Update(_, dt float64, fb *core.Framebuffer) {
	// Life runs at ~12 generations/s; rendering stays at full rate.
	g.acc += dt
	for g.acc >= 1.0/12 {
		g.acc -= 1.0 / 12
		g.step()
	}

	for i, a := range g.age {
		if a == 0 {
			fb.Pix[i] = core.RGB{R: 4, G: 8, B: 12}
			continue
		}
		// Young cells burn white-hot, settling into green with age.
		hue := 140 + math.Min(float64(a)*4, 60)
		sat := core.Clamp01(float64(a) / 10)
		fb.Pix[i] = core.HSV(hue, sat, 1)
	}
}

func (g *gameOfLife) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "density", Min: 0.05, Max: 0.7, Value: g.density, Step: 0.05},
	}
}

func (g *gameOfLife) SetParam(name string, value float64) {
	if name == "density" {
		g.density = core.Clamp(value, 0.05, 0.7)
	}
}
