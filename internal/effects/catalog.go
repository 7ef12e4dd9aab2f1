// Package effects contains the effect implementations. Each effect
// registers itself in init(), and the playlist order below is the
// presentation order of the show. Effects are pure pixel math over the
// framebuffer: no effect knows about the terminal, the sequencer or any
// other effect.
package effects

import (
	"fmt"

	"github.com/vovakirdan/termdemo/internal/effect"
)

// order is the curated presentation order of the show.
var order = []string{
	"plasma",
	"fire",
	"starfield",
	"tunnel",
	"copperbars",
	"rasterbars",
	"interference",
	"moire",
	"metaballs",
	"rotozoom",
	"mandelbrot",
	"julia",
	"lissajous",
	"spirograph",
	"dotsphere",
	"twister",
	"kefrensbars",
	"shadebobs",
	"sinescroller",
	"gameoflife",
	"matrix",
	"rain",
	"snowfall",
	"fireworks",
	"lightning",
	"flowfield",
	"voronoi",
	"truchet",
	"water",
	"aurora",
	"spectrum",
}

// Order returns the playlist IDs in presentation order.
func Order() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// Playlist instantiates every effect in presentation order.
func Playlist() ([]effect.Effect, error) {
	list := make([]effect.Effect, 0, len(order))
	for _, id := range order {
		e, err := effect.Create(id)
		if err != nil {
			return nil, fmt.Errorf("playlist: %w", err)
		}
		list = append(list, e)
	}
	return list, nil
}
