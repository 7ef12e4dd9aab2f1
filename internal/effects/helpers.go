package effects

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/termdemo/internal/core"
)

// newRNG returns a private random source. Effects own their randomness so
// no two effects ever share generator state.
func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// hash2 is a cheap integer hash of a 2D coordinate, used for stable
// per-tile randomness.
func hash2(x, y int) uint32 {
	h := uint32(x)*374761393 + uint32(y)*668265263
	h = (h ^ (h >> 13)) * 1274126177
	return h ^ (h >> 16)
}

// valueNoise is smooth 2D value noise in [0,1] built on hash2 with cosine
// interpolation. Good enough for flow fields and curtains; not gradient
// noise.
func valueNoise(x, y float64) float64 {
	xi, yi := math.Floor(x), math.Floor(y)
	xf, yf := x-xi, y-yi

	v00 := float64(hash2(int(xi), int(yi))&0xffff) / 0xffff
	v10 := float64(hash2(int(xi)+1, int(yi))&0xffff) / 0xffff
	v01 := float64(hash2(int(xi), int(yi)+1)&0xffff) / 0xffff
	v11 := float64(hash2(int(xi)+1, int(yi)+1)&0xffff) / 0xffff

	sx := (1 - math.Cos(xf*math.Pi)) / 2
	sy := (1 - math.Cos(yf*math.Pi)) / 2

	top := v00 + (v10-v00)*sx
	bot := v01 + (v11-v01)*sx
	return top + (bot-top)*sy
}

// trail is a persistent intensity canvas with exponential decay, shared by
// effects that draw glowing paths and particles. Values may exceed 1 while
// accumulating; blit clamps.
type trail struct {
	w, h    int
	r, g, b []float64
}

func newTrail() *trail {
	return &trail{}
}

func (tr *trail) resize(w, h int) {
	if w == tr.w && h == tr.h && tr.r != nil {
		return
	}
	tr.w, tr.h = w, h
	tr.r = make([]float64, w*h)
	tr.g = make([]float64, w*h)
	tr.b = make([]float64, w*h)
}

// decay multiplies every channel by f (0..1) to fade old light.
func (tr *trail) decay(f float64) {
	for i := range tr.r {
		tr.r[i] *= f
		tr.g[i] *= f
		tr.b[i] *= f
	}
}

// add deposits light at (x, y); out-of-bounds deposits are dropped.
func (tr *trail) add(x, y int, c core.RGB, gain float64) {
	if x < 0 || x >= tr.w || y < 0 || y >= tr.h {
		return
	}
	i := y*tr.w + x
	tr.r[i] += float64(c.R) / 255 * gain
	tr.g[i] += float64(c.G) / 255 * gain
	tr.b[i] += float64(c.B) / 255 * gain
}

// blit writes the whole canvas into the framebuffer.
func (tr *trail) blit(fb *core.Framebuffer) {
	for i := range tr.r {
		fb.Pix[i] = core.RGB{
			R: uint8(core.Clamp01(tr.r[i]) * 255),
			G: uint8(core.Clamp01(tr.g[i]) * 255),
			B: uint8(core.Clamp01(tr.b[i]) * 255),
		}
	}
}

// firePalette maps a normalized heat value to the classic black-red-
// yellow-white ramp.
func firePalette(v float64) core.RGB {
	v = core.Clamp01(v)
	switch {
	case v < 0.25:
		return core.Lerp(core.RGB{}, core.RGB{R: 128}, v/0.25)
	case v < 0.6:
		return core.Lerp(core.RGB{R: 128}, core.RGB{R: 255, G: 128}, (v-0.25)/0.35)
	case v < 0.85:
		return core.Lerp(core.RGB{R: 255, G: 128}, core.RGB{R: 255, G: 255}, (v-0.6)/0.25)
	default:
		return core.Lerp(core.RGB{R: 255, G: 255}, core.RGB{R: 255, G: 255, B: 255}, (v-0.85)/0.15)
	}
}
