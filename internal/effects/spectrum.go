package effects

import (
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

func init() {
	effect.Register("spectrum", func() effect.Effect { return newSpectrum() })
}

const fftSize = 512

// spectrum synthesizes a wandering multi-voice waveform, runs it through an
// FFT and draws the magnitude bins as an analyzer with falling peak caps.
type spectrum struct {
	width  int
	height int
	plan   *algofft.Plan[complex128]
	in     []complex128
	out    []complex128
	bars   []float64
	peaks  []float64
	voices float64
	decay  float64
}

func newSpectrum() *spectrum {
	return &spectrum{voices: 4, decay: 1.0}
}

func (s *spectrum) Name() string { return "Spectrum" }

func (s *spectrum) Init(width, height int) {
	s.width = width
	s.height = height
	if s.plan == nil {
		plan, err := algofft.NewPlan64(fftSize)
		if err != nil {
			// Power-of-two size, cannot fail; keep a nil plan guard anyway.
			plan = nil
		}
		s.plan = plan
		s.in = make([]complex128, fftSize)
		s.out = make([]complex128, fftSize)
	}
	s.bars = make([]float64, width)
	s.peaks = make([]float64, width)
}

// synth fills the input buffer with a few detuned voices whose pitches and
// amplitudes drift over time, so the analyzer always has moving content.
func (s *spectrum) synth(t float64) {
	n := int(s.voices)
	for i := 0; i < fftSize; i++ {
		x := float64(i) / fftSize
		var v float64
		for k := 0; k < n; k++ {
			fk := float64(k)
			freq := 20 + 60*fk + 40*math.Sin(t*0.3+fk*1.7)
			amp := 0.5 + 0.5*math.Sin(t*0.7+fk*2.3)
			v += amp * math.Sin(2*math.Pi*freq*x+t*fk)
		}
		// Hann window to keep bin leakage down.
		win := 0.5 - 0.5*math.Cos(2*math.Pi*x)
		s.in[i] = complex(v*win, 0)
	}
}

func (s *spectrum) Update(t, dt float64, fb *core.Framebuffer) {
	if s.plan != nil {
		s.synth(t)
		if err := s.plan.Forward(s.out, s.in); err != nil {
			for i := range s.out {
				s.out[i] = 0
			}
		}
	}

	// Map the lower half of the bins onto the screen columns.
	usable := fftSize / 4
	for x := 0; x < s.width; x++ {
		bin := 1 + x*usable/s.width
		mag := cmplx.Abs(s.out[bin])
		level := core.Clamp01(math.Log1p(mag) / 5)

		// Fast attack, configurable release.
		if level > s.bars[x] {
			s.bars[x] = level
		} else {
			s.bars[x] -= dt * 1.5 * s.decay
			if s.bars[x] < level {
				s.bars[x] = level
			}
		}

		if s.bars[x] > s.peaks[x] {
			s.peaks[x] = s.bars[x]
		} else {
			s.peaks[x] -= dt * 0.3 * s.decay
			if s.peaks[x] < 0 {
				s.peaks[x] = 0
			}
		}
	}

	for y := 0; y < s.height; y++ {
		fy := 1 - float64(y)/float64(s.height-1)
		row := fb.Pix[y*s.width : (y+1)*s.width]
		for x := range row {
			switch {
			case fy <= s.bars[x]:
				// Green at the base through yellow to red at the top.
				hue := 120 * (1 - fy)
				row[x] = core.HSV(hue, 1, 0.9)
			case math.Abs(fy-s.peaks[x]) < 1.0/float64(s.height):
				row[x] = core.RGB{R: 230, G: 230, B: 230}
			default:
				row[x] = core.RGB{R: 6, G: 6, B: 14}
			}
		}
	}
}

func (s *spectrum) Params() []core.ParamDesc {
	return []core.ParamDesc{
		{Name: "voices", Min: 1, Max: 8, Value: s.voices, Step: 1},
		{Name: "decay", Min: 0.2, Max: 3, Value: s.decay, Step: 0.2},
	}
}

func (s *spectrum) SetParam(name string, value float64) {
	switch name {
	case "voices":
		s.voices = math.Round(core.Clamp(value, 1, 8))
	case "decay":
		s.decay = core.Clamp(value, 0.2, 3)
	}
}
