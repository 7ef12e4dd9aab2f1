package engine

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

// Direction selects which neighbor Advance moves to.
type Direction int

const (
	DirNext Direction = iota
	DirPrev
)

// Options configures sequencing behavior.
type Options struct {
	// Autoplay advances automatically when the dwell timer expires.
	Autoplay bool
	// Dwell is seconds each effect stays active in autoplay.
	Dwell float64
	// FadeDuration is seconds every transition takes, shared by all pairs.
	FadeDuration float64
	// Kind selects the blend used during transitions.
	Kind TransitionKind
}

// request is a navigation command deferred until the active fade completes.
// Directional requests are resolved against the index current at apply time.
type request struct {
	jump  bool
	dir   Direction
	index int
}

// Sequencer owns the ordered effect playlist and the transition state
// machine. It is either idle on one effect or crossfading between exactly
// two; a navigation request arriving mid-fade is queued (latest wins) and
// applied once the fade completes. All mutation happens on the application
// loop goroutine.
type Sequencer struct {
	effects []effect.Effect
	opts    Options

	width  int
	height int

	current   int
	sceneTime float64

	fading       bool
	fadeFrom     int
	fadeTo       int
	fadeElapsed  float64
	incomingTime float64

	pending *request

	autoplay     bool
	dwellElapsed float64
	held         bool
	paused       bool

	fromFB *core.Framebuffer
	toFB   *core.Framebuffer
}

// NewSequencer creates a sequencer over the given playlist. The playlist
// order is the presentation order and is fixed for the process lifetime.
func NewSequencer(effects []effect.Effect, opts Options) *Sequencer {
	return &Sequencer{
		effects:  effects,
		opts:     opts,
		autoplay: opts.Autoplay,
		fromFB:   core.NewFramebuffer(1, 1),
		toFB:     core.NewFramebuffer(1, 1),
	}
}

// Init sizes the sequencer for the given logical canvas and initializes the
// active effect. Also used on resize; every effect participating in
// rendering is re-initialized at the new size.
func (s *Sequencer) Init(width, height int) {
	s.fromFB.Resize(width, height)
	s.toFB.Resize(width, height)
	s.width = s.fromFB.Width()
	s.height = s.fromFB.Height()

	if len(s.effects) == 0 {
		return
	}
	s.effects[s.current].Init(s.width, s.height)
	if s.fading {
		s.effects[s.fadeFrom].Init(s.width, s.height)
		s.effects[s.fadeTo].Init(s.width, s.height)
	}
}

// Count returns the number of effects in the playlist.
func (s *Sequencer) Count() int {
	return len(s.effects)
}

// ActiveIndex returns the index the user is watching or about to watch:
// the incoming effect during a fade, the current effect otherwise.
func (s *Sequencer) ActiveIndex() int {
	if s.fading {
		return s.fadeTo
	}
	return s.current
}

// ActiveEffect returns the effect at ActiveIndex, or nil for an empty
// playlist. Parameter adjustments are routed here so users tune what they
// are about to see, not what is leaving.
func (s *Sequencer) ActiveEffect() effect.Effect {
	if len(s.effects) == 0 {
		return nil
	}
	return s.effects[s.ActiveIndex()]
}

// ActiveName returns the display name of the active effect.
func (s *Sequencer) ActiveName() string {
	e := s.ActiveEffect()
	if e == nil {
		return "---"
	}
	return e.Name()
}

// SceneTime returns seconds since the active effect was activated.
func (s *Sequencer) SceneTime() float64 {
	if s.fading {
		return s.incomingTime
	}
	return s.sceneTime
}

// IsFading reports whether a transition is in flight.
func (s *Sequencer) IsFading() bool {
	return s.fading
}

// Paused reports whether simulation updates are frozen.
func (s *Sequencer) Paused() bool {
	return s.paused
}

// TogglePause flips the paused flag. While paused no effect updates run and
// the dwell timer is frozen; the last composited frame stays on screen.
func (s *Sequencer) TogglePause() {
	s.paused = !s.paused
}

// Autoplay reports whether the dwell timer is armed.
func (s *Sequencer) Autoplay() bool {
	return s.autoplay
}

// SetAutoplay arms or freezes the dwell timer. Disabling does not reset the
// timer or the sequence position; re-enabling resumes where it left off.
func (s *Sequencer) SetAutoplay(on bool) {
	s.autoplay = on
}

// Held reports whether the current effect is held against autoplay advance.
func (s *Sequencer) Held() bool {
	return s.held
}

// ToggleHold freezes the dwell timer on the current effect without leaving
// autoplay. Cleared automatically when the scene changes.
func (s *Sequencer) ToggleHold() {
	s.held = !s.held
}

// Advance starts a transition to the neighboring effect, wrapping at both
// ends. Issued mid-fade it is queued and applied once the fade completes.
func (s *Sequencer) Advance(dir Direction) {
	n := len(s.effects)
	if n == 0 {
		return
	}
	if s.fading {
		s.pending = &request{dir: dir}
		return
	}
	s.startFade(s.neighbor(s.current, dir))
}

// Jump starts a transition to an explicit index. Indices outside [0, N) and
// the active index itself are rejected without state change.
func (s *Sequencer) Jump(index int) {
	if index < 0 || index >= len(s.effects) {
		return
	}
	if s.fading {
		if index != s.fadeTo {
			s.pending = &request{jump: true, index: index}
		}
		return
	}
	if index == s.current {
		return
	}
	s.startFade(index)
}

func (s *Sequencer) neighbor(from int, dir Direction) int {
	n := len(s.effects)
	if dir == DirPrev {
		return (from - 1 + n) % n
	}
	return (from + 1) % n
}

func (s *Sequencer) startFade(to int) {
	s.fading = true
	s.fadeFrom = s.current
	s.fadeTo = to
	s.fadeElapsed = 0
	s.incomingTime = 0
	s.effects[to].Init(s.width, s.height)
	log.Debug("transition start", "from", s.fadeFrom, "to", s.fadeTo)
}

func (s *Sequencer) finishFade() {
	log.Debug("transition done", "index", s.fadeTo)
	s.current = s.fadeTo
	s.sceneTime = s.incomingTime
	s.fading = false
	s.dwellElapsed = 0
	s.held = false

	if s.pending != nil {
		r := *s.pending
		s.pending = nil
		if r.jump {
			s.Jump(r.index)
		} else {
			s.startFade(s.neighbor(s.current, r.dir))
		}
	}
}

// Update advances the simulation by one fixed step and renders the
// composited frame into fb. During a fade both participating effects run
// with their own activation clocks and their outputs are blended; when the
// fade duration elapses the machine returns to idle on the incoming index.
func (s *Sequencer) Update(dt float64, fb *core.Framebuffer) {
	if s.paused || len(s.effects) == 0 {
		return
	}

	if s.fading {
		s.fadeElapsed += dt
		s.sceneTime += dt
		s.incomingTime += dt

		s.fromFB.Clear()
		s.effects[s.fadeFrom].Update(s.sceneTime, dt, s.fromFB)
		s.toFB.Clear()
		s.effects[s.fadeTo].Update(s.incomingTime, dt, s.toFB)

		alpha := 1.0
		if s.opts.FadeDuration > 0 {
			alpha = s.fadeElapsed / s.opts.FadeDuration
		}
		Blend(s.opts.Kind, s.fromFB.Pix, s.toFB.Pix, fb.Pix, fb.Width(), fb.Height(), alpha)

		if s.fadeElapsed >= s.opts.FadeDuration {
			s.finishFade()
		}
		return
	}

	s.sceneTime += dt
	fb.Clear()
	s.effects[s.current].Update(s.sceneTime, dt, fb)

	if s.autoplay && !s.held {
		s.dwellElapsed += dt
		if s.dwellElapsed >= s.opts.Dwell {
			s.dwellElapsed = 0
			s.Advance(DirNext)
		}
	}
}
