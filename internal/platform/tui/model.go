package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termdemo/internal/config"
	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
	"github.com/vovakirdan/termdemo/internal/engine"
)

// Model is the Bubble Tea model driving the demo player. One goroutine (the
// Bubble Tea update loop) owns the clock, the sequencer, every effect
// instance and the framebuffer; ticks drain fixed simulation steps, keys
// become commands, and View serves the most recently composited frame.
type Model struct {
	seq    *engine.Sequencer
	fb     *core.Framebuffer
	clock  *core.Clock
	keymap *KeyMapper
	hud    Hud

	fps      int
	mode     core.Mode
	showHud  bool
	selParam int

	lastActive int
	frame      string
	cols       int
	quitting   bool
}

// NewModel creates a model over the given playlist. width and height are
// terminal cells; the logical canvas is twice as tall.
func NewModel(playlist []effect.Effect, cfg config.Config, mode core.Mode, width, height int) Model {
	kind, _ := engine.ParseTransitionKind(cfg.Transition)
	seq := engine.NewSequencer(playlist, engine.Options{
		Autoplay:     mode == core.ModeAutoplay,
		Dwell:        cfg.Dwell,
		FadeDuration: cfg.Crossfade,
		Kind:         kind,
	})

	fb := core.NewFramebuffer(width, height*2)
	seq.Init(fb.Width(), fb.Height())

	return Model{
		seq:     seq,
		fb:      fb,
		clock:   core.NewClock(),
		keymap:  NewKeyMapper(),
		hud:     NewHud(),
		fps:     cfg.FPS,
		mode:    mode,
		showHud: mode == core.ModeInteractive,
		cols:    fb.Width(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.apply(m.keymap.Map(msg))

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// apply mutates run state according to a single command.
func (m Model) apply(cmd core.Command) (tea.Model, tea.Cmd) {
	switch cmd.Kind {
	case core.CmdQuit:
		m.quitting = true
		return m, tea.Quit

	case core.CmdTogglePause:
		m.seq.TogglePause()

	case core.CmdToggleMode:
		if m.mode == core.ModeAutoplay {
			m.mode = core.ModeInteractive
			m.showHud = true
		} else {
			m.mode = core.ModeAutoplay
			m.showHud = false
		}
		m.seq.SetAutoplay(m.mode == core.ModeAutoplay)

	case core.CmdNext:
		m.seq.Advance(engine.DirNext)
		m.selParam = 0

	case core.CmdPrev:
		m.seq.Advance(engine.DirPrev)
		m.selParam = 0

	case core.CmdJump:
		m.seq.Jump(cmd.Index)
		m.selParam = 0

	case core.CmdToggleHud:
		m.showHud = !m.showHud

	case core.CmdToggleHold:
		m.seq.ToggleHold()

	case core.CmdParamUp:
		m.adjustParam(1)

	case core.CmdParamDown:
		m.adjustParam(-1)

	case core.CmdParamNext:
		m.selParam = m.rotateParam(m.selParam, 1)

	case core.CmdParamPrev:
		m.selParam = m.rotateParam(m.selParam, -1)
	}

	return m, nil
}

// adjustParam applies one step up or down to the selected parameter of the
// effect the user is watching (the incoming one during a fade). Clamping is
// the effect's job.
func (m *Model) adjustParam(sign float64) {
	e := m.seq.ActiveEffect()
	if e == nil {
		return
	}
	params := e.Params()
	if m.selParam >= len(params) {
		return
	}
	p := params[m.selParam]
	e.SetParam(p.Name, p.Value+sign*p.Step)
}

// rotateParam cycles the parameter selection, wrapping at both ends.
func (m *Model) rotateParam(sel, delta int) int {
	e := m.seq.ActiveEffect()
	if e == nil {
		return 0
	}
	n := len(e.Params())
	if n == 0 {
		return 0
	}
	return ((sel+delta)%n + n) % n
}

// handleResize reallocates the canvas at the new terminal size. Effects are
// re-initialized; a degenerate size degrades to the minimal canvas instead
// of failing.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	log.Debug("resize", "cols", msg.Width, "rows", msg.Height)
	m.fb.Resize(msg.Width, msg.Height*2)
	m.cols = m.fb.Width()
	m.seq.Init(m.fb.Width(), m.fb.Height())
	return m, nil
}

// handleTick drains the fixed-step clock and renders the composited frame.
// While paused the tick only moves the clock's time base forward, so the
// paused interval is never replayed and the last frame stays on screen.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.seq.Paused() {
		m.clock.Skip(now)
		return m, tickCmd(m.fps)
	}

	steps := m.clock.Tick(now)
	for i := 0; i < steps; i++ {
		m.seq.Update(core.FixedStep, m.fb)
	}
	if steps > 0 {
		m.frame = RenderFrame(m.fb)
	}

	// Scene changes reset the parameter selection so the panel always
	// starts on the first parameter of the new effect.
	if active := m.seq.ActiveIndex(); active != m.lastActive {
		m.lastActive = active
		m.selParam = 0
	}

	return m, tickCmd(m.fps)
}

// View serves the cached frame, overlaying the HUD when visible.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.frame == "" {
		return ""
	}
	if !m.showHud {
		return m.frame
	}

	lines := strings.Split(m.frame, "\n")
	if len(lines) == 0 {
		return m.frame
	}

	lines[len(lines)-1] = m.hud.StatusBar(m.seq, m.mode, m.cols)

	if m.mode == core.ModeInteractive {
		panel := m.hud.ParamPanel(m.seq, m.selParam, m.cols)
		start := len(lines) - 1 - len(panel)
		if len(panel) > 0 && start >= 1 {
			copy(lines[start:], panel)
		}
	}

	return strings.Join(lines, "\n")
}

// Run starts the Bubble Tea program for the given playlist.
func Run(playlist []effect.Effect, cfg config.Config, mode core.Mode, width, height int) error {
	model := NewModel(playlist, cfg, mode, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // raw mode + alternate screen, restored on every exit path
	)

	_, err := p.Run()
	return err
}
