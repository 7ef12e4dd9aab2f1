package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termdemo/internal/config"
	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effect"
)

type solidEffect struct {
	effect.NoParams
	col core.RGB
}

func (s *solidEffect) Name() string           { return "Solid" }
func (s *solidEffect) Init(width, height int) {}
func (s *solidEffect) Update(t, dt float64, fb *core.Framebuffer) {
	fb.Fill(s.col)
}

func newTestModel() Model {
	playlist := []effect.Effect{
		&solidEffect{col: core.RGB{R: 255}},
		&solidEffect{col: core.RGB{B: 255}},
	}
	return NewModel(playlist, config.Default(), core.ModeAutoplay, 10, 5)
}

func tick(t *testing.T, m Model, at time.Time) Model {
	t.Helper()
	next, _ := m.Update(TickMsg(at))
	return next.(Model)
}

func TestModelCanvasIsDoubleHeight(t *testing.T) {
	m := newTestModel()

	if m.fb.Width() != 10 || m.fb.Height() != 10 {
		t.Errorf("canvas = %dx%d, expected 10x10 (terminal rows doubled)", m.fb.Width(), m.fb.Height())
	}
}

func TestModelQuitKey(t *testing.T) {
	m := newTestModel()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit key should produce a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("quit key command produced %T, expected tea.QuitMsg", cmd())
	}
	if next.(Model).View() != "" {
		t.Error("View after quit should be empty so the screen restores cleanly")
	}
}

func TestModelTickRendersFrame(t *testing.T) {
	m := newTestModel()
	base := time.Now()

	m = tick(t, m, base) // establishes the time base only
	if m.View() != "" {
		t.Error("View before any simulation step should be empty")
	}

	m = tick(t, m, base.Add(50*time.Millisecond))
	if m.View() == "" {
		t.Error("View after a tick with steps should serve a frame")
	}
}

func TestModelPauseFreezesView(t *testing.T) {
	m := newTestModel()
	base := time.Now()
	m = tick(t, m, base)
	m = tick(t, m, base.Add(50*time.Millisecond))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	if !m.seq.Paused() {
		t.Fatal("space should pause the sequencer")
	}

	frozen := m.View()
	m = tick(t, m, base.Add(1*time.Second))
	m = tick(t, m, base.Add(2*time.Second))
	if m.View() != frozen {
		t.Error("paused View should keep serving the identical frame")
	}

	// Unpausing must not replay the paused interval as a burst.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	m = tick(t, m, base.Add(2*time.Second+5*time.Millisecond))
	if m.seq.SceneTime() > 1 {
		t.Errorf("SceneTime after long pause = %v, expected no catch-up burst", m.seq.SceneTime())
	}
}

func TestModelModeToggle(t *testing.T) {
	m := newTestModel()

	if m.mode != core.ModeAutoplay || m.showHud {
		t.Fatalf("initial mode = %v hud = %v, expected autoplay without HUD", m.mode, m.showHud)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.mode != core.ModeInteractive || !m.showHud {
		t.Errorf("after tab: mode = %v hud = %v, expected interactive with HUD", m.mode, m.showHud)
	}
	if m.seq.Autoplay() {
		t.Error("interactive mode should disarm autoplay")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.mode != core.ModeAutoplay || !m.seq.Autoplay() {
		t.Errorf("after second tab: mode = %v autoplay = %v, expected autoplay rearmed", m.mode, m.seq.Autoplay())
	}
}

func TestModelNavigationKeys(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = next.(Model)
	if m.seq.ActiveIndex() != 1 {
		t.Errorf("after n: ActiveIndex = %d, expected 1", m.seq.ActiveIndex())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	m = next.(Model)
	// Jump to the already-incoming index is a no-op; still heading to 1.
	if m.seq.ActiveIndex() != 1 {
		t.Errorf("after jump to active: ActiveIndex = %d, expected 1", m.seq.ActiveIndex())
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 8})
	m = next.(Model)
	if m.fb.Width() != 20 || m.fb.Height() != 16 {
		t.Errorf("after resize: canvas = %dx%d, expected 20x16", m.fb.Width(), m.fb.Height())
	}

	// Degenerate sizes degrade to the minimal canvas instead of failing.
	next, _ = m.Update(tea.WindowSizeMsg{Width: 0, Height: 0})
	m = next.(Model)
	if m.fb.Width() < 1 || m.fb.Height() < 1 {
		t.Errorf("degenerate resize produced %dx%d canvas", m.fb.Width(), m.fb.Height())
	}
}
