package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/engine"
)

// HudKeyMap defines the key bindings surfaced on the HUD hint line.
type HudKeyMap struct {
	Quit     key.Binding
	Pause    key.Binding
	Mode     key.Binding
	Next     key.Binding
	Prev     key.Binding
	Hold     key.Binding
	Hud      key.Binding
	ParamAdj key.Binding
	ParamSel key.Binding
	Jump     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HudKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Pause, k.Mode, k.ParamAdj, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HudKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Jump, k.Hold},
		{k.Pause, k.Mode, k.Hud},
		{k.ParamAdj, k.ParamSel, k.Quit},
	}
}

// DefaultHudKeyMap returns default key bindings.
func DefaultHudKeyMap() HudKeyMap {
	return HudKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		Mode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "mode"),
		),
		Next: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n/→", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("p", "left"),
			key.WithHelp("p/←", "prev"),
		),
		Hold: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "hold"),
		),
		Hud: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hud"),
		),
		ParamAdj: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "adjust"),
		),
		ParamSel: key.NewBinding(
			key.WithKeys("[", "]"),
			key.WithHelp("[/]", "select param"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump"),
		),
	}
}

var (
	hudBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#1e1e3c"))

	hudPausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffd75f")).
			Background(lipgloss.Color("#1e1e3c")).
			Bold(true)

	paramHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ffd75f")).
				Background(lipgloss.Color("#141428")).
				Bold(true)

	paramLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d0d0d0")).
			Background(lipgloss.Color("#141428"))

	paramSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#5fffff")).
				Background(lipgloss.Color("#141428")).
				Bold(true)
)

// Hud renders the status bar and, in interactive mode, the parameter panel.
type Hud struct {
	keys HudKeyMap
	help help.Model
}

// NewHud creates a HUD with default bindings.
func NewHud() Hud {
	return Hud{
		keys: DefaultHudKeyMap(),
		help: help.New(),
	}
}

// StatusBar renders the single-line status bar at the given width.
func (h Hud) StatusBar(seq *engine.Sequencer, mode core.Mode, width int) string {
	status := fmt.Sprintf(" scene %d/%d: %s | %s",
		seq.ActiveIndex()+1, seq.Count(), seq.ActiveName(), mode)
	if seq.Paused() {
		status += hudPausedStyle.Render(" [PAUSED]")
	}
	if seq.Held() {
		status += hudBarStyle.Render(" [HELD]")
	}
	status += fmt.Sprintf(" | t=%.1fs ", seq.SceneTime())

	hint := h.help.ShortHelpView(h.keys.ShortHelp())

	bar := status
	gap := width - lipgloss.Width(status) - lipgloss.Width(hint) - 1
	if gap > 0 {
		bar += hudBarStyle.Render(strings.Repeat(" ", gap)) + hint + " "
	}
	return hudBarStyle.Width(width).MaxHeight(1).Render(bar)
}

// ParamPanel renders the parameter list of the active effect, one line per
// parameter, with a marker on the selected one. Returns nil when the effect
// has no parameters.
func (h Hud) ParamPanel(seq *engine.Sequencer, selected, width int) []string {
	e := seq.ActiveEffect()
	if e == nil {
		return nil
	}
	params := e.Params()
	if len(params) == 0 {
		return nil
	}

	lines := make([]string, 0, len(params)+1)
	lines = append(lines, paramHeaderStyle.Width(width).Render(" parameters ([/] select, ↑/↓ adjust)"))
	for i, p := range params {
		marker := "  "
		style := paramLineStyle
		if i == selected {
			marker = " >"
			style = paramSelectedStyle
		}
		line := fmt.Sprintf("%s %s: %.2f  [%.1f..%.1f]", marker, p.Name, p.Value, p.Min, p.Max)
		lines = append(lines, style.Width(width).MaxHeight(1).Render(line))
	}
	return lines
}
