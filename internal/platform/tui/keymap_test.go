package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termdemo/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Command
	}{
		{runeKey('q'), core.Command{Kind: core.CmdQuit}},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.Command{Kind: core.CmdQuit}},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.Command{Kind: core.CmdQuit}},
		{tea.KeyMsg{Type: tea.KeySpace}, core.Command{Kind: core.CmdTogglePause}},
		{tea.KeyMsg{Type: tea.KeyTab}, core.Command{Kind: core.CmdToggleMode}},
		{runeKey('n'), core.Command{Kind: core.CmdNext}},
		{tea.KeyMsg{Type: tea.KeyRight}, core.Command{Kind: core.CmdNext}},
		{runeKey('p'), core.Command{Kind: core.CmdPrev}},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.Command{Kind: core.CmdPrev}},
		{runeKey('h'), core.Command{Kind: core.CmdToggleHud}},
		{runeKey('f'), core.Command{Kind: core.CmdToggleHold}},
		{tea.KeyMsg{Type: tea.KeyUp}, core.Command{Kind: core.CmdParamUp}},
		{tea.KeyMsg{Type: tea.KeyDown}, core.Command{Kind: core.CmdParamDown}},
		{runeKey(']'), core.Command{Kind: core.CmdParamNext}},
		{runeKey('['), core.Command{Kind: core.CmdParamPrev}},
	}
	for _, tt := range tests {
		if got := km.Map(tt.msg); got != tt.want {
			t.Errorf("Map(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestKeyMapperDigitJumps(t *testing.T) {
	km := NewKeyMapper()

	for d := '1'; d <= '9'; d++ {
		got := km.Map(runeKey(d))
		want := core.Command{Kind: core.CmdJump, Index: int(d - '1')}
		if got != want {
			t.Errorf("Map(%q) = %v, expected %v", d, got, want)
		}
	}
}

func TestKeyMapperUnknownKeys(t *testing.T) {
	km := NewKeyMapper()

	unknown := []tea.KeyMsg{
		runeKey('z'),
		runeKey('Q'), // bindings are case sensitive
		runeKey('0'), // jumps are 1-9 only
		{Type: tea.KeyEnter},
		{Type: tea.KeyBackspace},
	}
	for _, msg := range unknown {
		if got := km.Map(msg); got.Kind != core.CmdNone {
			t.Errorf("Map(%q) = %v, expected CmdNone", msg.String(), got)
		}
	}
}
