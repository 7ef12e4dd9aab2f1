package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termdemo/internal/core"
)

// KeyMapper translates Bubble Tea key messages to engine commands.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// Map translates a key message to a command. Unrecognized keys map to
// CmdNone and are ignored by the caller.
func (km *KeyMapper) Map(msg tea.KeyMsg) core.Command {
	key := msg.String()

	switch key {
	case "q", "esc", "ctrl+c":
		return core.Command{Kind: core.CmdQuit}
	case " ":
		return core.Command{Kind: core.CmdTogglePause}
	case "tab":
		return core.Command{Kind: core.CmdToggleMode}
	case "n", "right":
		return core.Command{Kind: core.CmdNext}
	case "p", "left":
		return core.Command{Kind: core.CmdPrev}
	case "h":
		return core.Command{Kind: core.CmdToggleHud}
	case "f":
		return core.Command{Kind: core.CmdToggleHold}
	case "up":
		return core.Command{Kind: core.CmdParamUp}
	case "down":
		return core.Command{Kind: core.CmdParamDown}
	case "]":
		return core.Command{Kind: core.CmdParamNext}
	case "[":
		return core.Command{Kind: core.CmdParamPrev}
	}

	// Digits 1-9 jump to effect 0-8.
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return core.Command{Kind: core.CmdJump, Index: int(key[0] - '1')}
	}

	return core.Command{Kind: core.CmdNone}
}
