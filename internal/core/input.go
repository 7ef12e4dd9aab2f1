package core

// CommandKind is a semantic engine command, abstracted from physical key
// presses. The key mapper produces commands; the application loop applies
// them. Unrecognized keys map to CmdNone and are dropped.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdQuit
	CmdTogglePause
	CmdToggleMode
	CmdNext
	CmdPrev
	CmdToggleHud
	CmdToggleHold
	CmdParamUp
	CmdParamDown
	CmdParamNext
	CmdParamPrev
	CmdJump
)

// String returns a human-readable name for the command kind.
func (k CommandKind) String() string {
	switch k {
	case CmdNone:
		return "None"
	case CmdQuit:
		return "Quit"
	case CmdTogglePause:
		return "TogglePause"
	case CmdToggleMode:
		return "ToggleMode"
	case CmdNext:
		return "Next"
	case CmdPrev:
		return "Prev"
	case CmdToggleHud:
		return "ToggleHud"
	case CmdToggleHold:
		return "ToggleHold"
	case CmdParamUp:
		return "ParamUp"
	case CmdParamDown:
		return "ParamDown"
	case CmdParamNext:
		return "ParamNext"
	case CmdParamPrev:
		return "ParamPrev"
	case CmdJump:
		return "Jump"
	default:
		return "Unknown"
	}
}

// Command pairs a kind with its payload. Only CmdJump uses Index.
type Command struct {
	Kind  CommandKind
	Index int
}

// Mode selects how the engine sequences effects.
type Mode int

const (
	// ModeAutoplay advances to the next effect when the dwell timer expires.
	ModeAutoplay Mode = iota
	// ModeInteractive only changes effects on explicit navigation commands.
	ModeInteractive
)

// String returns the display name shown on the HUD.
func (m Mode) String() string {
	if m == ModeInteractive {
		return "INTERACTIVE"
	}
	return "AUTO"
}
