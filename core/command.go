package core

// Command is a discrete intent produced by an input collaborator
type Command uint8

const (
	CmdNone Command = iota
	CmdForward
	CmdBackward
	CmdStrafeLeft
	CmdStrafeRight
	CmdTurnLeft
	CmdTurnRight
	CmdAttack
	CmdDodge
	CmdWait
	CmdDrink
	CmdPause
	CmdQuit
)

var commandNames = [...]string{
	CmdNone:        "none",
	CmdForward:     "forward",
	CmdBackward:    "backward",
	CmdStrafeLeft:  "strafe_left",
	CmdStrafeRight: "strafe_right",
	CmdTurnLeft:    "turn_left",
	CmdTurnRight:   "turn_right",
	CmdAttack:      "attack",
	CmdDodge:       "dodge",
	CmdWait:        "wait",
	CmdDrink:       "drink",
	CmdPause:       "pause",
	CmdQuit:        "quit",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// IsTranslation reports whether the command moves a character by one cell
func (c Command) IsTranslation() bool {
	return c >= CmdForward && c <= CmdStrafeRight
}

// IsRotation reports whether the command turns a character in place
func (c Command) IsRotation() bool {
	return c == CmdTurnLeft || c == CmdTurnRight
}
