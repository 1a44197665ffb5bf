// Package render draws the world top-down on a terminal screen and maps keys to commands
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridcrawler/core"
)

// KeyCommand maps a key press to a game command, CmdNone when unbound
func KeyCommand(key tcell.Key, r rune) core.Command {
	switch key {
	case tcell.KeyUp:
		return core.CmdForward
	case tcell.KeyDown:
		return core.CmdBackward
	case tcell.KeyLeft:
		return core.CmdTurnLeft
	case tcell.KeyRight:
		return core.CmdTurnRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.CmdQuit
	case tcell.KeyRune:
	default:
		return core.CmdNone
	}

	switch r {
	case 'w', 'W':
		return core.CmdForward
	case 's', 'S':
		return core.CmdBackward
	case 'a', 'A':
		return core.CmdStrafeLeft
	case 'd', 'D':
		return core.CmdStrafeRight
	case 'q', 'Q':
		return core.CmdTurnLeft
	case 'e', 'E':
		return core.CmdTurnRight
	case 'f', 'F':
		return core.CmdAttack
	case 'g', 'G':
		return core.CmdDodge
	case ' ', '.':
		return core.CmdWait
	case 'h', 'H':
		return core.CmdDrink
	case 'p', 'P':
		return core.CmdPause
	}
	return core.CmdNone
}

// EventCommand maps a tcell key event
func EventCommand(ev *tcell.EventKey) core.Command {
	return KeyCommand(ev.Key(), ev.Rune())
}

// Help is the key reference shown under the map
const Help = "w/s move  a/d strafe  q/e turn  f attack  g dodge  . wait  h drink  p pause  esc quit"
