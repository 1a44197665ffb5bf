package game

import (
	"time"

	"github.com/samber/oops"

	"github.com/lixenwraith/gridcrawler/core"
)

// ScriptCommand maps a script letter to a command
//
//	w forward   s backward   a strafe left   d strafe right
//	q turn left e turn right f attack        g dodge
//	. wait      h drink
func ScriptCommand(r rune) (core.Command, bool) {
	switch r {
	case 'w':
		return core.CmdForward, true
	case 's':
		return core.CmdBackward, true
	case 'a':
		return core.CmdStrafeLeft, true
	case 'd':
		return core.CmdStrafeRight, true
	case 'q':
		return core.CmdTurnLeft, true
	case 'e':
		return core.CmdTurnRight, true
	case 'f':
		return core.CmdAttack, true
	case 'g':
		return core.CmdDodge, true
	case '.':
		return core.CmdWait, true
	case 'h':
		return core.CmdDrink, true
	}
	return core.CmdNone, false
}

// RunScript plays commands headless, waiting for the player's turn before each
// Returns the number of commands issued before the run ended or the script ran out
func (g *Game) RunScript(script string, dt time.Duration, maxTicksPerCommand int) (int, error) {
	issued := 0
	for i, r := range script {
		if r == ' ' || r == '\n' || r == '\t' {
			continue
		}
		cmd, ok := ScriptCommand(r)
		if !ok {
			return issued, oops.In("script").With("offset", i, "letter", string(r)).Errorf("unknown script command")
		}

		g.Engine.RunUntil(dt, maxTicksPerCommand, func() bool {
			return g.Ready() || g.Session().Over()
		})
		if g.Session().Over() {
			return issued, nil
		}
		if !g.Ready() {
			return issued, oops.In("script").With("offset", i, "phase", g.Session().Phase.String()).Errorf("player not ready")
		}

		g.Command(cmd)
		issued++
		// Let the command take effect before polling readiness again
		g.Tick(dt)
	}
	g.Engine.RunUntil(dt, maxTicksPerCommand, func() bool {
		return g.Ready() || g.Session().Over()
	})
	return issued, nil
}
