package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridcrawler/component"
	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/engine"
	"github.com/lixenwraith/gridcrawler/parameter"
	"github.com/lixenwraith/gridcrawler/vmath"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Screen init failed: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := range w {
		b.WriteRune(runeAt(s, x, y))
	}
	return b.String()
}

func place(w *engine.World, kind core.Kind, glyph rune, col, row int) core.Entity {
	e := w.CreateEntity()
	pos := vmath.Vec3F{X: float64(col) * parameter.CellLength, Z: float64(row) * parameter.CellLength}
	w.Components.Actor.SetComponent(e, component.ActorComponent{Kind: kind, Glyph: glyph, Position: pos})
	return e
}

func TestKeyCommandBindings(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want core.Command
	}{
		{tcell.KeyUp, 0, core.CmdForward},
		{tcell.KeyLeft, 0, core.CmdTurnLeft},
		{tcell.KeyEscape, 0, core.CmdQuit},
		{tcell.KeyCtrlC, 0, core.CmdQuit},
		{tcell.KeyRune, 'w', core.CmdForward},
		{tcell.KeyRune, 'A', core.CmdStrafeLeft},
		{tcell.KeyRune, 'e', core.CmdTurnRight},
		{tcell.KeyRune, 'f', core.CmdAttack},
		{tcell.KeyRune, 'g', core.CmdDodge},
		{tcell.KeyRune, '.', core.CmdWait},
		{tcell.KeyRune, 'h', core.CmdDrink},
		{tcell.KeyRune, 'p', core.CmdPause},
		{tcell.KeyRune, 'z', core.CmdNone},
		{tcell.KeyTab, 0, core.CmdNone},
	}
	for _, tt := range tests {
		if got := KeyCommand(tt.key, tt.r); got != tt.want {
			t.Errorf("KeyCommand(%v, %q): expected %s, got %s", tt.key, tt.r, tt.want, got)
		}
	}
}

func TestDrawMapAndHUD(t *testing.T) {
	screen := newScreen(t)
	w := engine.NewWorld(engine.NewResource(nil, nil, nil, nil, 1))

	place(w, core.KindArchitecture, '#', 0, 0)
	player := place(w, core.KindPlayer, '@', 1, 0)
	w.Components.Character.SetComponent(player, component.NewCharacter(
		vmath.Vec3F{X: parameter.CellLength}, 90, parameter.MoveSpeed, parameter.RotateSpeed, 30, 6, 2))
	place(w, core.KindEnemy, 'g', 3, 1)
	w.Resources.Session.Level = "crypt"
	w.Resources.Messages.Append("You wait")

	NewView(screen, w).Draw()

	if got := runeAt(screen, mapLeft, mapTop); got != '#' {
		t.Errorf("Expected wall at map origin, got %q", got)
	}
	if got := runeAt(screen, mapLeft+1, mapTop); got != '>' {
		t.Errorf("Expected east-facing player arrow, got %q", got)
	}
	if got := runeAt(screen, mapLeft+3, mapTop+1); got != 'g' {
		t.Errorf("Expected enemy glyph, got %q", got)
	}
	if got := runeAt(screen, mapLeft+2, mapTop); got != '.' {
		t.Errorf("Expected floor fill, got %q", got)
	}

	hud := rowText(screen, mapTop+2)
	if !strings.Contains(hud, "HP 30/30") || !strings.Contains(hud, "Level crypt") {
		t.Errorf("Unexpected HUD %q", hud)
	}

	found := false
	_, h := screen.Size()
	for y := range h {
		if strings.Contains(rowText(screen, y), "You wait") {
			found = true
		}
	}
	if !found {
		t.Error("Expected message log line on screen")
	}
}

func TestDrawBannerByPhase(t *testing.T) {
	screen := newScreen(t)
	w := engine.NewWorld(engine.NewResource(nil, nil, nil, nil, 1))
	v := NewView(screen, w)

	w.Resources.Session.Phase = engine.PhasePlaying
	v.Draw()
	if strings.TrimSpace(rowText(screen, 0)) != "" {
		t.Error("Expected no banner while playing")
	}

	w.Resources.Session.Phase = engine.PhaseLost
	v.Draw()
	if !strings.Contains(rowText(screen, 0), "YOU DIED") {
		t.Errorf("Expected defeat banner, got %q", rowText(screen, 0))
	}
}
