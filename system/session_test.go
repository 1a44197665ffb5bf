package system

import (
	"testing"

	"github.com/lixenwraith/gridcrawler/component"
	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/engine"
	"github.com/lixenwraith/gridcrawler/event"
	"github.com/lixenwraith/gridcrawler/inventory"
	"github.com/lixenwraith/gridcrawler/physics"
	"github.com/lixenwraith/gridcrawler/vmath"
)

func TestPauseBlocksCommands(t *testing.T) {
	h := newHarness(t, physics.NewWorld(), inventory.New(), false)
	h.load(corridor)
	p := h.player()

	h.command(core.CmdPause)
	h.settle()
	if h.world.Resources.Session.Phase != engine.PhasePaused {
		t.Fatalf("Expected paused, got %s", h.world.Resources.Session.Phase)
	}

	h.command(core.CmdForward)
	h.settle()
	if !h.character(p).Idle() {
		t.Error("Expected movement ignored while paused")
	}

	h.command(core.CmdPause)
	h.settle()
	if !h.world.Resources.Session.Playing() {
		t.Errorf("Expected resumed, got %s", h.world.Resources.Session.Phase)
	}
}

func TestQuitEndsSession(t *testing.T) {
	h := newHarness(t, physics.NewWorld(), inventory.New(), false)
	h.load(corridor)

	h.command(core.CmdQuit)
	h.settle()

	if h.world.Resources.Session.Phase != engine.PhaseQuit {
		t.Errorf("Expected quit, got %s", h.world.Resources.Session.Phase)
	}
	if !h.world.Resources.Session.Over() {
		t.Error("Expected session over")
	}
}

func TestTreasureCountsGold(t *testing.T) {
	inv := inventory.New()
	h := newHarness(t, physics.NewWorld(), inv, false)
	h.load(corridor)
	p := h.player()

	pos := h.character(p).Position
	h.spawnItem(pos, component.Item{Kind: component.ItemTreasure, Name: "gold coins", Value: 25})
	h.world.PushEvent(event.EventPlayerTurn, 0, &event.TurnPayload{})
	h.settle()

	if h.world.Resources.Session.Gold != 25 {
		t.Errorf("Expected 25 gold, got %d", h.world.Resources.Session.Gold)
	}
	if inv.Count(component.ItemTreasure) != 1 {
		t.Error("Expected treasure in inventory")
	}
}

func TestExitLoadsNextLevelAndCarriesVitals(t *testing.T) {
	h := newHarness(t, physics.NewWorld(), inventory.New(), false)
	h.levels = map[string]string{
		"second": `
name: second
map:
  - "..@"
`,
	}
	h.load(`
name: first
next: second
map:
  - "@"
  - ">"
`)
	h.setHealth(h.player(), 17)

	h.command(core.CmdForward)
	session := h.world.Resources.Session
	h.runUntil(func() bool { return session.Level == "second" && h.ready() }, 240)

	p := h.player()
	if got := h.character(p).Position; got != (vmath.Vec3F{X: 2 * cell}) {
		t.Errorf("Expected player at the second level start, got %+v", got)
	}
	if got := h.character(p).Health; got != 17 {
		t.Errorf("Expected carried health 17, got %d", got)
	}
	if session.NextLevel != "" {
		t.Errorf("Expected next level cleared, got %q", session.NextLevel)
	}
}

func TestMissingNextLevelQuits(t *testing.T) {
	h := newHarness(t, physics.NewWorld(), inventory.New(), false)
	h.levels = map[string]string{}
	h.load(`
name: first
next: nowhere
map:
  - "@"
  - ">"
`)

	h.command(core.CmdForward)
	h.runUntil(func() bool { return h.world.Resources.Session.Phase == engine.PhaseQuit }, 240)
}

func TestRepeatedMessagesCollapse(t *testing.T) {
	h := newHarness(t, physics.NewWorld(), inventory.New(), false)
	h.load(corridor)

	for range 3 {
		h.world.PushMessage(0, "The wind howls")
		h.tick()
	}
	h.world.PushMessage(0, "Silence")
	h.tick()

	lines := h.world.Resources.Messages.Lines()
	if len(lines) < 2 {
		t.Fatalf("Expected at least 2 lines, got %v", lines)
	}
	if got := lines[len(lines)-2]; got != "The wind howls (x3)" {
		t.Errorf("Expected collapsed line, got %q", got)
	}
	if last, _ := h.world.Resources.Messages.Last(); last != "Silence" {
		t.Errorf("Expected last line Silence, got %q", last)
	}

	h.load(corridor)
	if h.world.Resources.Messages.Len() != 0 {
		t.Error("Expected log cleared on level start")
	}
}
