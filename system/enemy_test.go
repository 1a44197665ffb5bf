package system

import (
	"testing"

	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/event"
	"github.com/lixenwraith/gridcrawler/inventory"
	"github.com/lixenwraith/gridcrawler/physics"
	"github.com/lixenwraith/gridcrawler/vmath"
)

func TestEnemyApproachesAwarePlayer(t *testing.T) {
	h := newHarness(t, physics.NewWorld(), inventory.New(), true)
	h.load(`
map:
  - "@.g"
enemies:
  g: {name: goblin}
`)
	h.settle()
	enemy := h.first(core.KindEnemy)

	h.command(core.CmdWait)
	h.runUntil(h.ready, 240)

	if got := h.character(enemy).Position; got != (vmath.Vec3F{X: cell}) {
		t.Errorf("Expected goblin one cell west at (%v,0,0), got %+v", cell, got)
	}
	if !h.turn().InCombat {
		t.Error("Expected combat after the goblin closed in")
	}
}

func TestUnawareEnemyStaysPut(t *testing.T) {
	h := newHarness(t, physics.NewWorld(), inventory.New(), true)
	h.load(`
map:
  - "@...g"
enemies:
  g: {name: goblin}
`)
	h.settle()
	enemy := h.first(core.KindEnemy)
	start := h.character(enemy).Position

	h.command(core.CmdWait)
	h.runUntil(h.ready, 240)

	if h.character(enemy).Position != start {
		t.Error("Expected distant goblin to stay")
	}
}

func TestSingleMoverPerEnemyTurn(t *testing.T) {
	h := newHarness(t, physics.NewWorld(), inventory.New(), true)
	h.load(`
map:
  - "g.@.o"
enemies:
  g: {name: goblin}
  o: {name: orc}
`)
	h.settle()
	goblin := h.first(core.KindEnemy)
	var orc core.Entity
	for _, e := range h.world.Components.Enemy.GetAllEntities() {
		if e != goblin {
			orc = e
		}
	}
	orcStart := h.character(orc).Position

	h.command(core.CmdWait)
	h.runUntil(h.ready, 240)

	if h.character(goblin).Position != (vmath.Vec3F{X: cell}) {
		t.Errorf("Expected goblin to move first, got %+v", h.character(goblin).Position)
	}
	if h.character(orc).Position != orcStart {
		t.Error("Expected orc to wait for a later enemy turn")
	}
}

func TestEnemyBlockedByWallWaits(t *testing.T) {
	h := newHarness(t, physics.NewWorld(), inventory.New(), true)
	h.load(`
map:
  - "@#g"
enemies:
  g: {name: goblin}
`)
	h.settle()
	enemy := h.first(core.KindEnemy)
	start := h.character(enemy).Position

	h.command(core.CmdWait)
	h.runUntil(h.ready, 240)

	if h.character(enemy).Position != start {
		t.Errorf("Expected walled-off goblin to stay, got %+v", h.character(enemy).Position)
	}
	if h.turn().InCombat {
		t.Error("Expected no combat through a wall")
	}
}

func TestRestartReleasesPendingMover(t *testing.T) {
	h := newHarness(t, physics.NewWorld(), inventory.New(), true)
	h.load(`
map:
  - "@.g"
enemies:
  g: {name: goblin}
`)
	h.settle()
	enemy := h.first(core.KindEnemy)

	h.command(core.CmdWait)
	h.runUntil(func() bool {
		ec, _ := h.world.Components.Enemy.GetComponent(enemy)
		return ec.ThinkRemaining > 0
	}, 30)

	h.world.PushEvent(event.EventStart, 0, &event.LevelPayload{Name: "again"})
	h.tick()

	ec, _ := h.world.Components.Enemy.GetComponent(enemy)
	if ec.ThinkRemaining != 0 {
		t.Errorf("Expected think time cleared on restart, got %v", ec.ThinkRemaining)
	}
	start := h.character(enemy).Position
	for range 30 {
		h.tick()
	}
	if h.character(enemy).Position != start {
		t.Error("Expected no enemy action after restart")
	}
}
