package system

import (
	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/engine"
	"github.com/lixenwraith/gridcrawler/vmath"
)

// charactersOf returns characters of kind in insertion order
func charactersOf(w *engine.World, kind core.Kind) []core.Entity {
	all := w.Components.Character.GetAllEntities()
	result := all[:0]
	for _, e := range all {
		if w.KindOf(e) == kind {
			result = append(result, e)
		}
	}
	return result
}

// firstPlayer returns the first player character, zero if none
func firstPlayer(w *engine.World) core.Entity {
	for _, e := range w.Components.Character.GetAllEntities() {
		if w.KindOf(e) == core.KindPlayer {
			return e
		}
	}
	return 0
}

// occupied reports whether any character other than self stands on p
func occupied(w *engine.World, p vmath.Vec3F, self core.Entity) bool {
	tol := w.Resources.Config.ExactTolerance
	for _, e := range w.Components.Character.GetAllEntities() {
		if e == self {
			continue
		}
		c, _ := w.Components.Character.GetComponent(e)
		if vmath.V3FDistanceXZ(c.Position, p) <= tol || vmath.V3FDistanceXZ(c.TargetPosition, p) <= tol {
			return true
		}
	}
	return false
}

// actorName returns a display name for messages
func actorName(w *engine.World, e core.Entity) string {
	if a, ok := w.Components.Actor.GetComponent(e); ok && a.Name != "" {
		return a.Name
	}
	return w.KindOf(e).String()
}

// adjacent reports whether a and b stand within one cell of each other
func adjacent(w *engine.World, a, b core.Entity) bool {
	apos, aok := w.PositionOf(a)
	bpos, bok := w.PositionOf(b)
	if !aok || !bok {
		return false
	}
	cfg := w.Resources.Config
	return vmath.V3FDistanceXZ(apos, bpos) <= cfg.CellLength+cfg.ExactTolerance
}
