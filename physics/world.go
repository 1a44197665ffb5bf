package physics

import (
	"math"

	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/vmath"
)

// Collider is a static box tagged with the owning entity's kind
type Collider struct {
	Entity core.Entity
	Kind   core.Kind
	Box    AABB
}

// World holds static colliders and answers segment queries
// Not synchronized, owned by the tick goroutine
type World struct {
	colliders map[core.Entity]int
	list      []Collider
}

// NewWorld creates an empty collision world
func NewWorld() *World {
	return &World{
		colliders: make(map[core.Entity]int),
		list:      make([]Collider, 0, 256),
	}
}

// Add registers or replaces the collider of an entity
func (w *World) Add(e core.Entity, kind core.Kind, box AABB) {
	if i, ok := w.colliders[e]; ok {
		w.list[i] = Collider{Entity: e, Kind: kind, Box: box}
		return
	}
	w.colliders[e] = len(w.list)
	w.list = append(w.list, Collider{Entity: e, Kind: kind, Box: box})
}

// Remove deletes an entity's collider, returns false if it had none
func (w *World) Remove(e core.Entity) bool {
	i, ok := w.colliders[e]
	if !ok {
		return false
	}
	last := len(w.list) - 1
	if i != last {
		w.list[i] = w.list[last]
		w.colliders[w.list[i].Entity] = i
	}
	w.list = w.list[:last]
	delete(w.colliders, e)
	return true
}

// Has reports whether e owns a collider
func (w *World) Has(e core.Entity) bool {
	_, ok := w.colliders[e]
	return ok
}

// Len returns the collider count
func (w *World) Len() int {
	return len(w.list)
}

// Clear removes all colliders
func (w *World) Clear() {
	clear(w.colliders)
	w.list = w.list[:0]
}

// SegmentIntersect returns the nearest collider hit along the segment
// Colliders whose kind fails filter are skipped, nil filter accepts all
func (w *World) SegmentIntersect(origin, dir vmath.Vec3F, maxLen float64, filter func(core.Kind) bool) (bool, vmath.Vec3F, vmath.Vec3F) {
	best := math.Inf(1)
	var normal vmath.Vec3F
	found := false

	for i := range w.list {
		c := &w.list[i]
		if filter != nil && !filter(c.Kind) {
			continue
		}
		hit, t, n := c.Box.Segment(origin, dir, maxLen)
		if hit && t < best {
			best, normal, found = t, n, true
		}
	}

	if !found {
		return false, vmath.Vec3F{}, vmath.Vec3F{}
	}
	return true, vmath.V3FAdd(origin, vmath.V3FScale(dir, best)), normal
}
