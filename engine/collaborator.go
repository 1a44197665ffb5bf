package engine

import (
	"github.com/lixenwraith/gridcrawler/component"
	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/vmath"
)

//go:generate mockgen -destination=mocks/mock_collaborator.go -package=mocks github.com/lixenwraith/gridcrawler/engine Physics,Inventory

// Physics answers segment queries against static colliders
type Physics interface {
	// SegmentIntersect casts from origin along unit dir up to maxLen
	// Only colliders whose kind passes filter are considered, nil filter accepts all
	// Returns hit, hit point and surface normal of the nearest intersection
	SegmentIntersect(origin, dir vmath.Vec3F, maxLen float64, filter func(core.Kind) bool) (bool, vmath.Vec3F, vmath.Vec3F)
}

// Inventory holds the player's collected items
type Inventory interface {
	HasItem(kind component.ItemKind) bool
	// UseItem removes and returns one item of kind
	// Panics if none is held, callers check HasItem first
	UseItem(kind component.ItemKind) component.Item
	AddItem(item component.Item)
}
