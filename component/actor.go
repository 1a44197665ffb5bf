package component

import (
	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/vmath"
)

// ActorComponent identifies every placed entity and carries its static placement
// Characters track their live position in CharacterComponent instead
type ActorComponent struct {
	Kind     core.Kind
	Name     string
	Glyph    rune
	Position vmath.Vec3F
}
