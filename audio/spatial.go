package audio

import (
	"math"

	"github.com/lixenwraith/gridcrawler/parameter"
	"github.com/lixenwraith/gridcrawler/vmath"
)

var up = vmath.Vec3F{Y: 1}

// Spatialize returns stereo pan in [-1, 1] and linear gain in [0, 1] for an emitter
// heard by a listener at pos looking along look, cell is the grid cell length
// Pan follows the listener's right vector, gain halves every two cells and is zero past the falloff radius
func Spatialize(pos, look, emitter vmath.Vec3F, cell float64) (pan, gain float64) {
	offset := vmath.V3FSub(emitter, pos)
	offset.Y = 0
	dist := vmath.V3FMag(offset) / cell
	if dist > parameter.AudioFalloffCells {
		return 0, 0
	}
	if dist > 0 {
		right := vmath.V3FNormalize(vmath.V3FCross(up, look))
		pan = vmath.V3FDot(vmath.V3FNormalize(offset), right)
	}
	gain = math.Exp2(-dist * parameter.AudioFalloffPerCell)
	return max(-1, min(1, pan)), gain
}
