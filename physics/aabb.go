package physics

import (
	"math"

	"github.com/lixenwraith/gridcrawler/vmath"
)

// AABB is an axis-aligned box
type AABB struct {
	Min vmath.Vec3F
	Max vmath.Vec3F
}

// CellBox returns the box filling one grid cell centered at center
func CellBox(center vmath.Vec3F, cellLength float64) AABB {
	h := cellLength / 2
	ext := vmath.Vec3F{X: h, Y: h, Z: h}
	return AABB{Min: vmath.V3FSub(center, ext), Max: vmath.V3FAdd(center, ext)}
}

// Contains reports whether p lies inside or on the box
func (b AABB) Contains(p vmath.Vec3F) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Segment intersects a segment from origin along unit dir up to maxLen with the box
// Slab method, returns entry distance and entry face normal
// An origin inside the box hits at distance 0 with normal -dir
func (b AABB) Segment(origin, dir vmath.Vec3F, maxLen float64) (bool, float64, vmath.Vec3F) {
	o := [3]float64{origin.X, origin.Y, origin.Z}
	d := [3]float64{dir.X, dir.Y, dir.Z}
	lo := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	hi := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	tNear, tFar := math.Inf(-1), math.Inf(1)
	axis, sign := -1, 0.0

	for i := 0; i < 3; i++ {
		if math.Abs(d[i]) < 1e-12 {
			// Parallel to slab, must already be within it
			if o[i] < lo[i] || o[i] > hi[i] {
				return false, 0, vmath.Vec3F{}
			}
			continue
		}
		inv := 1 / d[i]
		t1 := (lo[i] - o[i]) * inv
		t2 := (hi[i] - o[i]) * inv
		s := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			s = 1.0
		}
		if t1 > tNear {
			tNear, axis, sign = t1, i, s
		}
		if t2 < tFar {
			tFar = t2
		}
		if tNear > tFar {
			return false, 0, vmath.Vec3F{}
		}
	}

	if tFar < 0 || tNear > maxLen {
		return false, 0, vmath.Vec3F{}
	}
	if tNear < 0 {
		return true, 0, vmath.V3FScale(dir, -1)
	}

	var n vmath.Vec3F
	switch axis {
	case 0:
		n.X = sign
	case 1:
		n.Y = sign
	case 2:
		n.Z = sign
	}
	return true, tNear, n
}
