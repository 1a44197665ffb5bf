package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector in world length units
// Y is up, the walkable plane is XZ
type Vec3F struct {
	X, Y, Z float64
}

var (
	Zero3F = Vec3F{}
	Up3F   = Vec3F{0, 1, 0}
)

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FCross(a, b Vec3F) Vec3F {
	return Vec3F{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FDistance returns euclidean distance between two points
func V3FDistance(a, b Vec3F) float64 {
	return V3FMag(V3FSub(a, b))
}

// V3FDistanceXZ returns distance projected on the walkable plane, height ignored
func V3FDistanceXZ(a, b Vec3F) float64 {
	dx, dz := a.X-b.X, a.Z-b.Z
	return math.Sqrt(dx*dx + dz*dz)
}

// V3FNear reports whether every component of a and b differs by at most eps
func V3FNear(a, b Vec3F, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

// V3FRight returns the right vector for a look/up pair
// Look +Z with up +Y yields +X
func V3FRight(look, up Vec3F) Vec3F {
	return V3FNormalize(V3FCross(up, look))
}
