package vmath

import "math"

// Dir is a unit grid direction with integer components
// Comparable, used as set key for blocked directions
type Dir struct {
	X, Y, Z int8
}

var (
	DirNorth = Dir{0, 0, -1}
	DirSouth = Dir{0, 0, 1}
	DirEast  = Dir{1, 0, 0}
	DirWest  = Dir{-1, 0, 0}
)

// DirOf snaps a vector to its dominant axis on the XZ plane
// Zero or vertical vectors yield the zero Dir; ties resolve to X
func DirOf(v Vec3F) Dir {
	ax, az := math.Abs(v.X), math.Abs(v.Z)
	if ax == 0 && az == 0 {
		return Dir{}
	}
	if ax >= az {
		if v.X > 0 {
			return DirEast
		}
		return DirWest
	}
	if v.Z > 0 {
		return DirSouth
	}
	return DirNorth
}

func (d Dir) Vec() Vec3F {
	return Vec3F{float64(d.X), float64(d.Y), float64(d.Z)}
}

func (d Dir) IsZero() bool {
	return d == Dir{}
}

func (d Dir) Neg() Dir {
	return Dir{-d.X, -d.Y, -d.Z}
}

func (d Dir) String() string {
	switch d {
	case DirNorth:
		return "north"
	case DirSouth:
		return "south"
	case DirEast:
		return "east"
	case DirWest:
		return "west"
	case Dir{}:
		return "none"
	}
	return "oblique"
}
