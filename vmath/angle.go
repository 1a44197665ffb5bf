package vmath

import "math"

// Yaw is measured in degrees clockwise seen from above
// Yaw 0 looks down +Z, yaw 90 looks down +X

// YawLook returns the unit look vector for a yaw angle
func YawLook(yawDeg float64) Vec3F {
	rad := yawDeg * math.Pi / 180
	return Vec3F{X: math.Sin(rad), Y: 0, Z: math.Cos(rad)}
}

// LookYaw returns the yaw of a look vector, inverse of YawLook
func LookYaw(look Vec3F) float64 {
	return NormalizeYaw(math.Atan2(look.X, look.Z) * 180 / math.Pi)
}

// NormalizeYaw wraps an angle into [0, 360)
func NormalizeYaw(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// YawDelta returns the shortest signed rotation from -> to, in (-180, 180]
func YawDelta(from, to float64) float64 {
	d := NormalizeYaw(to - from)
	if d > 180 {
		d -= 360
	}
	return d
}
