package main

import "math"

// wrapDegrees folds an angle in degrees into the half-open range [0, 360).
func wrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// math.Mod of a tiny negative value can round back up to 360.
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// clampFloat constrains v to lie within the inclusive [min, max] range.
func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// radians converts compass degrees to radians for GeoM rotations.
func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
