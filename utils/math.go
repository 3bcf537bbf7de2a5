package utils

import (
	"math"
)

// TwoPi is a full revolution in radians.
const TwoPi = 2 * math.Pi

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// ModAngDeg wraps an angle in degrees into [0, 360).
func ModAngDeg(ang float64) float64 {
	ang = math.Mod(math.Mod(ang, 360)+360, 360)
	if ang >= 360 || ang == 0 {
		return 0
	}
	return ang
}

// ModAngRad wraps an angle in radians into [0, 2π).
func ModAngRad(ang float64) float64 {
	ang = math.Mod(ang, TwoPi)
	if ang < 0 {
		ang += TwoPi
	}
	// a tiny negative input can round up to exactly 2π above; also folds -0 into 0
	if ang >= TwoPi || ang == 0 {
		return 0
	}
	return ang
}

// Clamp returns value limited to [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
