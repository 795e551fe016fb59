package deltae

import "math"

// ToDegrees converts an angle in radians to degrees.
func ToDegrees(radians float64) float64 {
	return radians * (180 / math.Pi)
}

// ToRadians converts an angle in degrees to radians.
func ToRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// CosDeg returns the cosine of an angle given in degrees.
func CosDeg(degrees float64) float64 {
	return math.Cos(ToRadians(degrees))
}

// SinDeg returns the sine of an angle given in degrees.
func SinDeg(degrees float64) float64 {
	return math.Sin(ToRadians(degrees))
}

// Atan2Deg returns the arctangent of y/x in degrees, in the range (-180, 180].
//
// The argument order follows math.Atan2. Atan2Deg(0, 0) is 0 regardless of
// the sign of either zero.
func Atan2Deg(y, x float64) float64 {
	if y == 0 && x == 0 {
		return 0
	}
	return ToDegrees(math.Atan2(y, x))
}

// normalizeHue reduces a hue angle into [0, 360).
func normalizeHue(h float64) float64 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}

func sq(x float64) float64 {
	return x * x
}
