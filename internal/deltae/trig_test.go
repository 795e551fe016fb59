package deltae

import (
	"math"
	"testing"
)

const epsilon = 1e-12

func approxEqual(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol
}

func TestAngleConversion(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) float64
		in   float64
		want float64
	}{
		{"toDegrees 0", ToDegrees, 0, 0},
		{"toDegrees pi", ToDegrees, math.Pi, 180},
		{"toDegrees -pi/2", ToDegrees, -math.Pi / 2, -90},
		{"toRadians 0", ToRadians, 0, 0},
		{"toRadians 180", ToRadians, 180, math.Pi},
		{"toRadians 360", ToRadians, 360, 2 * math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); !approxEqual(got, tt.want, epsilon) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDegreeTrig(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"cos 0", CosDeg(0), 1},
		{"cos 180", CosDeg(180), -1},
		{"cos 90", CosDeg(90), 0},
		{"sin 0", SinDeg(0), 0},
		{"sin 90", SinDeg(90), 1},
		{"sin -90", SinDeg(-90), -1},
		{"sin 30", SinDeg(30), 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !approxEqual(tt.got, tt.want, epsilon) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestAtan2Deg(t *testing.T) {
	tests := []struct {
		name string
		y, x float64
		want float64
	}{
		{"fourth quadrant", -1, 1, -45},
		{"first quadrant", 1, 1, 45},
		{"origin", 0, 0, 0},
		{"negative zero x", 0, math.Copysign(0, -1), 0},
		{"negative x axis", 0, -1, 180},
		{"positive y axis", 1, 0, 90},
		{"third quadrant", -1, -1, -135},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Atan2Deg(tt.y, tt.x); !approxEqual(got, tt.want, epsilon) {
				t.Errorf("Atan2Deg(%v, %v) = %v, want %v", tt.y, tt.x, got, tt.want)
			}
		})
	}
}

func TestNormalizeHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{-45, 315},
		{360, 0},
		{725, 5},
		{-720, 0},
		{359.5, 359.5},
	}

	for _, tt := range tests {
		if got := normalizeHue(tt.in); !approxEqual(got, tt.want, epsilon) {
			t.Errorf("normalizeHue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
