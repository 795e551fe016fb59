package deltae

import "math"

// CIE1976 returns the CIE76 color difference: the Euclidean distance between
// a and b in L*a*b* space.
//
// The result is symmetric and zero for identical colors. A ∆E of about 2.3
// corresponds to a just noticeable difference.
func CIE1976(a, b []float64) (float64, error) {
	c1, err := CheckColor(a, false)
	if err != nil {
		return 0, err
	}
	c2, err := CheckColor(b, false)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(sq(c1[0]-c2[0]) + sq(c1[1]-c2[1]) + sq(c1[2]-c2[2])), nil
}
