package deltae

import "math"

// LabToLCh converts an L*a*b* color to its cylindrical form.
//
// C is the chroma sqrt(a² + b²). The hue h is in degrees within [0, 360) and
// is defined as 0 for achromatic colors (C == 0). L is passed through.
func LabToLCh(c Lab) LCh {
	chroma := chromaOf(c[1], c[2])
	var hue float64
	if chroma > 0 {
		hue = normalizeHue(Atan2Deg(c[2], c[1]))
	}
	return LCh{c[0], chroma, hue}
}

func chromaOf(a, b float64) float64 {
	return math.Sqrt(a*a + b*b)
}

// signedDeltaH returns ∆H from the identity ∆H² = ∆a² + ∆b² − ∆C². A negative
// radicand yields NaN.
func signedDeltaH(deltaA, deltaB, deltaC float64) float64 {
	return math.Sqrt(deltaA*deltaA + deltaB*deltaB - deltaC*deltaC)
}
