package deltae

import "math"

// ThresholdType selects the CMC l:c weighting ratio.
type ThresholdType string

const (
	// Acceptability weights lightness at 2:1 (l=2, c=1).
	Acceptability ThresholdType = "acceptability"
	// Imperceptibility weights lightness at 1:1 (l=1, c=1).
	Imperceptibility ThresholdType = "imperceptibility"
)

// Resolve returns the threshold the weights are taken from. The empty value
// means Acceptability; any unrecognized value falls back to Imperceptibility.
func (t ThresholdType) Resolve() ThresholdType {
	switch t {
	case Acceptability, "":
		return Acceptability
	default:
		return Imperceptibility
	}
}

func (t ThresholdType) ratio() (l, c float64) {
	if t.Resolve() == Acceptability {
		return 2, 1
	}
	return 1, 1
}

// CMC1984 returns the CMC l:c color difference of b from a.
//
// Only the first color's lightness, chroma and hue feed the weighting
// functions, so the result is asymmetric. An empty threshold type means
// Acceptability.
func CMC1984(a, b []float64, threshold ThresholdType) (float64, error) {
	c1lab, err := CheckColor(a, false)
	if err != nil {
		return 0, err
	}
	c2lab, err := CheckColor(b, false)
	if err != nil {
		return 0, err
	}

	l, c := threshold.ratio()

	lch1 := LabToLCh(c1lab)
	l1, c1, h1 := lch1[0], lch1[1], lch1[2]
	c2 := chromaOf(c2lab[1], c2lab[2])

	c1p4 := math.Pow(c1, 4)
	f := math.Sqrt(c1p4 / (c1p4 + 1900))

	var t float64
	if h1 >= 164 && h1 <= 345 {
		t = 0.56 + math.Abs(0.2*CosDeg(h1+168))
	} else {
		t = 0.36 + math.Abs(0.4*CosDeg(h1+35))
	}

	sl := 0.511
	if l1 >= 16 {
		sl = (0.040975 * l1) / (1 + 0.01765*l1)
	}
	sc := (0.0638*c1)/(1+0.0131*c1) + 0.638
	sh := sc * (f*t + 1 - f)

	deltaL := l1 - c2lab[0]
	deltaC := c1 - c2
	deltaH := signedDeltaH(c1lab[1]-c2lab[1], c1lab[2]-c2lab[2], deltaC)

	return math.Sqrt(
		sq(deltaL/(l*sl)) +
			sq(deltaC/(c*sc)) +
			sq(deltaH/sh),
	), nil
}
