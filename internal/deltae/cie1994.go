package deltae

import "math"

// ApplicationType selects the CIE94 weighting factors.
type ApplicationType string

const (
	GraphicArts ApplicationType = "graphicArts"
	Textiles    ApplicationType = "textiles"
)

type cie94Weights struct {
	k1, k2, kl float64
}

// Resolve returns the application type the weights are taken from: Textiles
// for Textiles, GraphicArts for anything else including the empty string.
func (t ApplicationType) Resolve() ApplicationType {
	if t == Textiles {
		return Textiles
	}
	return GraphicArts
}

func (t ApplicationType) weights() cie94Weights {
	if t.Resolve() == Textiles {
		return cie94Weights{k1: 0.048, k2: 0.014, kl: 2}
	}
	return cie94Weights{k1: 0.045, k2: 0.015, kl: 1}
}

// GetKlValue returns the CIE94 lightness weight kL for an application type:
// 2 for "textiles" and 1 for "graphicArts" or any unrecognized value.
func GetKlValue(applicationType string) float64 {
	return ApplicationType(applicationType).weights().kl
}

// CIE1994 returns the CIE94 color difference of sample from reference.
//
// The chroma of reference scales the chroma weight and the chroma of sample
// scales the hue weight, so the result depends on argument order. An empty
// application type means GraphicArts.
func CIE1994(reference, sample []float64, application ApplicationType) (float64, error) {
	ref, err := CheckColor(reference, false)
	if err != nil {
		return 0, err
	}
	smp, err := CheckColor(sample, false)
	if err != nil {
		return 0, err
	}

	w := application.weights()
	const kc, kh = 1.0, 1.0

	c1 := chromaOf(ref[1], ref[2])
	c2 := chromaOf(smp[1], smp[2])

	deltaL := ref[0] - smp[0]
	deltaC := c1 - c2
	deltaH := signedDeltaH(ref[1]-smp[1], ref[2]-smp[2], deltaC)

	sl := 1.0
	sc := 1 + w.k1*c1
	sh := 1 + w.k2*c2

	return math.Sqrt(
		sq(deltaL/(w.kl*sl)) +
			sq(deltaC/(kc*sc)) +
			sq(deltaH/(kh*sh)),
	), nil
}
