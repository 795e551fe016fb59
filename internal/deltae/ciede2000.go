package deltae

import "math"

// pow25To7 is 25⁷.
const pow25To7 = 6103515625.0

// CIEDE2000 returns the CIE 2000 color difference of sample from reference,
// with the parametric factors kL, kC and kH all set to 1.
func CIEDE2000(reference, sample []float64) (float64, error) {
	ref, err := CheckColor(reference, false)
	if err != nil {
		return 0, err
	}
	smp, err := CheckColor(sample, false)
	if err != nil {
		return 0, err
	}

	const kl, kc, kh = 1.0, 1.0, 1.0

	l1, a1, b1 := ref[0], ref[1], ref[2]
	l2, a2, b2 := smp[0], smp[1], smp[2]

	c1 := LabToLCh(ref)[1]
	c2 := LabToLCh(smp)[1]

	lBar := (l1 + l2) / 2
	cBar := (c1 + c2) / 2

	// Shared by the a′ adjustment and the rotation term.
	cBar7 := math.Pow(cBar, 7)
	coeff := math.Sqrt(cBar7 / (cBar7 + pow25To7))

	a1p := a1 + a1/2*(1-coeff)
	a2p := a2 + a2/2*(1-coeff)

	c1p := chromaOf(a1p, b1)
	c2p := chromaOf(a2p, b2)
	cBarP := (c1p + c2p) / 2

	h1p := hueAngle(b1, a1p)
	h2p := hueAngle(b2, a2p)

	var dhp, dHp, hBarP float64
	if c1p == 0 || c2p == 0 {
		hBarP = h1p + h2p
	} else {
		switch {
		case math.Abs(h1p-h2p) <= 180:
			dhp = h2p - h1p
		case h2p <= h1p:
			dhp = h2p - h1p + 360
		default:
			dhp = h2p - h1p - 360
		}
		dHp = 2 * math.Sqrt(c1p*c2p) * SinDeg(dhp/2)

		switch {
		case math.Abs(h1p-h2p) <= 180:
			hBarP = (h1p + h2p) / 2
		case h1p+h2p < 360:
			hBarP = (h1p + h2p + 360) / 2
		default:
			hBarP = (h1p + h2p - 360) / 2
		}
	}

	t := 1 -
		0.17*CosDeg(hBarP-30) +
		0.24*CosDeg(2*hBarP) +
		0.32*CosDeg(3*hBarP+6) -
		0.20*CosDeg(4*hBarP-63)

	lBar50 := sq(lBar - 50)
	sl := 1 + 0.015*lBar50/math.Sqrt(20+lBar50)
	sc := 1 + 0.045*cBarP
	sh := 1 + 0.015*cBarP*t

	rt := -2 * coeff * SinDeg(60*math.Exp(-sq((hBarP-275)/25)))

	termL := (l2 - l1) / (kl * sl)
	termC := (c2p - c1p) / (kc * sc)
	termH := dHp / (kh * sh)

	return math.Sqrt(sq(termL) + sq(termC) + sq(termH) + rt*termC*termH), nil
}

// hueAngle returns atan2(b, a) in degrees reduced into [0, 360), or 0 when
// both components are zero.
func hueAngle(b, a float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	return normalizeHue(Atan2Deg(b, a))
}
