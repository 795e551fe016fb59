package deltae

// Lab is a color in CIE L*a*b* space, ordered L, a, b.
type Lab [3]float64

// LCh is a color in cylindrical L*C*h space, ordered L, C, h (degrees).
type LCh [3]float64

type channelBound struct {
	name     string
	min, max float64
}

var labBounds = [3]channelBound{
	{"L", 0, 100},
	{"a", -128, 127},
	{"b", -128, 127},
}

// IsValidLabColor reports, per channel, whether c lies within the L*a*b*
// bounds. Every channel is checked; NaN is never in range.
func IsValidLabColor(c Lab) [3]bool {
	var ok [3]bool
	for i, bnd := range labBounds {
		ok[i] = c[i] >= bnd.min && c[i] <= bnd.max
	}
	return ok
}

// CheckColor turns raw channel input into a validated Lab color.
//
// Input must have exactly three channels. When discardExcessChannels is set,
// longer input (an alpha channel, for example) is truncated to its first
// three values; shorter input is always rejected. The input slice is not
// modified.
//
// Returns an *Error of kind ChannelCount or CoordinateRange on failure.
func CheckColor(input []float64, discardExcessChannels bool) (Lab, error) {
	channels := input
	if len(channels) != 3 {
		if !discardExcessChannels || len(channels) < 3 {
			return Lab{}, &Error{
				Kind:     ChannelCount,
				Expected: 3,
				Actual:   len(input),
				Values:   append([]float64(nil), input...),
			}
		}
		channels = channels[:3]
	}

	c := Lab{channels[0], channels[1], channels[2]}

	var violations []RangeViolation
	for i, ok := range IsValidLabColor(c) {
		if ok {
			continue
		}
		bnd := labBounds[i]
		bound := bnd.max
		if c[i] < bnd.min {
			bound = bnd.min
		}
		violations = append(violations, RangeViolation{
			Channel: bnd.name,
			Index:   i,
			Value:   c[i],
			Bound:   bound,
			Min:     bnd.min,
			Max:     bnd.max,
		})
	}
	if len(violations) > 0 {
		return Lab{}, &Error{
			Kind:       CoordinateRange,
			Expected:   3,
			Actual:     3,
			Values:     c[:],
			Violations: violations,
		}
	}

	return c, nil
}
