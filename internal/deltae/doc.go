// Package deltae computes perceptual color differences (∆E) between two colors
// expressed in CIE L*a*b* space.
//
// Four metrics are provided:
//   - CIE1976: Euclidean distance in L*a*b* (a true metric, symmetric)
//   - CIE1994: application-weighted distance (graphic arts or textiles)
//   - CIEDE2000: the CIE 2000 formula with hue rotation term
//   - CMC1984: CMC l:c with acceptability or imperceptibility weights
//
// CIE1994, CIEDE2000 and CMC1984 are quasimetrics: swapping the reference and
// sample may change the result.
//
// # Input
//
// Every formula accepts raw channel slices and validates them with CheckColor
// before any arithmetic. Exactly three channels are required:
//   - L: lightness, 0 to 100
//   - a: green–red axis, -128 to 127
//   - b: blue–yellow axis, -128 to 127
//
// Converting RGB or XYZ input into L*a*b* is the caller's job.
//
// # Errors
//
// Validation failures are returned as *Error values. Use errors.Is with
// ErrChannelCount or ErrCoordinateRange to classify them, and errors.As to read
// the offending values.
//
// # Not-a-Number Results
//
// CIE1994 and CMC1984 derive ∆H from the identity ∆H² = ∆a² + ∆b² − ∆C². For
// some nearly collinear inputs rounding drives the radicand slightly below zero
// and the result is NaN. This matches the published formulas and is not clamped.
//
// # Thread Safety
//
// All functions are pure and hold no state; they may be called concurrently.
package deltae
