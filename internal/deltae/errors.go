package deltae

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrorKind identifies which validation rule a color input failed.
type ErrorKind int

const (
	// ChannelCount means the input did not have exactly three channels.
	ChannelCount ErrorKind = iota + 1
	// CoordinateRange means one or more channels fell outside the L*a*b* bounds.
	CoordinateRange
)

// String returns a short name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case ChannelCount:
		return "channel count"
	case CoordinateRange:
		return "coordinate range"
	default:
		return "unknown"
	}
}

// Sentinel errors for use with errors.Is.
var (
	ErrChannelCount    = errors.New("deltae: wrong number of color channels")
	ErrCoordinateRange = errors.New("deltae: color coordinate out of range")
)

// RangeViolation describes one channel that is outside its L*a*b* bound.
type RangeViolation struct {
	Channel string  `json:"channel"` // "L", "a" or "b"
	Index   int     `json:"index"`   // Position in the input (0-2)
	Value   float64 `json:"value"`   // The offending value
	Bound   float64 `json:"bound"`   // The bound that was violated
	Min     float64 `json:"min"`     // Lower limit of the channel
	Max     float64 `json:"max"`     // Upper limit of the channel
}

// Error is returned when a color input fails validation.
//
// Kind selects which payload fields are meaningful:
//   - ChannelCount: Expected, Actual and Values
//   - CoordinateRange: Values and Violations
type Error struct {
	Kind       ErrorKind
	Expected   int
	Actual     int
	Values     []float64
	Violations []RangeViolation
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case ChannelCount:
		return fmt.Sprintf("expected %d color channels, got %d: %s",
			e.Expected, e.Actual, formatValues(e.Values))
	case CoordinateRange:
		parts := make([]string, 0, len(e.Violations))
		for _, v := range e.Violations {
			limit := "max"
			if v.Bound == v.Min {
				limit = "min"
			}
			parts = append(parts, fmt.Sprintf("%s=%s (%s %s)",
				v.Channel, formatFloat(v.Value), limit, formatFloat(v.Bound)))
		}
		return fmt.Sprintf("color %s out of range: %s; was the color converted to L*a*b* space?",
			formatValues(e.Values), strings.Join(parts, ", "))
	default:
		return "invalid color"
	}
}

// Is reports whether target is the sentinel matching e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrChannelCount:
		return e.Kind == ChannelCount
	case ErrCoordinateRange:
		return e.Kind == CoordinateRange
	}
	return false
}

func formatValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatFloat(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
