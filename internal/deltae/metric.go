package deltae

import (
	"fmt"
	"strings"
)

// Metric names one of the color difference formulas.
type Metric string

const (
	MetricCIE1976   Metric = "cie1976"
	MetricCIE1994   Metric = "cie1994"
	MetricCIEDE2000 Metric = "ciede2000"
	MetricCMC1984   Metric = "cmc1984"
)

// Metrics returns every supported metric in publication order.
func Metrics() []Metric {
	return []Metric{MetricCIE1976, MetricCIE1994, MetricCIEDE2000, MetricCMC1984}
}

// ParseMetric resolves a metric name. Matching ignores case and accepts the
// common short aliases (cie76, cie94, de2000, cmc).
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cie1976", "cie76", "de76":
		return MetricCIE1976, nil
	case "cie1994", "cie94", "de94":
		return MetricCIE1994, nil
	case "ciede2000", "cie2000", "de2000", "de00":
		return MetricCIEDE2000, nil
	case "cmc1984", "cmc", "cmclc":
		return MetricCMC1984, nil
	default:
		return "", fmt.Errorf("unknown metric: %q", name)
	}
}

// Options carries the optional per-formula settings. The zero value selects
// GraphicArts for CIE94 and Acceptability for CMC l:c.
type Options struct {
	Application ApplicationType
	Threshold   ThresholdType
}

// Difference computes a single metric for one reference/sample pair.
func Difference(m Metric, reference, sample []float64, opts Options) (float64, error) {
	switch m {
	case MetricCIE1976:
		return CIE1976(reference, sample)
	case MetricCIE1994:
		return CIE1994(reference, sample, opts.Application)
	case MetricCIEDE2000:
		return CIEDE2000(reference, sample)
	case MetricCMC1984:
		return CMC1984(reference, sample, opts.Threshold)
	default:
		return 0, fmt.Errorf("unknown metric: %q", string(m))
	}
}

// Comparison holds every metric for one reference/sample pair.
type Comparison struct {
	CIE1976   float64
	CIE1994   float64
	CIEDE2000 float64
	CMC1984   float64
}

// Compare computes all four metrics for one reference/sample pair. The first
// validation failure is returned.
func Compare(reference, sample []float64, opts Options) (*Comparison, error) {
	var cmp Comparison
	targets := []struct {
		metric Metric
		dst    *float64
	}{
		{MetricCIE1976, &cmp.CIE1976},
		{MetricCIE1994, &cmp.CIE1994},
		{MetricCIEDE2000, &cmp.CIEDE2000},
		{MetricCMC1984, &cmp.CMC1984},
	}
	for _, tgt := range targets {
		v, err := Difference(tgt.metric, reference, sample, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tgt.metric, err)
		}
		*tgt.dst = v
	}
	return &cmp, nil
}
