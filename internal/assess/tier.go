// Package assess maps dataset metrics onto a quality tier and a set of
// prioritized processing recommendations. Everything here is a pure,
// total function of the metrics snapshot: no I/O, no failures.
package assess

import "github.com/lfaller/fastq-agent-system/internal/metrics"

// Tier is the overall quality classification, ordered from worst to best.
type Tier int

// Quality tiers. The numeric order backs the >= comparisons in reports and
// tests; the string values are the wire/display form.
const (
	TierFailed Tier = iota
	TierPoor
	TierFair
	TierGood
	TierExcellent
)

// Average-quality cutoffs for each tier. Boundary values belong to the
// higher tier (inclusive lower bound).
const (
	ExcellentMinQuality = 35.0
	GoodMinQuality      = 30.0
	FairMinQuality      = 25.0
	PoorMinQuality      = 20.0
)

func (t Tier) String() string {
	switch t {
	case TierExcellent:
		return "excellent"
	case TierGood:
		return "good"
	case TierFair:
		return "fair"
	case TierPoor:
		return "poor"
	default:
		return "failed"
	}
}

// MarshalText implements encoding.TextMarshaler so tiers serialize as
// their display names in JSON reports.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Classify maps a metrics snapshot onto its quality tier. Monotone in
// average quality: a higher score never yields a lower tier.
func Classify(m metrics.DatasetMetrics) Tier {
	switch {
	case m.AverageQuality >= ExcellentMinQuality:
		return TierExcellent
	case m.AverageQuality >= GoodMinQuality:
		return TierGood
	case m.AverageQuality >= FairMinQuality:
		return TierFair
	case m.AverageQuality >= PoorMinQuality:
		return TierPoor
	default:
		return TierFailed
	}
}
