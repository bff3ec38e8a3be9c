package assess

import "github.com/lfaller/fastq-agent-system/internal/metrics"

// GC content thresholds, percentages.
const (
	GCIdealMin      = 40.0
	GCIdealMax      = 60.0
	GCAcceptableMin = 35.0
	GCAcceptableMax = 65.0
)

// GCStatus describes where a GC percentage falls relative to the ideal
// and acceptable ranges.
type GCStatus string

const (
	GCIdeal      GCStatus = "ideal"
	GCAcceptable GCStatus = "acceptable"
	GCUnusual    GCStatus = "unusual"
)

// AssessGC classifies a GC percentage. Only the unusual band sets the
// poor-GC quality flag.
func AssessGC(gc float64) GCStatus {
	switch {
	case gc >= GCIdealMin && gc <= GCIdealMax:
		return GCIdeal
	case gc >= GCAcceptableMin && gc <= GCAcceptableMax:
		return GCAcceptable
	default:
		return GCUnusual
	}
}

// QualityFlags are boolean warnings derived from the metrics snapshot,
// surfaced in report sections alongside the tier.
type QualityFlags struct {
	LowQualityReads   bool `json:"low_quality_reads"`
	UnevenReadLengths bool `json:"uneven_read_lengths"`
	PoorGCContent     bool `json:"poor_gc_content"`
}

// Flags derives the quality warnings for a dataset.
func Flags(m metrics.DatasetMetrics) QualityFlags {
	return QualityFlags{
		LowQualityReads:   m.AverageQuality < FairMinQuality,
		UnevenReadLengths: m.LengthSpread() > maxLengthSpread,
		PoorGCContent:     AssessGC(m.GCContent) == GCUnusual,
	}
}
