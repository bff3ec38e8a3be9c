package assess

import (
	"fmt"
	"sort"

	"github.com/lfaller/fastq-agent-system/internal/metrics"
)

// Priority orders recommendations for display, highest first.
type Priority int

// Priority levels.
const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	default:
		return "low"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Recommendation is one advisory preprocessing action.
type Recommendation struct {
	Category   string         `json:"category"`
	Priority   Priority       `json:"priority"`
	Action     string         `json:"action"`
	Reason     string         `json:"reason"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// Recommendation categories.
const (
	CategoryInsufficientData   = "Insufficient Data"
	CategoryQualityFiltering   = "Quality Filtering"
	CategoryLengthFiltering    = "Length Filtering"
	CategoryContaminationCheck = "Contamination Check"
	CategoryAdapterTrimming    = "Adapter Trimming"
)

// Rule thresholds.
const (
	minViableReads      = 50 // below this the dataset is too small to assess
	minQualityParam     = 20 // suggested trimming floor
	maxLengthSpread     = 50 // bp of min/max spread before length filtering
	gcSevereLow         = 30.0
	gcSevereHigh        = 70.0
	adapterMinAvgLength = 50.0 // avg bp above which data is likely Illumina
)

// rule pairs a predicate over the metrics snapshot with the recommendation
// it emits. Rules are independent: several may fire for the same dataset,
// and none suppresses another.
type rule struct {
	applies func(metrics.DatasetMetrics) bool
	build   func(metrics.DatasetMetrics) Recommendation
}

// ruleTable is evaluated in declaration order; that order breaks ties
// between recommendations of equal priority.
var ruleTable = []rule{
	{
		applies: func(m metrics.DatasetMetrics) bool { return m.TotalReads < minViableReads },
		build: func(m metrics.DatasetMetrics) Recommendation {
			return Recommendation{
				Category: CategoryInsufficientData,
				Priority: PriorityHigh,
				Action:   "Sequence additional material or merge runs",
				Reason: fmt.Sprintf("Dataset contains only %d reads, below the minimum viable count (%d)",
					m.TotalReads, minViableReads),
			}
		},
	},
	{
		applies: func(m metrics.DatasetMetrics) bool { return m.AverageQuality < FairMinQuality },
		build: func(m metrics.DatasetMetrics) Recommendation {
			return Recommendation{
				Category: CategoryQualityFiltering,
				Priority: PriorityHigh,
				Action:   "Apply quality filtering",
				Reason: fmt.Sprintf("Average quality score (%.1f) is below recommended threshold (>%.0f)",
					m.AverageQuality, FairMinQuality),
				Parameters: map[string]any{
					"min_quality": minQualityParam,
					"min_length":  int(m.AverageReadLength * 0.8),
				},
			}
		},
	},
	{
		applies: func(m metrics.DatasetMetrics) bool { return m.LengthSpread() > maxLengthSpread },
		build: func(m metrics.DatasetMetrics) Recommendation {
			return Recommendation{
				Category: CategoryLengthFiltering,
				Priority: PriorityMedium,
				Action:   "Apply length filtering",
				Reason: fmt.Sprintf("Read lengths vary significantly (%d-%d bp)",
					m.MinReadLength, m.MaxReadLength),
				Parameters: map[string]any{
					"min_length": m.MinReadLength + 10,
					"max_length": m.MaxReadLength - 10,
				},
			}
		},
	},
	{
		applies: func(m metrics.DatasetMetrics) bool { return AssessGC(m.GCContent) == GCUnusual },
		build: func(m metrics.DatasetMetrics) Recommendation {
			priority := PriorityMedium
			if m.GCContent < gcSevereLow || m.GCContent > gcSevereHigh {
				priority = PriorityHigh
			}
			return Recommendation{
				Category: CategoryContaminationCheck,
				Priority: priority,
				Action:   "Screen for contamination",
				Reason: fmt.Sprintf("GC content (%.1f%%) is outside acceptable range (%.0f-%.0f%%). Ideal range is %.0f-%.0f%%",
					m.GCContent, GCAcceptableMin, GCAcceptableMax, GCIdealMin, GCIdealMax),
				Parameters: map[string]any{
					"ideal_gc_range":      []float64{GCIdealMin, GCIdealMax},
					"acceptable_gc_range": []float64{GCAcceptableMin, GCAcceptableMax},
				},
			}
		},
	},
	{
		applies: func(m metrics.DatasetMetrics) bool { return m.AverageReadLength > adapterMinAvgLength },
		build: func(m metrics.DatasetMetrics) Recommendation {
			return Recommendation{
				Category: CategoryAdapterTrimming,
				Priority: PriorityMedium,
				Action:   "Trim adapter sequences",
				Reason:   "Standard preprocessing step for Illumina sequencing data",
				Parameters: map[string]any{
					"tool":         "trimmomatic",
					"adapter_file": "TruSeq3-PE.fa",
				},
			}
		},
	},
}

// Recommend evaluates the rule table against a metrics snapshot. The result
// is sorted by priority descending; equal priorities keep declaration
// order. Deterministic, and never fails: no triggered rules means an empty
// list.
func Recommend(m metrics.DatasetMetrics) []Recommendation {
	var recs []Recommendation
	for _, r := range ruleTable {
		if r.applies(m) {
			recs = append(recs, r.build(m))
		}
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority > recs[j].Priority
	})
	return recs
}

// HighPriority filters a recommendation list down to the high-priority
// entries.
func HighPriority(recs []Recommendation) []Recommendation {
	var out []Recommendation
	for _, rec := range recs {
		if rec.Priority == PriorityHigh {
			out = append(out, rec)
		}
	}
	return out
}
