// Package narrative produces the free-form interpretation attached to an
// analysis report. The deterministic core never depends on it: any
// generator failure degrades to the template generator, which always
// succeeds.
package narrative

import (
	"context"
	"fmt"

	"github.com/lfaller/fastq-agent-system/internal/assess"
	"github.com/lfaller/fastq-agent-system/internal/metrics"
)

// Narrative is the optional interpretive text slot of a report.
type Narrative struct {
	Summary     string   `json:"summary"`
	Insights    []string `json:"insights"`
	Suitability string   `json:"suitability"`
}

// Input is the read-only view of core results handed to a generator.
type Input struct {
	FileName        string
	Metrics         metrics.DatasetMetrics
	Tier            assess.Tier
	Recommendations []assess.Recommendation
}

// Generator produces a narrative for an analysis. Implementations may call
// out to external services; callers must treat failure as non-fatal.
type Generator interface {
	Generate(ctx context.Context, in Input) (Narrative, error)
}

// Template is a deterministic generator built from fixed wording. It backs
// fast mode, small datasets, and every fallback path.
type Template struct{}

var tierDescriptions = map[assess.Tier]string{
	assess.TierExcellent: "exceptional quality with minimal issues",
	assess.TierGood:      "good quality suitable for most analyses",
	assess.TierFair:      "acceptable quality with some concerns",
	assess.TierPoor:      "poor quality requiring preprocessing",
	assess.TierFailed:    "failed quality checks, significant issues detected",
}

// Generate never fails.
func (Template) Generate(_ context.Context, in Input) (Narrative, error) {
	m := in.Metrics

	summary := fmt.Sprintf(
		"This FASTQ dataset contains %d reads with %s. Average quality score is %.1f and GC content is %.1f%%.",
		m.TotalReads, tierDescriptions[in.Tier], m.AverageQuality, m.GCContent)

	var insights []string

	switch {
	case m.AverageQuality >= assess.ExcellentMinQuality:
		insights = append(insights, "Excellent base call quality indicates reliable sequencing data")
	case m.AverageQuality >= assess.FairMinQuality:
		insights = append(insights, "Good quality scores suitable for downstream analysis")
	default:
		insights = append(insights, "Low quality scores may require filtering or trimming")
	}

	switch assess.AssessGC(m.GCContent) {
	case assess.GCIdeal:
		insights = append(insights, "GC content within ideal range suggests no major bias")
	case assess.GCAcceptable:
		insights = append(insights,
			fmt.Sprintf("GC content (%.1f%%) is acceptable but slightly outside ideal range", m.GCContent))
	default:
		insights = append(insights,
			fmt.Sprintf("GC content (%.1f%%) outside typical range may indicate bias or contamination", m.GCContent))
	}

	switch spread := m.LengthSpread(); {
	case spread <= 5:
		insights = append(insights, "Consistent read lengths indicate uniform library preparation")
	case spread <= 20:
		insights = append(insights, "Moderate read length variation is within acceptable range")
	default:
		insights = append(insights, "High read length variation may require length filtering")
	}

	if len(in.Recommendations) > 0 {
		if high := len(assess.HighPriority(in.Recommendations)); high > 0 {
			insights = append(insights, fmt.Sprintf("%d high-priority preprocessing steps recommended", high))
		} else {
			insights = append(insights, "Standard preprocessing steps recommended for optimal results")
		}
	}

	return Narrative{
		Summary:  summary,
		Insights: insights,
		Suitability: fmt.Sprintf(
			"Dataset quality rated as %s - suitable for analysis with appropriate preprocessing", in.Tier),
	}, nil
}
