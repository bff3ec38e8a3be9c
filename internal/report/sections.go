package report

import (
	"fmt"
	"strings"

	"github.com/lfaller/fastq-agent-system/internal/assess"
)

// Section is one titled block of report prose. Renderers decide how to
// present it; the content here is plain text.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func buildSections(rep *AnalysisReport) []Section {
	sections := []Section{
		{
			Title: "Executive Summary",
			Content: fmt.Sprintf("Quality assessment: %s. %s %d processing steps suggested, %d high priority.",
				rep.Tier, rep.Narrative.Summary,
				len(rep.Recommendations), len(assess.HighPriority(rep.Recommendations))),
		},
		{
			Title: "Dataset Overview",
			Content: fmt.Sprintf("File %s (%.1f MB): %s reads, %s bases, average quality %.2f, GC content %.1f%%.",
				rep.FileName(), rep.FileSizeMB,
				comma(rep.Metrics.TotalReads), comma(rep.Metrics.TotalBases),
				rep.Metrics.AverageQuality, rep.Metrics.GCContent),
		},
		{
			Title:   "Quality Analysis",
			Content: qualityAnalysis(rep),
		},
	}

	if len(rep.Recommendations) > 0 {
		var b strings.Builder
		for i, rec := range rep.Recommendations {
			if i > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%s (%s priority): %s.", rec.Action, rec.Priority, rec.Reason)
		}
		sections = append(sections, Section{Title: "Processing Recommendations", Content: b.String()})
	}

	return sections
}

func qualityAnalysis(rep *AnalysisReport) string {
	var issues []string
	if rep.Flags.LowQualityReads {
		issues = append(issues, "low quality reads detected")
	}
	if rep.Flags.UnevenReadLengths {
		issues = append(issues, "uneven read length distribution")
	}
	if rep.Flags.PoorGCContent {
		issues = append(issues, "GC content outside normal range")
	}

	issueText := "No significant quality issues detected."
	if len(issues) > 0 {
		issueText = "Issues: " + strings.Join(issues, "; ") + "."
	}

	return fmt.Sprintf("%s Average quality score %.2f, read lengths %d-%d bp, GC content %.1f%%.",
		issueText, rep.Metrics.AverageQuality,
		rep.Metrics.MinReadLength, rep.Metrics.MaxReadLength, rep.Metrics.GCContent)
}
