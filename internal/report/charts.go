package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lfaller/fastq-agent-system/internal/metrics"
)

// Chart is renderer-agnostic chart data: the report carries numbers, not
// images.
type Chart struct {
	Type   string   `json:"type"`
	Title  string   `json:"title"`
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

// ChartData groups the charts included in every report.
type ChartData struct {
	QualityDistribution Chart             `json:"quality_distribution"`
	LengthDistribution  Chart             `json:"length_distribution"`
	SummaryMetrics      map[string]string `json:"summary_metrics"`
}

func buildChartData(m metrics.DatasetMetrics) ChartData {
	return ChartData{
		QualityDistribution: distributionChart("bar", "Quality Score Distribution", m.QualityDistribution),
		LengthDistribution:  distributionChart("histogram", "Read Length Distribution", m.LengthDistribution),
		SummaryMetrics: map[string]string{
			"Total Reads": comma(m.TotalReads),
			"Total Bases": comma(m.TotalBases),
			"Avg Quality": fmt.Sprintf("%.2f", m.AverageQuality),
			"GC Content":  fmt.Sprintf("%.1f%%", m.GCContent),
			"Avg Length":  fmt.Sprintf("%.1f bp", m.AverageReadLength),
		},
	}
}

// distributionChart flattens a binned distribution into label/value pairs
// ordered by bin lower bound, so chart data is reproducible.
func distributionChart(typ, title string, bins map[string]int) Chart {
	labels := make([]string, 0, len(bins))
	for label := range bins {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return binLow(labels[i]) < binLow(labels[j]) })

	values := make([]int, len(labels))
	for i, label := range labels {
		values[i] = bins[label]
	}
	return Chart{Type: typ, Title: title, Labels: labels, Values: values}
}

func binLow(label string) int {
	lo, _, _ := strings.Cut(label, "-")
	n, _ := strconv.Atoi(lo)
	return n
}

// comma formats an integer with thousands separators.
func comma(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
