// Package metrics derives summary statistics from a stream of FASTQ reads.
package metrics

// DatasetMetrics is a one-shot summary of an analyzed FASTQ dataset.
// Every field is a deterministic pure function of the read sequence:
// re-running on the same input yields bit-identical output.
type DatasetMetrics struct {
	TotalReads        int     `json:"total_reads"`
	TotalBases        int     `json:"total_bases"`
	AverageReadLength float64 `json:"average_read_length"`
	MinReadLength     int     `json:"min_read_length"`
	MaxReadLength     int     `json:"max_read_length"`
	LengthStdDev      float64 `json:"length_std_dev"`
	AverageQuality    float64 `json:"average_quality"`
	QualityStdDev     float64 `json:"quality_std_dev"`
	GCContent         float64 `json:"gc_content"`

	// QualityDistribution bins Phred scores in steps of 5 ("35-39" -> count).
	QualityDistribution map[string]int `json:"quality_distribution"`
	// LengthDistribution bins read lengths in steps of 50 ("100-149" -> count).
	LengthDistribution map[string]int `json:"length_distribution"`
}

// LengthSpread returns the difference between the longest and shortest read.
func (m DatasetMetrics) LengthSpread() int {
	return m.MaxReadLength - m.MinReadLength
}
