package metrics

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/lfaller/fastq-agent-system/internal/fastq"
)

// Bin widths for the score and length distributions.
const (
	qualityBinWidth = 5
	lengthBinWidth  = 50
)

// Aggregator consumes a read stream exactly once and produces a
// DatasetMetrics snapshot. It keeps running sums and bounded histograms
// only; the stream itself is never materialized here.
//
// The zero value is ready to use. Aggregator is not safe for concurrent
// use; concurrent pipelines each get their own.
type Aggregator struct {
	totalReads int
	totalBases int
	qualitySum int64
	gcCount    int64
	lengthSum  int64
	minLength  int
	maxLength  int

	qualityHist map[int]int // exact Phred score -> base count
	lengthHist  map[int]int // exact read length -> read count
}

// Add folds one read into the running accumulators.
func (a *Aggregator) Add(read fastq.Read) {
	if a.qualityHist == nil {
		a.qualityHist = make(map[int]int)
		a.lengthHist = make(map[int]int)
	}

	length := read.Length()
	if a.totalReads == 0 || length < a.minLength {
		a.minLength = length
	}
	if length > a.maxLength {
		a.maxLength = length
	}
	a.totalReads++
	a.totalBases += length
	a.lengthSum += int64(length)
	a.lengthHist[length]++

	for _, q := range read.Qualities {
		a.qualitySum += int64(q)
		a.qualityHist[q]++
	}
	for i := 0; i < len(read.Sequence); i++ {
		// Ambiguity codes count toward total_bases but never the GC numerator.
		if c := read.Sequence[i]; c == 'G' || c == 'C' {
			a.gcCount++
		}
	}
}

// Snapshot returns the metrics for everything added so far. Averages over
// empty sets are defined as 0, never a divide-by-zero failure.
func (a *Aggregator) Snapshot() DatasetMetrics {
	m := DatasetMetrics{
		TotalReads:          a.totalReads,
		TotalBases:          a.totalBases,
		MinReadLength:       a.minLength,
		MaxReadLength:       a.maxLength,
		QualityDistribution: binned(a.qualityHist, qualityBinWidth),
		LengthDistribution:  binned(a.lengthHist, lengthBinWidth),
	}

	if a.totalReads > 0 {
		m.AverageReadLength = float64(a.lengthSum) / float64(a.totalReads)
	}
	if a.totalBases > 0 {
		m.AverageQuality = float64(a.qualitySum) / float64(a.totalBases)
		m.GCContent = float64(a.gcCount) / float64(a.totalBases) * 100
	}

	m.LengthStdDev = weightedStdDev(a.lengthHist)
	m.QualityStdDev = weightedStdDev(a.qualityHist)

	return m
}

// Aggregate streams a parser into a fresh Aggregator and returns the
// snapshot, without materializing the reads. An input with zero complete
// records yields fastq.ErrEmptyFile.
func Aggregate(p *fastq.Parser) (DatasetMetrics, error) {
	var agg Aggregator
	for {
		read, err := p.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return DatasetMetrics{}, err
		}
		agg.Add(read)
	}
	if agg.totalReads == 0 {
		return DatasetMetrics{}, fastq.ErrEmptyFile
	}
	return agg.Snapshot(), nil
}

// weightedStdDev computes the sample standard deviation of the values in a
// frequency histogram. Keys are visited in sorted order so the result is
// reproducible bit-for-bit.
func weightedStdDev(hist map[int]int) float64 {
	total := 0
	for _, count := range hist {
		total += count
	}
	if total < 2 {
		return 0
	}

	keys := make([]int, 0, len(hist))
	for k := range hist {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	values := make([]float64, len(keys))
	weights := make([]float64, len(keys))
	for i, k := range keys {
		values[i] = float64(k)
		weights[i] = float64(hist[k])
	}
	return stat.StdDev(values, weights)
}

// binned collapses an exact histogram into fixed-width display bins keyed
// like "35-39".
func binned(hist map[int]int, width int) map[string]int {
	bins := make(map[string]int, len(hist))
	for value, count := range hist {
		lo := (value / width) * width
		key := fmt.Sprintf("%d-%d", lo, lo+width-1)
		bins[key] += count
	}
	return bins
}
