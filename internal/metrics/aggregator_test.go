package metrics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lfaller/fastq-agent-system/internal/fastq"
)

func mustRead(t *testing.T, id, seq string, qual []int) fastq.Read {
	t.Helper()
	read, err := fastq.NewRead(id, seq, qual)
	require.NoError(t, err)
	return read
}

func TestAggregateMinimalFile(t *testing.T) {
	// Two reads at uniform Phred 40 ('I'): 6 of 8 bases are G/C.
	input := `@r1
ACGT
+
IIII
@r2
GGGG
+
IIII
`
	m, err := Aggregate(fastq.NewParser(strings.NewReader(input)))
	require.NoError(t, err)

	assert.Equal(t, 2, m.TotalReads)
	assert.Equal(t, 8, m.TotalBases)
	assert.InDelta(t, 40.0, m.AverageQuality, 1e-9)
	assert.InDelta(t, 75.0, m.GCContent, 1e-9)
	assert.InDelta(t, 4.0, m.AverageReadLength, 1e-9)
	assert.Equal(t, 4, m.MinReadLength)
	assert.Equal(t, 4, m.MaxReadLength)
	assert.Equal(t, map[string]int{"40-44": 8}, m.QualityDistribution)
	assert.Equal(t, map[string]int{"0-49": 2}, m.LengthDistribution)
}

func TestAggregateEmptyInput(t *testing.T) {
	_, err := Aggregate(fastq.NewParser(strings.NewReader("")))
	assert.ErrorIs(t, err, fastq.ErrEmptyFile)
}

func TestAggregatePropagatesParseError(t *testing.T) {
	input := `@r1
ACGTACGT
+
III
`
	_, err := Aggregate(fastq.NewParser(strings.NewReader(input)))
	var malformed *fastq.MalformedError
	assert.ErrorAs(t, err, &malformed)
}

func TestSnapshotZeroReads(t *testing.T) {
	var agg Aggregator
	m := agg.Snapshot()

	assert.Zero(t, m.TotalReads)
	assert.Zero(t, m.TotalBases)
	assert.Zero(t, m.AverageQuality)
	assert.Zero(t, m.AverageReadLength)
	assert.Zero(t, m.GCContent)
	assert.Zero(t, m.MinReadLength)
	assert.Zero(t, m.MaxReadLength)
}

func TestAggregatorExtrema(t *testing.T) {
	var agg Aggregator
	agg.Add(mustRead(t, "r1", "ACGTACGTAC", []int{30, 30, 30, 30, 30, 30, 30, 30, 30, 30}))
	agg.Add(mustRead(t, "r2", "AC", []int{20, 20}))
	agg.Add(mustRead(t, "r3", "ACGTAC", []int{25, 25, 25, 25, 25, 25}))

	m := agg.Snapshot()
	assert.Equal(t, 2, m.MinReadLength)
	assert.Equal(t, 10, m.MaxReadLength)
	assert.Equal(t, 8, m.LengthSpread())
	assert.InDelta(t, 6.0, m.AverageReadLength, 1e-9)
}

func TestAggregatorAmbiguityCodes(t *testing.T) {
	var agg Aggregator
	// N and R count toward total bases but not the GC numerator.
	agg.Add(mustRead(t, "r1", "GCNR", []int{40, 40, 40, 40}))

	m := agg.Snapshot()
	assert.Equal(t, 4, m.TotalBases)
	assert.InDelta(t, 50.0, m.GCContent, 1e-9)
}

func TestAggregatorZeroLengthRead(t *testing.T) {
	var agg Aggregator
	agg.Add(mustRead(t, "r1", "ACGT", []int{40, 40, 40, 40}))
	agg.Add(mustRead(t, "empty", "", nil))

	m := agg.Snapshot()
	assert.Equal(t, 2, m.TotalReads)
	assert.Equal(t, 4, m.TotalBases)
	assert.Equal(t, 0, m.MinReadLength)
	assert.Equal(t, 4, m.MaxReadLength)
}

func TestAggregatorStdDev(t *testing.T) {
	var agg Aggregator
	agg.Add(mustRead(t, "r1", "ACGT", []int{10, 10, 10, 10}))
	agg.Add(mustRead(t, "r2", "ACGTAC", []int{30, 30, 30, 30, 30, 30}))

	m := agg.Snapshot()
	// Sample std dev of {4, 6} is sqrt(2).
	assert.InDelta(t, 1.4142135, m.LengthStdDev, 1e-6)
	assert.Greater(t, m.QualityStdDev, 0.0)

	// A single read has no spread to estimate.
	var single Aggregator
	single.Add(mustRead(t, "r1", "ACGT", []int{40, 40, 40, 40}))
	assert.Zero(t, single.Snapshot().LengthStdDev)
}

func TestAggregateDeterminism(t *testing.T) {
	input := `@r1
ACGGTTNA
+
IIIIJJ!#
@r2
GGCCAATT
+
5555::::
`
	first, err := Aggregate(fastq.NewParser(strings.NewReader(input)))
	require.NoError(t, err)
	second, err := Aggregate(fastq.NewParser(strings.NewReader(input)))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBinnedDistribution(t *testing.T) {
	bins := binned(map[int]int{2: 3, 4: 1, 38: 2, 152: 5}, 5)
	assert.Equal(t, map[string]int{"0-4": 4, "35-39": 2, "150-154": 5}, bins)
}
