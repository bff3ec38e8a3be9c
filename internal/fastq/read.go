package fastq

import "fmt"

// Read represents a single sequenced fragment: one FASTQ record with its
// identifier, uppercase sequence, and decoded Phred quality scores.
type Read struct {
	Identifier string
	Sequence   string
	Qualities  []int
}

// NewRead constructs a Read, enforcing that sequence and quality lengths
// match. All reads in this package flow through here so the invariant holds
// everywhere downstream.
func NewRead(identifier, sequence string, qualities []int) (Read, error) {
	if len(sequence) != len(qualities) {
		return Read{}, fmt.Errorf("fastq: sequence length %d does not match quality length %d",
			len(sequence), len(qualities))
	}
	return Read{Identifier: identifier, Sequence: sequence, Qualities: qualities}, nil
}

// Length returns the number of bases in the read.
func (r Read) Length() int { return len(r.Sequence) }

// MeanQuality returns the average Phred score for this read, 0 for an
// empty read.
func (r Read) MeanQuality() float64 {
	if len(r.Qualities) == 0 {
		return 0
	}
	sum := 0
	for _, q := range r.Qualities {
		sum += q
	}
	return float64(sum) / float64(len(r.Qualities))
}

// GCContent returns the percentage of G/C bases in the read, 0 for an
// empty read. Ambiguity codes count toward the denominator only.
func (r Read) GCContent() float64 {
	if len(r.Sequence) == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(r.Sequence); i++ {
		if c := r.Sequence[i]; c == 'G' || c == 'C' {
			gc++
		}
	}
	return float64(gc) / float64(len(r.Sequence)) * 100
}
