package fastq

import (
	"errors"
	"fmt"
)

// ErrEmptyFile is returned when an input yields zero complete records.
var ErrEmptyFile = errors.New("fastq: no records found")

// TruncatedError reports a final record with fewer than four lines.
type TruncatedError struct {
	Index int // zero-based index of the incomplete record
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("fastq: record %d is truncated (incomplete 4-line block)", e.Index)
}

// MalformedError reports a structurally invalid record.
type MalformedError struct {
	Index  int    // zero-based index of the offending record
	ID     string // record identifier if the header was readable
	Reason string
}

func (e *MalformedError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("fastq: record %d (%s): %s", e.Index, e.ID, e.Reason)
	}
	return fmt.Sprintf("fastq: record %d: %s", e.Index, e.Reason)
}
