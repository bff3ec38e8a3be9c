// Package fastq provides streaming FASTQ record parsing.
package fastq

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
)

// Phred33Offset is the ASCII offset for Phred+33 quality encoding.
const Phred33Offset = 33

// Parser reads FASTQ records from an input stream. It is a single-pass
// reader: restarting requires re-opening the source.
type Parser struct {
	reader *bufio.Reader
	line   []byte // reusable buffer for reading lines
	index  int    // index of the next record
}

// NewParser creates a FASTQ parser reading from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{
		reader: bufio.NewReaderSize(r, 1<<20), // 1MB buffer
		line:   make([]byte, 0, 512),
	}
}

// Next reads and returns the next record as a validated Read.
// Returns io.EOF when no more records are available, *TruncatedError when
// the input ends mid-record, and *MalformedError on structural problems.
func (p *Parser) Next() (Read, error) {
	idx := p.index

	// Line 1: header (starts with @). Blank lines between records are
	// tolerated; real files often end with extra newlines.
	line, err := p.readLine()
	for err == nil && len(line) == 0 {
		line, err = p.readLine()
	}
	if err != nil {
		return Read{}, err // io.EOF: clean end of stream
	}
	if line[0] != '@' {
		return Read{}, &MalformedError{Index: idx, Reason: "header line must start with @"}
	}
	identifier := string(line[1:])

	// Line 2: sequence.
	line, err = p.readLine()
	if err != nil {
		return Read{}, p.truncated(idx, err)
	}
	sequence := strings.ToUpper(string(line))

	// Line 3: separator (we ignore any payload after '+').
	line, err = p.readLine()
	if err != nil {
		return Read{}, p.truncated(idx, err)
	}
	if len(line) == 0 || line[0] != '+' {
		return Read{}, &MalformedError{Index: idx, ID: identifier, Reason: "separator line must start with +"}
	}

	// Line 4: quality string, Phred+33.
	line, err = p.readLine()
	if err != nil {
		return Read{}, p.truncated(idx, err)
	}
	if len(line) != len(sequence) {
		return Read{}, &MalformedError{Index: idx, ID: identifier, Reason: "sequence and quality lengths must match"}
	}
	qualities := make([]int, len(line))
	for i, c := range line {
		if c < Phred33Offset {
			return Read{}, &MalformedError{Index: idx, ID: identifier, Reason: "quality character outside Phred+33 range"}
		}
		qualities[i] = int(c) - Phred33Offset
	}

	read, err := NewRead(identifier, sequence, qualities)
	if err != nil {
		return Read{}, &MalformedError{Index: idx, ID: identifier, Reason: err.Error()}
	}

	p.index++
	return read, nil
}

func (p *Parser) truncated(idx int, err error) error {
	if errors.Is(err, io.EOF) {
		return &TruncatedError{Index: idx}
	}
	return err
}

// ReadAll drains the stream and returns every record. An input with zero
// complete records yields ErrEmptyFile.
func ReadAll(p *Parser) ([]Read, error) {
	var reads []Read
	for {
		read, err := p.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		reads = append(reads, read)
	}
	if len(reads) == 0 {
		return nil, ErrEmptyFile
	}
	return reads, nil
}

// readLine reads a line from the input, stripping the newline.
// Reuses an internal buffer to minimize allocations.
func (p *Parser) readLine() ([]byte, error) {
	p.line = p.line[:0]

	for {
		segment, isPrefix, err := p.reader.ReadLine()
		if err != nil {
			return nil, err
		}

		p.line = append(p.line, segment...)

		if !isPrefix {
			break
		}
	}

	// Trim any trailing CR (for Windows line endings)
	p.line = bytes.TrimSuffix(p.line, []byte{'\r'})

	return p.line, nil
}
