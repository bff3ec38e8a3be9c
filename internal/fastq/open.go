package fastq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Open opens a FASTQ file for reading, transparently decompressing gzip
// input. Compression is detected from the gzip magic bytes as well as the
// .gz suffix, so misnamed files still work. The returned closer releases
// the underlying file handle and must be called on every exit path.
func Open(path string) (io.Reader, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open input: %w", err)
	}

	br := bufio.NewReaderSize(f, 1<<20)
	gzipped, err := hasGzipMagic(br)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("cannot inspect input: %w", err)
	}

	if strings.HasSuffix(strings.ToLower(path), ".gz") || gzipped {
		gz, err := gzip.NewReader(br)
		if err != nil {
			f.Close()
			return nil, nil, fmt.Errorf("cannot open gzip input: %w", err)
		}
		return gz, func() error {
			gz.Close()
			return f.Close()
		}, nil
	}

	return br, f.Close, nil
}

func hasGzipMagic(br *bufio.Reader) (bool, error) {
	header, err := br.Peek(2)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	return len(header) == 2 && header[0] == 0x1f && header[1] == 0x8b, nil
}
