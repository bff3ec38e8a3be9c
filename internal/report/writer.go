package report

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Save renders the report into dir under a timestamped name and returns
// the written path.
func Save(rep *AnalysisReport, dir string, format Format) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	name := fmt.Sprintf("fastq_analysis_%s.%s",
		rep.GeneratedAt.Format("20060102_150405"), format.Extension())
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating report file: %w", err)
	}

	if err := Render(f, rep, format); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("rendering %s report: %w", format, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// SaveAll writes the report in every requested format, concurrently.
// Returns the written paths in the same order as formats.
func SaveAll(rep *AnalysisReport, dir string, formats []Format) ([]string, error) {
	paths := make([]string, len(formats))

	var g errgroup.Group
	for i, format := range formats {
		i, format := i, format
		g.Go(func() error {
			path, err := Save(rep, dir, format)
			paths[i] = path
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
