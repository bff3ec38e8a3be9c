// Package report assembles core analysis results into a renderable
// AnalysisReport. The assembler owns composition only: metrics, tier, and
// recommendations are computed by the core packages, and the narrative
// slot is optional by contract.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/lfaller/fastq-agent-system/internal/assess"
	"github.com/lfaller/fastq-agent-system/internal/fastq"
	"github.com/lfaller/fastq-agent-system/internal/metrics"
	"github.com/lfaller/fastq-agent-system/internal/narrative"
)

// Datasets below this read count skip the external narrative call; the
// template text covers them just as well.
const minNarrativeReads = 50

// AnalysisReport is the complete result for one analyzed FASTQ file. It is
// valid and complete with the template narrative alone: nothing from the
// external generator gates the deterministic fields.
type AnalysisReport struct {
	ReportID    string    `json:"report_id"`
	GeneratedAt time.Time `json:"generated_at"`
	FilePath    string    `json:"file_path"`
	FileSizeMB  float64   `json:"file_size_mb"`

	Metrics         metrics.DatasetMetrics  `json:"metrics"`
	Tier            assess.Tier             `json:"quality_assessment"`
	Flags           assess.QualityFlags     `json:"quality_flags"`
	Recommendations []assess.Recommendation `json:"recommendations"`

	Narrative       narrative.Narrative `json:"narrative"`
	NarrativeSource string              `json:"narrative_source"` // "generator" or "template"

	ChartData ChartData `json:"chart_data"`
	Sections  []Section `json:"sections"`
}

// FileName returns the base name of the analyzed file.
func (r *AnalysisReport) FileName() string { return filepath.Base(r.FilePath) }

// Assembler builds reports. The zero value uses the template narrative
// only.
type Assembler struct {
	// Generator provides the external narrative. Nil, failing, or slow
	// generators all degrade to the deterministic template text.
	Generator narrative.Generator
	// FastMode skips the external generator entirely.
	FastMode bool
}

// Assemble runs the full pipeline on one FASTQ file: parse, aggregate,
// classify, recommend, then compose. Parser errors abort the run; no
// partial report is produced.
func (a *Assembler) Assemble(ctx context.Context, path string) (*AnalysisReport, error) {
	input, closer, err := fastq.Open(path)
	if err != nil {
		return nil, err
	}
	defer closer()

	m, err := metrics.Aggregate(fastq.NewParser(input))
	if err != nil {
		return nil, fmt.Errorf("analyzing %s: %w", path, err)
	}

	var sizeMB float64
	if info, err := os.Stat(path); err == nil {
		sizeMB = float64(info.Size()) / (1024 * 1024)
	}

	rep := &AnalysisReport{
		ReportID:        uuid.NewString(),
		GeneratedAt:     time.Now(),
		FilePath:        path,
		FileSizeMB:      sizeMB,
		Metrics:         m,
		Tier:            assess.Classify(m),
		Flags:           assess.Flags(m),
		Recommendations: assess.Recommend(m),
	}
	rep.ChartData = buildChartData(m)
	rep.Narrative, rep.NarrativeSource = a.generateNarrative(ctx, rep)
	rep.Sections = buildSections(rep)

	return rep, nil
}

// generateNarrative picks the external generator when it applies and falls
// back to the template on any failure. Never returns an error: narrative
// failures must not invalidate the report.
func (a *Assembler) generateNarrative(ctx context.Context, rep *AnalysisReport) (narrative.Narrative, string) {
	in := narrative.Input{
		FileName:        rep.FileName(),
		Metrics:         rep.Metrics,
		Tier:            rep.Tier,
		Recommendations: rep.Recommendations,
	}

	if a.Generator != nil && !a.FastMode && rep.Metrics.TotalReads >= minNarrativeReads {
		if n, err := a.Generator.Generate(ctx, in); err == nil {
			return n, "generator"
		}
	}

	n, _ := narrative.Template{}.Generate(ctx, in)
	return n, "template"
}
