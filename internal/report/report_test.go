package report

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lfaller/fastq-agent-system/internal/assess"
	"github.com/lfaller/fastq-agent-system/internal/fastq"
	"github.com/lfaller/fastq-agent-system/internal/narrative"
)

const minimalFASTQ = `@r1
ACGT
+
IIII
@r2
GGGG
+
IIII
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.fastq")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

type stubGenerator struct {
	narrative narrative.Narrative
	err       error
	calls     int
}

func (s *stubGenerator) Generate(context.Context, narrative.Input) (narrative.Narrative, error) {
	s.calls++
	return s.narrative, s.err
}

func TestAssembleMinimalFile(t *testing.T) {
	path := writeFixture(t, minimalFASTQ)

	var a Assembler
	rep, err := a.Assemble(context.Background(), path)
	require.NoError(t, err)

	assert.NotEmpty(t, rep.ReportID)
	assert.Equal(t, path, rep.FilePath)
	assert.Equal(t, "sample.fastq", rep.FileName())

	assert.Equal(t, 2, rep.Metrics.TotalReads)
	assert.Equal(t, 8, rep.Metrics.TotalBases)
	assert.InDelta(t, 40.0, rep.Metrics.AverageQuality, 1e-9)
	assert.InDelta(t, 75.0, rep.Metrics.GCContent, 1e-9)
	assert.InDelta(t, 4.0, rep.Metrics.AverageReadLength, 1e-9)
	assert.Equal(t, assess.TierExcellent, rep.Tier)

	// Two reads at 75% GC: the insufficient-data and contamination rules fire.
	categories := make([]string, len(rep.Recommendations))
	for i, rec := range rep.Recommendations {
		categories[i] = rec.Category
	}
	assert.Equal(t, []string{assess.CategoryInsufficientData, assess.CategoryContaminationCheck}, categories)

	assert.Equal(t, "template", rep.NarrativeSource)
	assert.NotEmpty(t, rep.Narrative.Summary)
	assert.NotEmpty(t, rep.Sections)
	assert.Equal(t, "Executive Summary", rep.Sections[0].Title)
}

func TestAssembleEmptyFile(t *testing.T) {
	path := writeFixture(t, "")

	var a Assembler
	_, err := a.Assemble(context.Background(), path)
	assert.ErrorIs(t, err, fastq.ErrEmptyFile)
}

func TestAssembleMalformedFile(t *testing.T) {
	path := writeFixture(t, "@r1\nACGTACGT\n+\nIII\n")

	var a Assembler
	_, err := a.Assemble(context.Background(), path)

	var malformed *fastq.MalformedError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 0, malformed.Index)
}

func TestAssembleDeterministicCore(t *testing.T) {
	path := writeFixture(t, minimalFASTQ)

	var a Assembler
	first, err := a.Assemble(context.Background(), path)
	require.NoError(t, err)
	second, err := a.Assemble(context.Background(), path)
	require.NoError(t, err)

	// Everything except report identity must be bit-identical.
	assert.Equal(t, first.Metrics, second.Metrics)
	assert.Equal(t, first.Tier, second.Tier)
	assert.Equal(t, first.Flags, second.Flags)
	assert.Equal(t, first.Recommendations, second.Recommendations)
	assert.Equal(t, first.ChartData, second.ChartData)
	assert.NotEqual(t, first.ReportID, second.ReportID)
}

// bigFASTQ builds a dataset large enough to qualify for the external
// narrative generator.
func bigFASTQ() string {
	var b strings.Builder
	for i := 0; i < 60; i++ {
		b.WriteString("@r\n")
		b.WriteString(strings.Repeat("ACGT", 10) + "\n")
		b.WriteString("+\n")
		b.WriteString(strings.Repeat("I", 40) + "\n")
	}
	return b.String()
}

func TestAssembleUsesGenerator(t *testing.T) {
	path := writeFixture(t, bigFASTQ())

	stub := &stubGenerator{narrative: narrative.Narrative{Summary: "external summary"}}
	a := Assembler{Generator: stub}

	rep, err := a.Assemble(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "generator", rep.NarrativeSource)
	assert.Equal(t, "external summary", rep.Narrative.Summary)
}

func TestAssembleGeneratorFailureDegrades(t *testing.T) {
	path := writeFixture(t, bigFASTQ())

	stub := &stubGenerator{err: errors.New("api unavailable")}
	a := Assembler{Generator: stub}

	rep, err := a.Assemble(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "template", rep.NarrativeSource)
	assert.NotEmpty(t, rep.Narrative.Summary)
}

func TestAssembleFastModeSkipsGenerator(t *testing.T) {
	path := writeFixture(t, bigFASTQ())

	stub := &stubGenerator{narrative: narrative.Narrative{Summary: "external"}}
	a := Assembler{Generator: stub, FastMode: true}

	rep, err := a.Assemble(context.Background(), path)
	require.NoError(t, err)
	assert.Zero(t, stub.calls)
	assert.Equal(t, "template", rep.NarrativeSource)
}

func TestAssembleSmallDatasetSkipsGenerator(t *testing.T) {
	path := writeFixture(t, minimalFASTQ)

	stub := &stubGenerator{}
	a := Assembler{Generator: stub}

	_, err := a.Assemble(context.Background(), path)
	require.NoError(t, err)
	assert.Zero(t, stub.calls)
}

func TestSectionsIncludeRecommendations(t *testing.T) {
	path := writeFixture(t, minimalFASTQ)

	var a Assembler
	rep, err := a.Assemble(context.Background(), path)
	require.NoError(t, err)

	titles := make([]string, len(rep.Sections))
	for i, s := range rep.Sections {
		titles[i] = s.Title
	}
	assert.Equal(t, []string{
		"Executive Summary",
		"Dataset Overview",
		"Quality Analysis",
		"Processing Recommendations",
	}, titles)
}

func TestRenderHTML(t *testing.T) {
	path := writeFixture(t, minimalFASTQ)

	var a Assembler
	rep, err := a.Assemble(context.Background(), path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, rep, FormatHTML))

	html := buf.String()
	assert.Contains(t, html, "<title>FASTQ Analysis Report</title>")
	assert.Contains(t, html, "quality-excellent")
	assert.Contains(t, html, rep.ReportID)
	assert.Contains(t, html, "Screen for contamination")
}

func TestRenderJSONRoundTrip(t *testing.T) {
	path := writeFixture(t, minimalFASTQ)

	var a Assembler
	rep, err := a.Assemble(context.Background(), path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, rep, FormatJSON))

	out := buf.String()
	assert.Contains(t, out, `"quality_assessment": "excellent"`)
	assert.Contains(t, out, `"total_reads": 2`)
	assert.Contains(t, out, `"priority": "high"`)
}

func TestRenderMarkdown(t *testing.T) {
	path := writeFixture(t, minimalFASTQ)

	var a Assembler
	rep, err := a.Assemble(context.Background(), path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, rep, FormatMarkdown))

	md := buf.String()
	assert.Contains(t, md, "# FASTQ Analysis Report")
	assert.Contains(t, md, "**Quality Assessment:** excellent")
	assert.Contains(t, md, "| Total Reads | 2 |")
}

func TestParseFormats(t *testing.T) {
	formats, err := ParseFormats("html")
	require.NoError(t, err)
	assert.Equal(t, []Format{FormatHTML}, formats)

	formats, err = ParseFormats("json, markdown")
	require.NoError(t, err)
	assert.Equal(t, []Format{FormatJSON, FormatMarkdown}, formats)

	formats, err = ParseFormats("all")
	require.NoError(t, err)
	assert.Len(t, formats, 3)

	_, err = ParseFormats("pdf")
	assert.Error(t, err)
}

func TestSaveAndSaveAll(t *testing.T) {
	path := writeFixture(t, minimalFASTQ)

	var a Assembler
	rep, err := a.Assemble(context.Background(), path)
	require.NoError(t, err)

	dir := t.TempDir()
	written, err := Save(rep, dir, FormatJSON)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(written, ".json"))
	_, err = os.Stat(written)
	assert.NoError(t, err)

	paths, err := SaveAll(rep, dir, []Format{FormatHTML, FormatJSON, FormatMarkdown})
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.True(t, strings.HasSuffix(paths[0], ".html"))
	assert.True(t, strings.HasSuffix(paths[2], ".md"))
	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestComma(t *testing.T) {
	assert.Equal(t, "0", comma(0))
	assert.Equal(t, "999", comma(999))
	assert.Equal(t, "1,000", comma(1000))
	assert.Equal(t, "1,234,567", comma(1234567))
	assert.Equal(t, "-12,345", comma(-12345))
}
