package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFASTQ(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reads.fastq")
	content := "@r1\nACGT\n+\nIIII\n@r2\nGGGG\n+\nIIII\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestStatsCommand(t *testing.T) {
	path := writeFASTQ(t)

	rootCmd.SetArgs([]string{"stats", path, "--distributions"})
	assert.NoError(t, rootCmd.Execute())
}

func TestStatsCommandMissingFile(t *testing.T) {
	rootCmd.SetArgs([]string{"stats", filepath.Join(t.TempDir(), "absent.fastq")})
	assert.Error(t, rootCmd.Execute())
}

func TestReportCommandFast(t *testing.T) {
	path := writeFASTQ(t)
	outDir := t.TempDir()

	rootCmd.SetArgs([]string{"report", path, "--fast", "--format", "all", "--output-dir", outDir})
	require.NoError(t, rootCmd.Execute())

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	var exts []string
	for _, e := range entries {
		exts = append(exts, filepath.Ext(e.Name()))
	}
	assert.ElementsMatch(t, []string{".html", ".json", ".md"}, exts)
}

func TestReportCommandInvalidFormat(t *testing.T) {
	path := writeFASTQ(t)

	rootCmd.SetArgs([]string{"report", path, "--fast", "--format", "pdf"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "invalid format"))
}

func TestHTMLPath(t *testing.T) {
	assert.Equal(t, "/tmp/a.html", htmlPath([]string{"/tmp/a.json", "/tmp/a.html"}))
	assert.Equal(t, "", htmlPath([]string{"/tmp/a.json", "/tmp/a.md"}))
}

func TestBinLow(t *testing.T) {
	assert.Equal(t, 35, binLow("35-39"))
	assert.Equal(t, 0, binLow("0-4"))
	assert.Equal(t, 150, binLow("150-199"))
}
