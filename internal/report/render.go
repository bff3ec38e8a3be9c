package report

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"
	texttemplate "text/template"
)

// Format selects a report output format.
type Format string

// Supported report formats.
const (
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Extension returns the file extension for the format.
func (f Format) Extension() string {
	if f == FormatMarkdown {
		return "md"
	}
	return string(f)
}

// ParseFormats parses a user-supplied format flag: a single format, a
// comma-separated list, or "all".
func ParseFormats(s string) ([]Format, error) {
	if strings.EqualFold(strings.TrimSpace(s), "all") {
		return []Format{FormatHTML, FormatJSON, FormatMarkdown}, nil
	}

	var formats []Format
	for _, part := range strings.Split(s, ",") {
		switch f := Format(strings.ToLower(strings.TrimSpace(part))); f {
		case FormatHTML, FormatJSON, FormatMarkdown:
			formats = append(formats, f)
		default:
			return nil, fmt.Errorf("invalid format %q: use html, json, markdown, or all", part)
		}
	}
	return formats, nil
}

// Render writes the report to w in the given format.
func Render(w io.Writer, rep *AnalysisReport, format Format) error {
	switch format {
	case FormatHTML:
		return renderHTML(w, rep)
	case FormatJSON:
		return renderJSON(w, rep)
	case FormatMarkdown:
		return renderMarkdown(w, rep)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func renderJSON(w io.Writer, rep *AnalysisReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"comma": comma,
}).Parse(`<!DOCTYPE html>
<html>
<head>
<title>FASTQ Analysis Report</title>
<meta charset="UTF-8">
<style>
  body { font-family: Arial, sans-serif; margin: 40px; line-height: 1.6; background-color: #f9f9f9; }
  .header { border-bottom: 2px solid #3498db; padding-bottom: 20px; margin-bottom: 30px; }
  .section { background: white; margin-bottom: 30px; padding: 20px; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
  .metrics-table { width: 100%; border-collapse: collapse; }
  .metrics-table td, .metrics-table th { padding: 10px; border-bottom: 1px solid #ddd; text-align: left; }
  .metrics-table th { background: #f8f9fa; }
  .quality-excellent { color: green; font-weight: bold; }
  .quality-good { color: darkgreen; font-weight: bold; }
  .quality-fair { color: orange; font-weight: bold; }
  .quality-poor { color: red; font-weight: bold; }
  .quality-failed { color: darkred; font-weight: bold; }
  .recommendation { background: #f8f9fa; margin-bottom: 15px; padding: 15px; border-radius: 8px; border-left: 4px solid #28a745; list-style: none; }
  .recommendation.high-priority { border-left-color: #dc3545; }
  .recommendation.medium-priority { border-left-color: #ffc107; }
</style>
</head>
<body>
<div class="header">
  <h1>FASTQ Analysis Report</h1>
  <p>Quality Assessment: <span class="quality-{{.Tier}}">{{.Tier}}</span></p>
  <p>Generated: {{.GeneratedAt.Format "2006-01-02 15:04:05"}}</p>
</div>

<div class="section">
  <h2>Summary</h2>
  <p>{{.Narrative.Summary}}</p>
  {{if .Narrative.Insights}}<ul>{{range .Narrative.Insights}}<li>{{.}}</li>{{end}}</ul>{{end}}
  {{if .Narrative.Suitability}}<p><em>{{.Narrative.Suitability}}</em></p>{{end}}
</div>

<div class="section">
  <h2>Dataset Overview</h2>
  <table class="metrics-table">
    <tr><th>Metric</th><th>Value</th></tr>
    <tr><td>File</td><td>{{.FileName}}</td></tr>
    <tr><td>Total Reads</td><td>{{comma .Metrics.TotalReads}}</td></tr>
    <tr><td>Total Bases</td><td>{{comma .Metrics.TotalBases}}</td></tr>
    <tr><td>Average Quality</td><td>{{printf "%.2f" .Metrics.AverageQuality}}</td></tr>
    <tr><td>GC Content</td><td>{{printf "%.1f%%" .Metrics.GCContent}}</td></tr>
    <tr><td>Average Length</td><td>{{printf "%.1f bp" .Metrics.AverageReadLength}}</td></tr>
    <tr><td>Read Length Range</td><td>{{.Metrics.MinReadLength}}-{{.Metrics.MaxReadLength}} bp</td></tr>
    <tr><td>File Size</td><td>{{printf "%.1f MB" .FileSizeMB}}</td></tr>
  </table>
</div>

<div class="section">
  <h2>Quality Distribution</h2>
  <table class="metrics-table">
    <tr><th>Phred Range</th><th>Bases</th></tr>
    {{range $i, $label := .ChartData.QualityDistribution.Labels}}<tr><td>{{$label}}</td><td>{{comma (index $.ChartData.QualityDistribution.Values $i)}}</td></tr>
    {{end}}
  </table>
</div>

{{if .Recommendations}}
<div class="section">
  <h2>Recommendations</h2>
  <ul>
    {{range .Recommendations}}<li class="recommendation {{.Priority}}-priority">
      <strong>{{.Action}}</strong> ({{.Priority}} priority)
      <br><em>{{.Reason}}</em>
    </li>
    {{end}}
  </ul>
</div>
{{end}}

<div style="text-align: center; margin-top: 50px; color: #666;">
  <p>Generated by FASTQ Agent System</p>
  <p>Report ID: {{.ReportID}}</p>
</div>
</body>
</html>
`))

func renderHTML(w io.Writer, rep *AnalysisReport) error {
	return htmlTemplate.Execute(w, rep)
}

var markdownTemplate = texttemplate.Must(texttemplate.New("report").Funcs(texttemplate.FuncMap{
	"comma": comma,
}).Parse(`# FASTQ Analysis Report

**Generated:** {{.GeneratedAt.Format "2006-01-02 15:04:05"}}
**File:** {{.FileName}}
**Quality Assessment:** {{.Tier}}

## Summary

{{.Narrative.Summary}}
{{range .Narrative.Insights}}
- {{.}}{{end}}

## Dataset Overview

| Metric | Value |
|--------|-------|
| Total Reads | {{comma .Metrics.TotalReads}} |
| Total Bases | {{comma .Metrics.TotalBases}} |
| Average Quality | {{printf "%.2f" .Metrics.AverageQuality}} |
| GC Content | {{printf "%.1f" .Metrics.GCContent}}% |
| Average Length | {{printf "%.1f" .Metrics.AverageReadLength}} bp |
| Read Length Range | {{.Metrics.MinReadLength}}-{{.Metrics.MaxReadLength}} bp |
{{if .Recommendations}}
## Recommendations
{{range .Recommendations}}
### {{.Category}} ({{.Priority}} priority)

**Action:** {{.Action}}

**Reason:** {{.Reason}}
{{end}}{{end}}
Report ID: {{.ReportID}}
`))

func renderMarkdown(w io.Writer, rep *AnalysisReport) error {
	return markdownTemplate.Execute(w, rep)
}
