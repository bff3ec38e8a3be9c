package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lfaller/fastq-agent-system/internal/assess"
	"github.com/lfaller/fastq-agent-system/internal/config"
	"github.com/lfaller/fastq-agent-system/internal/narrative"
	"github.com/lfaller/fastq-agent-system/internal/report"
)

var reportOpts struct {
	outputDir   string
	format      string
	fast        bool
	openBrowser bool
}

var reportCmd = &cobra.Command{
	Use:   "report <file.fastq>",
	Short: "Analyze a FASTQ file and write a quality report",
	Long: `Analyze a FASTQ file and write a quality report.

The input may be plain or gzip-compressed. Reports can be written as
HTML, JSON, or Markdown.

Example:
  fastq-agents report sample.fastq.gz --format html --open`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formats, err := report.ParseFormats(reportOpts.format)
		if err != nil {
			return err
		}

		asm := report.Assembler{FastMode: reportOpts.fast}
		cfg := config.Load()
		if cfg.APIKey != "" {
			asm.Generator = &narrative.Anthropic{
				APIKey:      cfg.APIKey,
				Model:       cfg.Model,
				MaxTokens:   cfg.MaxTokens,
				Temperature: cfg.Temperature,
			}
		} else if !reportOpts.fast {
			fmt.Fprintln(os.Stderr, "note: ANTHROPIC_API_KEY not set, using template narrative")
		}

		fmt.Fprintf(os.Stderr, "Analyzing %s...\n", args[0])
		rep, err := asm.Assemble(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		paths, err := report.SaveAll(rep, reportOpts.outputDir, formats)
		if err != nil {
			return err
		}

		printSummary(rep)
		for _, p := range paths {
			fmt.Printf("Report written to %s\n", p)
		}

		if reportOpts.openBrowser {
			if p := htmlPath(paths); p != "" {
				if err := openInBrowser(p); err != nil {
					fmt.Fprintf(os.Stderr, "could not open browser: %v\n", err)
				}
			}
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportOpts.outputDir, "output-dir", "o", "reports", "directory for report files")
	reportCmd.Flags().StringVarP(&reportOpts.format, "format", "f", "html", "report format: html, json, markdown, or all")
	reportCmd.Flags().BoolVar(&reportOpts.fast, "fast", false, "skip the AI narrative")
	reportCmd.Flags().BoolVar(&reportOpts.openBrowser, "open", false, "open the HTML report in a browser")
}

func printSummary(rep *report.AnalysisReport) {
	tierColor := color.New(color.FgRed, color.Bold)
	switch rep.Tier.String() {
	case "excellent", "good":
		tierColor = color.New(color.FgGreen, color.Bold)
	case "fair":
		tierColor = color.New(color.FgYellow, color.Bold)
	}

	fmt.Printf("Quality assessment: %s\n", tierColor.Sprint(rep.Tier))
	fmt.Printf("Reads: %d, bases: %d, mean quality: %.2f\n",
		rep.Metrics.TotalReads, rep.Metrics.TotalBases, rep.Metrics.AverageQuality)
	if n := len(rep.Recommendations); n > 0 {
		fmt.Printf("Recommendations: %d (%d high priority)\n", n, len(assess.HighPriority(rep.Recommendations)))
	}
}

func htmlPath(paths []string) string {
	for _, p := range paths {
		if len(p) > 5 && p[len(p)-5:] == ".html" {
			return p
		}
	}
	return ""
}

func openInBrowser(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path).Start()
	default:
		return exec.Command("xdg-open", path).Start()
	}
}
