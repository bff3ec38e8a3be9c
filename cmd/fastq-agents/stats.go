package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lfaller/fastq-agent-system/internal/assess"
	"github.com/lfaller/fastq-agent-system/internal/fastq"
	"github.com/lfaller/fastq-agent-system/internal/metrics"
)

var statsShowDistributions bool

var statsCmd = &cobra.Command{
	Use:   "stats <file.fastq>",
	Short: "Print dataset metrics without writing a report",
	Long: `Compute and print dataset metrics for a FASTQ file.

Runs the deterministic analysis only; no report files are written and
no API calls are made.

Example:
  fastq-agents stats sample.fastq.gz`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, closer, err := fastq.Open(args[0])
		if err != nil {
			return err
		}
		defer closer()

		m, err := metrics.Aggregate(fastq.NewParser(input))
		if err != nil {
			return fmt.Errorf("analyzing %s: %w", args[0], err)
		}

		printStats(args[0], m)
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsShowDistributions, "distributions", false, "include quality and length histograms")
}

func printStats(path string, m metrics.DatasetMetrics) {
	bold := color.New(color.Bold)

	bold.Printf("Dataset: %s\n\n", path)
	fmt.Printf("  Total reads:     %d\n", m.TotalReads)
	fmt.Printf("  Total bases:     %d\n", m.TotalBases)
	fmt.Printf("  Average quality: %.2f (stddev %.2f)\n", m.AverageQuality, m.QualityStdDev)
	fmt.Printf("  GC content:      %.1f%%\n", m.GCContent)
	fmt.Printf("  Read length:     %.1f bp mean, %d-%d bp range (stddev %.2f)\n",
		m.AverageReadLength, m.MinReadLength, m.MaxReadLength, m.LengthStdDev)

	tier := assess.Classify(m)
	tierColor := color.New(color.FgRed, color.Bold)
	switch tier {
	case assess.TierExcellent, assess.TierGood:
		tierColor = color.New(color.FgGreen, color.Bold)
	case assess.TierFair:
		tierColor = color.New(color.FgYellow, color.Bold)
	}
	fmt.Printf("\n  Quality tier:    %s\n", tierColor.Sprint(tier))

	if statsShowDistributions {
		fmt.Println()
		printHistogram("Quality distribution (Phred)", m.QualityDistribution)
		fmt.Println()
		printHistogram("Length distribution (bp)", m.LengthDistribution)
	}
}

// printHistogram prints a binned histogram sorted by bin lower bound.
func printHistogram(title string, hist map[string]int) {
	fmt.Printf("  %s:\n", title)

	labels := make([]string, 0, len(hist))
	for label := range hist {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return binLow(labels[i]) < binLow(labels[j])
	})

	for _, label := range labels {
		fmt.Printf("    %-10s %d\n", label, hist[label])
	}
}

func binLow(label string) int {
	var lo int
	fmt.Sscanf(strings.SplitN(label, "-", 2)[0], "%d", &lo)
	return lo
}
