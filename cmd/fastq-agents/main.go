// fastq-agents analyzes FASTQ files and produces quality reports.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "fastq-agents",
	Short: "FASTQ quality analysis and reporting",
	Long: `fastq-agents analyzes FASTQ sequencing files and produces quality
reports with processing recommendations.

The core analysis (metrics, quality tier, recommendations) is fully
deterministic. When an Anthropic API key is configured, reports also
include an AI-generated narrative; without one, a built-in template
narrative is used instead.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fastq-agents %s\n", version)
	},
}
