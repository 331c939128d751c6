package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "paperqa",
	Short: "Question answering over a single PDF document",
	Long: `paperqa ingests one PDF document, builds a vector index over its
chunks and answers questions about it, citing the passages the answer
is based on. Run "paperqa serve" for the HTTP API or "paperqa ask" for
a one-shot question on the command line.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(settingDefaultConfig)
}
