package cmd

import (
	"context"
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"paperqa/src/infrastructure/log"
)

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load, chunk and index the configured document",
	Long: `The ingest command loads the configured PDF, splits it into chunks,
embeds each chunk and writes the vectors to the configured store. With a
persistent store backend the index survives for later runs.`,
	Run: Ingest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func Ingest(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	p, err := buildPipeline(ctx)
	if err != nil {
		log.Error(err, "Failed to build pipeline")
		return
	}

	fmt.Printf("Loaded %s: %d pages, %d chunks\n",
		p.Document.Name, len(p.Document.Pages), len(p.Chunks))

	bar := progressbar.Default(int64(len(p.Chunks)), "embedding chunks")
	p.Retriever.Progress = func(done, total int) {
		bar.Add(1)
	}

	if err := p.Retriever.Index(ctx, p.Chunks); err != nil {
		log.Error(err, "Failed to build vector index")
		return
	}

	fmt.Printf("Indexed %d chunks\n", len(p.Chunks))
}
