package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"paperqa/src/core/docqa"
	"paperqa/src/infrastructure/log"
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a single question about the document",
	Long: `The ask command ingests the configured PDF and answers one question
on the command line, printing the answer and its citations.`,
	Args: cobra.MinimumNArgs(1),
	Run:  Ask,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func Ask(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	question := strings.Join(args, " ")

	p, err := buildPipeline(ctx)
	if err != nil {
		log.Error(err, "Failed to build pipeline")
		return
	}

	if err := p.Retriever.Index(ctx, p.Chunks); err != nil {
		log.Error(err, "Failed to build vector index")
		return
	}

	chatService, err := docqa.NewChatService(
		p.Retriever,
		p.Generator,
		docqa.NewMemoryHistoryStore(),
		viper.GetInt("chat.history_limit"),
	)
	if err != nil {
		log.Error(err, "Failed to create chat service")
		return
	}

	answer, err := chatService.Ask(ctx, "", question)
	if err != nil {
		log.Error(err, "Failed to answer question")
		return
	}

	fmt.Println(answer.Text)
	if len(answer.Citations) > 0 {
		fmt.Println("\nCitations:")
		for _, citation := range answer.Citations {
			fmt.Printf("  [%d] page %d: %s\n", citation.Marker, citation.Page, citation.Excerpt)
		}
	}
}
