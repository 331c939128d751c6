package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"paperqa/src/core/docqa"
	"paperqa/src/infrastructure/log"
)

// evaluateCmd represents the evaluate command
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Measure retrieval quality against a question set",
	Long: `The evaluate command ingests the configured PDF and runs a set of
questions against the retriever. Each line of the input file is a JSON
object with a "question" and the "expect_terms" a relevant chunk must
contain. The command reports the fraction of questions for which at
least one retrieved chunk contains an expected term.`,
	Run: Evaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
	evaluateCmd.Flags().StringP("input", "i", "", "Input JSONL file path")
	evaluateCmd.MarkFlagRequired("input")
	evaluateCmd.Flags().IntP("top-k", "k", 0, "Number of chunks to retrieve per question (0 = configured default)")
}

type evaluateCase struct {
	Question    string   `json:"question"`
	ExpectTerms []string `json:"expect_terms"`
}

func Evaluate(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	inputPath, _ := cmd.Flags().GetString("input")
	topK, _ := cmd.Flags().GetInt("top-k")

	cases, err := loadEvaluateCases(inputPath)
	if err != nil {
		log.Error(err, "Failed to load evaluation cases")
		return
	}
	if len(cases) == 0 {
		fmt.Println("No evaluation cases found")
		return
	}

	p, err := buildPipeline(ctx)
	if err != nil {
		log.Error(err, "Failed to build pipeline")
		return
	}

	if err := p.Retriever.Index(ctx, p.Chunks); err != nil {
		log.Error(err, "Failed to build vector index")
		return
	}

	bar := progressbar.Default(int64(len(cases)), "evaluating")
	var hits int
	for _, c := range cases {
		retrieved, err := p.Retriever.Query(ctx, c.Question, topK)
		if err != nil {
			log.Error(err, "Failed to retrieve chunks", "question", c.Question)
			bar.Add(1)
			continue
		}

		if matchesAnyTerm(retrieved, c.ExpectTerms) {
			hits++
		}
		bar.Add(1)
	}

	fmt.Printf("Evaluation Results:\n")
	fmt.Printf("Total questions: %d\n", len(cases))
	fmt.Printf("Hits: %d\n", hits)
	fmt.Printf("Hit rate: %.2f%%\n", float64(hits)/float64(len(cases))*100)
}

func loadEvaluateCases(path string) ([]evaluateCase, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	const maxCapacity = 4 * 1024 * 1024
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)

	var cases []evaluateCase
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var c evaluateCase
		if err := json.Unmarshal([]byte(line), &c); err != nil {
			return nil, fmt.Errorf("failed to parse evaluation line: %w", err)
		}
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	return cases, nil
}

// matchesAnyTerm reports whether any retrieved chunk contains any of the
// expected terms, compared case-insensitively.
func matchesAnyTerm(retrieved []docqa.RetrievedChunk, terms []string) bool {
	for _, chunk := range retrieved {
		text := strings.ToLower(chunk.Text)
		for _, term := range terms {
			if term == "" {
				continue
			}
			if strings.Contains(text, strings.ToLower(term)) {
				return true
			}
		}
	}
	return false
}
