package docqa

import (
	"context"
	"fmt"
	"regexp"
	"time"
)

const excerptRunes = 160

var citationMarker = regexp.MustCompile(`\[(\d+)\]`)

// AnswerGenerator builds the prompt for a question and its retrieved
// context, calls the language model and maps citation markers in the
// response back to the retrieved chunks.
type AnswerGenerator struct {
	llm LLMProvider
}

func NewAnswerGenerator(llm LLMProvider) *AnswerGenerator {
	return &AnswerGenerator{llm: llm}
}

func (g *AnswerGenerator) Generate(ctx context.Context, question string, history []ChatMessage, retrieved []RetrievedChunk) (*Answer, error) {
	prompt := BuildPrompt(question, history, retrieved)

	text, err := g.llm.Generate(ctx, SystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	return &Answer{
		Text:      text,
		Citations: ExtractCitations(text, retrieved),
		Retrieved: retrieved,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// ExtractCitations collects the [n] markers that appear in the answer and
// resolves them against the chunks retrieved for this query. Markers that
// do not correspond to a retrieved chunk are dropped, so an answer can
// never cite a chunk that was not retrieved.
func ExtractCitations(text string, retrieved []RetrievedChunk) []Citation {
	seen := make(map[int]bool)
	citations := make([]Citation, 0)

	for _, match := range citationMarker.FindAllStringSubmatch(text, -1) {
		var marker int
		if _, err := fmt.Sscanf(match[1], "%d", &marker); err != nil {
			continue
		}
		if marker < 1 || marker > len(retrieved) || seen[marker] {
			continue
		}
		seen[marker] = true

		chunk := retrieved[marker-1]
		citations = append(citations, Citation{
			Marker:  marker,
			ChunkID: chunk.ID,
			Page:    chunk.Page,
			Excerpt: excerpt(chunk.Text),
		})
	}

	return citations
}

func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= excerptRunes {
		return text
	}
	return string(runes[:excerptRunes]) + "..."
}
