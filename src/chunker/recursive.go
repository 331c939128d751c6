package chunker

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tmc/langchaingo/textsplitter"
)

// recursiveSplitter delegates to langchaingo's recursive character
// splitter, which prefers paragraph and sentence boundaries over hard
// cuts. Offsets are recovered by locating each piece in the source text.
type recursiveSplitter struct {
	size    int
	overlap int
}

func (s *recursiveSplitter) Split(text string) ([]Span, error) {
	if text == "" {
		return nil, nil
	}

	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(s.size),
		textsplitter.WithChunkOverlap(s.overlap),
	)

	pieces, err := splitter.SplitText(text)
	if err != nil {
		return nil, fmt.Errorf("failed to split text: %w", err)
	}

	spans := make([]Span, 0, len(pieces))
	searchFrom := 0 // byte offset; pieces overlap, so advance one byte at a time
	for _, piece := range pieces {
		if piece == "" {
			continue
		}
		idx := strings.Index(text[searchFrom:], piece)
		var abs int
		if idx >= 0 {
			abs = searchFrom + idx
		} else {
			// The splitter trims whitespace, so fall back to a full scan.
			abs = strings.Index(text, piece)
			if abs < 0 {
				continue
			}
		}

		start := utf8.RuneCountInString(text[:abs])
		spans = append(spans, Span{
			Text:  piece,
			Start: start,
			End:   start + utf8.RuneCountInString(piece),
		})
		searchFrom = abs + 1
	}

	return spans, nil
}
