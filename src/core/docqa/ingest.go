package docqa

import (
	"fmt"

	"paperqa/src/chunker"
	"paperqa/src/core/docload"
)

// Ingestor turns a loaded document into retrieval chunks.
type Ingestor struct {
	splitter chunker.Splitter
}

func NewIngestor(splitter chunker.Splitter) *Ingestor {
	return &Ingestor{splitter: splitter}
}

// Chunks splits the document text and attributes each chunk to the page
// its first rune falls on. An empty document yields zero chunks.
func (i *Ingestor) Chunks(doc *docload.Document) ([]Chunk, error) {
	spans, err := i.splitter.Split(doc.Text)
	if err != nil {
		return nil, fmt.Errorf("failed to split document: %w", err)
	}

	chunks := make([]Chunk, 0, len(spans))
	for idx, span := range spans {
		chunks = append(chunks, Chunk{
			ID:         fmt.Sprintf("%s-%d", doc.ID, idx),
			Index:      idx,
			DocumentID: doc.ID,
			Text:       span.Text,
			Page:       doc.PageAt(span.Start),
			Start:      span.Start,
			End:        span.End,
		})
	}

	return chunks, nil
}
