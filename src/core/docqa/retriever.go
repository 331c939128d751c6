package docqa

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

const DefaultTopK = 5

// Retriever owns the vector index for the document. The index is built
// once, before any query is accepted, and is read-only afterwards.
type Retriever struct {
	store VectorStore
	llm   LLMProvider
	topK  int

	// Progress, when set, is called after each chunk is embedded during
	// Index. Used by the CLI to drive a progress bar.
	Progress func(done, total int)

	mu    sync.RWMutex
	ready bool
}

func NewRetriever(store VectorStore, llm LLMProvider, topK int) *Retriever {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Retriever{
		store: store,
		llm:   llm,
		topK:  topK,
	}
}

// Index embeds all chunks and replaces the stored vectors, so indexing
// the same chunk set twice leaves query results unchanged. Indexing an
// empty chunk set succeeds and leaves the index ready with no entries.
func (r *Retriever) Index(ctx context.Context, chunks []Chunk) error {
	vectors := make([][]float32, 0, len(chunks))
	for i, chunk := range chunks {
		vector, err := r.llm.GetEmbedding(ctx, chunk.Text)
		if err != nil {
			return fmt.Errorf("failed to embed chunk %d: %w", chunk.Index, err)
		}
		vectors = append(vectors, vector)
		if r.Progress != nil {
			r.Progress(i+1, len(chunks))
		}
	}

	if err := r.store.Replace(ctx, chunks, vectors); err != nil {
		return fmt.Errorf("failed to store vectors: %w", err)
	}

	r.mu.Lock()
	r.ready = true
	r.mu.Unlock()
	return nil
}

// Ready reports whether Index has completed.
func (r *Retriever) Ready() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ready
}

// Query embeds the question and returns up to k chunks ordered by
// descending similarity. Ties are broken by chunk index so the order is
// deterministic. k <= 0 falls back to the configured top-k.
func (r *Retriever) Query(ctx context.Context, text string, k int) ([]RetrievedChunk, error) {
	if !r.Ready() {
		return nil, ErrIndexNotReady
	}
	if k <= 0 {
		k = r.topK
	}

	count, err := r.store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count stored chunks: %w", err)
	}
	if count == 0 {
		return []RetrievedChunk{}, nil
	}
	if k > count {
		k = count
	}

	vector, err := r.llm.GetEmbedding(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	results, err := r.store.Query(ctx, text, vector, k)
	if err != nil {
		return nil, fmt.Errorf("failed to query vectors: %w", err)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Index < results[j].Index
	})

	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}
