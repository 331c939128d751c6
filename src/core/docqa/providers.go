package docqa

import "context"

// LLMProvider defines operations for language model interactions. The
// embedding and reasoning models are bound at construction time.
type LLMProvider interface {
	// GetEmbedding generates an embedding vector for the given input text
	GetEmbedding(ctx context.Context, input string) ([]float32, error)
	// Generate produces a completion for the given system and user prompt
	Generate(ctx context.Context, system, prompt string) (string, error)
	// Models lists the models available at the provider, used for health checks
	Models(ctx context.Context) ([]string, error)
}

// VectorStore defines operations for vector storage and similarity search.
type VectorStore interface {
	// Replace stores the given chunks with their vectors, discarding any
	// previously stored chunks. vectors[i] belongs to chunks[i].
	Replace(ctx context.Context, chunks []Chunk, vectors [][]float32) error
	// Query returns up to k stored chunks nearest to the given vector,
	// ordered by descending similarity. The query text is passed along
	// for stores that combine vector search with keyword matching.
	Query(ctx context.Context, text string, vector []float32, k int) ([]RetrievedChunk, error)
	// Count returns the number of stored chunks.
	Count(ctx context.Context) (int, error)
}

// HistoryStore keeps the ordered per-session conversation log.
type HistoryStore interface {
	Append(ctx context.Context, msg *ChatMessage) error
	List(ctx context.Context, sessionID string) ([]ChatMessage, error)
}
