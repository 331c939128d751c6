package docqa

import (
	"context"
	"errors"
	"time"
)

var (
	ErrIndexNotReady    = errors.New("vector index is not ready")
	ErrGenerationFailed = errors.New("answer generation failed")
	ErrEmptyQuestion    = errors.New("question must not be empty")
)

// ChatService defines the interface for question answering over the
// ingested document.
type ChatService interface {
	Ask(ctx context.Context, sessionID, question string) (*Answer, error)
	GetHistory(ctx context.Context, sessionID string) ([]ChatMessage, error)
}

// SystemService defines the interface for system operations
type SystemService interface {
	CheckHealth(ctx context.Context) (*HealthStatus, error)
}

// Chunk is a bounded slice of the source document stored as a retrieval
// unit. Offsets are rune offsets into the document text.
type Chunk struct {
	ID         string `json:"id"`
	Index      int    `json:"index"`
	DocumentID string `json:"documentId"`
	Text       string `json:"text"`
	Page       int    `json:"page"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
}

// RetrievedChunk is a chunk returned by a similarity query together with
// its relevance score. Higher scores are more relevant.
type RetrievedChunk struct {
	Chunk
	Score float64 `json:"score"`
}

// ChatMessage represents a message in chat history
type ChatMessage struct {
	SessionID string    `json:"sessionId"`
	MessageID string    `json:"messageId"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Citation points from a marker used in the answer text back to the
// retrieved chunk it refers to.
type Citation struct {
	Marker  int    `json:"marker"`
	ChunkID string `json:"chunkId"`
	Page    int    `json:"page"`
	Excerpt string `json:"excerpt"`
}

// Answer is the generated response for one question.
type Answer struct {
	SessionID string           `json:"sessionId"`
	MessageID string           `json:"messageId"`
	Text      string           `json:"text"`
	Citations []Citation       `json:"citations"`
	Retrieved []RetrievedChunk `json:"-"`
	CreatedAt time.Time        `json:"createdAt"`
}

// ComponentStatus represents the status of system components
type ComponentStatus string

const (
	StatusUp   ComponentStatus = "up"
	StatusDown ComponentStatus = "down"
)

// HealthStatus represents system health status
type HealthStatus struct {
	Status     string `json:"status"`
	IndexReady bool   `json:"indexReady"`
	Chunks     int    `json:"chunks"`
	Components struct {
		Store ComponentStatus `json:"store"`
		LLM   ComponentStatus `json:"llm"`
	} `json:"components"`
}
