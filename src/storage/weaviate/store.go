package weaviate

import (
	"context"
	"fmt"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	weaviateClient "github.com/weaviate/weaviate-go-client/v4/weaviate"
	"github.com/weaviate/weaviate/entities/models"

	"paperqa/src/core/docqa"
)

// Store implements docqa.VectorStore on top of a Weaviate class. Object
// IDs are derived deterministically from chunk IDs, so re-indexing the
// same chunks overwrites rather than duplicates.
type Store struct {
	sdk         *SDK
	className   string
	hybridAlpha float32 // > 0 enables hybrid (vector + BM25) queries
}

func NewStore(client *weaviateClient.Client, className string, hybridAlpha float32) *Store {
	return &Store{
		sdk:         NewSDK(client),
		className:   className,
		hybridAlpha: hybridAlpha,
	}
}

var chunkProperties = []*models.Property{
	{
		Name:        "chunkId",
		DataType:    []string{"text"},
		Description: "ID of the chunk",
	},
	{
		Name:        "content",
		DataType:    []string{"text"},
		Description: "The content of the chunk",
	},
	{
		Name:        "documentId",
		DataType:    []string{"text"},
		Description: "ID of the source document",
	},
	{
		Name:        "chunkIndex",
		DataType:    []string{"int"},
		Description: "Order of the chunk within the document",
	},
	{
		Name:        "page",
		DataType:    []string{"int"},
		Description: "Page the chunk starts on",
	},
	{
		Name:     "start",
		DataType: []string{"int"},
	},
	{
		Name:     "end",
		DataType: []string{"int"},
	},
}

var chunkFields = []string{"chunkId", "content", "documentId", "chunkIndex", "page", "start", "end"}

func (s *Store) Replace(ctx context.Context, chunks []docqa.Chunk, vectors [][]float32) error {
	if len(vectors) != len(chunks) {
		return fmt.Errorf("got %d vectors for %d chunks", len(vectors), len(chunks))
	}

	exists, err := s.sdk.ClassExists(ctx, s.className)
	if err != nil {
		return err
	}
	if exists {
		if err := s.sdk.DeleteSchema(ctx, s.className); err != nil {
			return err
		}
	}
	if err := s.sdk.EnsureSchema(ctx, s.className, chunkProperties, "none"); err != nil {
		return err
	}

	if len(chunks) == 0 {
		return nil
	}

	objects := make([]VectorObject, len(chunks))
	for i, chunk := range chunks {
		objects[i] = VectorObject{
			ID:     strfmt.UUID(uuid.NewSHA1(uuid.NameSpaceOID, []byte(chunk.ID)).String()),
			Vector: vectors[i],
			Properties: map[string]interface{}{
				"chunkId":    chunk.ID,
				"content":    chunk.Text,
				"documentId": chunk.DocumentID,
				"chunkIndex": chunk.Index,
				"page":       chunk.Page,
				"start":      chunk.Start,
				"end":        chunk.End,
			},
		}
	}

	return s.sdk.BatchAddVectors(ctx, s.className, objects)
}

func (s *Store) Query(ctx context.Context, text string, vector []float32, k int) ([]docqa.RetrievedChunk, error) {
	var (
		results []QueryResult
		err     error
	)

	if s.hybridAlpha > 0 {
		results, err = s.sdk.QueryHybrid(ctx, s.className, vector, HybridConfig{
			Query:  text,
			Alpha:  s.hybridAlpha,
			Fields: chunkFields,
			Limit:  k,
		})
	} else {
		results, err = s.sdk.QueryVectors(ctx, s.className, vector, QueryConfig{
			Fields: chunkFields,
			Limit:  k,
		})
	}
	if err != nil {
		return nil, err
	}

	retrieved := make([]docqa.RetrievedChunk, 0, len(results))
	for _, result := range results {
		chunk := docqa.RetrievedChunk{
			Score: result.Score,
		}
		if s.hybridAlpha <= 0 {
			// Near-vector queries score by distance, lower is closer.
			chunk.Score = 1 - result.Score
		}

		chunk.ID, _ = result.Properties["chunkId"].(string)
		chunk.Text, _ = result.Properties["content"].(string)
		chunk.DocumentID, _ = result.Properties["documentId"].(string)
		chunk.Index = intProperty(result.Properties, "chunkIndex")
		chunk.Page = intProperty(result.Properties, "page")
		chunk.Start = intProperty(result.Properties, "start")
		chunk.End = intProperty(result.Properties, "end")

		retrieved = append(retrieved, chunk)
	}

	return retrieved, nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	exists, err := s.sdk.ClassExists(ctx, s.className)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, nil
	}
	return s.sdk.CountObjects(ctx, s.className)
}

func intProperty(properties map[string]interface{}, name string) int {
	if v, ok := properties[name].(float64); ok {
		return int(v)
	}
	return 0
}
