package chromemdb

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"github.com/philippgille/chromem-go"

	"paperqa/src/core/docqa"
)

// Store implements docqa.VectorStore with chromem-go, an embedded vector
// database. With a path it persists the index on disk; without one it
// keeps everything in memory.
type Store struct {
	db         *chromem.DB
	collection string
}

func NewStore(path, collection string, compress bool) (*Store, error) {
	var (
		db  *chromem.DB
		err error
	)
	if path == "" {
		db = chromem.NewDB()
	} else {
		db, err = chromem.NewPersistentDB(path, compress)
		if err != nil {
			return nil, fmt.Errorf("failed to open vector database: %v", err)
		}
	}

	return &Store{
		db:         db,
		collection: collection,
	}, nil
}

func (s *Store) Replace(ctx context.Context, chunks []docqa.Chunk, vectors [][]float32) error {
	if len(vectors) != len(chunks) {
		return fmt.Errorf("got %d vectors for %d chunks", len(vectors), len(chunks))
	}

	if existing := s.db.GetCollection(s.collection, nil); existing != nil {
		if err := s.db.DeleteCollection(s.collection); err != nil {
			return fmt.Errorf("failed to reset collection: %v", err)
		}
	}

	collection, err := s.db.GetOrCreateCollection(s.collection, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create collection: %v", err)
	}

	if len(chunks) == 0 {
		return nil
	}

	docs := make([]chromem.Document, len(chunks))
	for i, chunk := range chunks {
		docs[i] = chromem.Document{
			ID:      chunk.ID,
			Content: chunk.Text,
			Metadata: map[string]string{
				"documentId": chunk.DocumentID,
				"chunkIndex": strconv.Itoa(chunk.Index),
				"page":       strconv.Itoa(chunk.Page),
				"start":      strconv.Itoa(chunk.Start),
				"end":        strconv.Itoa(chunk.End),
			},
			Embedding: vectors[i],
		}
	}

	if err := collection.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return fmt.Errorf("failed to add documents: %v", err)
	}

	return nil
}

func (s *Store) Query(ctx context.Context, text string, vector []float32, k int) ([]docqa.RetrievedChunk, error) {
	collection := s.db.GetCollection(s.collection, nil)
	if collection == nil || collection.Count() == 0 {
		return []docqa.RetrievedChunk{}, nil
	}

	// chromem rejects queries asking for more results than stored.
	if count := collection.Count(); k > count {
		k = count
	}

	results, err := collection.QueryEmbedding(ctx, vector, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query collection: %v", err)
	}

	retrieved := make([]docqa.RetrievedChunk, 0, len(results))
	for _, result := range results {
		retrieved = append(retrieved, docqa.RetrievedChunk{
			Chunk: docqa.Chunk{
				ID:         result.ID,
				Index:      intMetadata(result.Metadata, "chunkIndex"),
				DocumentID: result.Metadata["documentId"],
				Text:       result.Content,
				Page:       intMetadata(result.Metadata, "page"),
				Start:      intMetadata(result.Metadata, "start"),
				End:        intMetadata(result.Metadata, "end"),
			},
			Score: float64(result.Similarity),
		})
	}

	return retrieved, nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	collection := s.db.GetCollection(s.collection, nil)
	if collection == nil {
		return 0, nil
	}
	return collection.Count(), nil
}

func intMetadata(metadata map[string]string, name string) int {
	v, err := strconv.Atoi(metadata[name])
	if err != nil {
		return 0
	}
	return v
}
