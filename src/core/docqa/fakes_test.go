package docqa_test

import (
	"context"
	"sort"
	"strings"

	"paperqa/src/core/docqa"
)

// embeddingKeywords define the dimensions of the fake embedding space.
// A text's vector counts how often each keyword occurs, so texts about
// the same keyword land close together.
var embeddingKeywords = []string{"alpha", "beta", "gamma", "delta"}

type fakeLLM struct {
	response    string
	generateErr error

	lastSystem string
	lastPrompt string
	embedCalls int
}

func (l *fakeLLM) GetEmbedding(ctx context.Context, input string) ([]float32, error) {
	l.embedCalls++
	vector := make([]float32, len(embeddingKeywords))
	lower := strings.ToLower(input)
	for i, keyword := range embeddingKeywords {
		vector[i] = float32(strings.Count(lower, keyword))
	}
	return vector, nil
}

func (l *fakeLLM) Generate(ctx context.Context, system, prompt string) (string, error) {
	if l.generateErr != nil {
		return "", l.generateErr
	}
	l.lastSystem = system
	l.lastPrompt = prompt
	return l.response, nil
}

func (l *fakeLLM) Models(ctx context.Context) ([]string, error) {
	return []string{"fake-model"}, nil
}

type fakeStore struct {
	chunks       []docqa.Chunk
	vectors      [][]float32
	replaceCalls int
}

func (s *fakeStore) Replace(ctx context.Context, chunks []docqa.Chunk, vectors [][]float32) error {
	s.chunks = append([]docqa.Chunk(nil), chunks...)
	s.vectors = append([][]float32(nil), vectors...)
	s.replaceCalls++
	return nil
}

func (s *fakeStore) Query(ctx context.Context, text string, vector []float32, k int) ([]docqa.RetrievedChunk, error) {
	results := make([]docqa.RetrievedChunk, 0, len(s.chunks))
	for i, chunk := range s.chunks {
		results = append(results, docqa.RetrievedChunk{
			Chunk: chunk,
			Score: dot(vector, s.vectors[i]),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}

func (s *fakeStore) Count(ctx context.Context) (int, error) {
	return len(s.chunks), nil
}

func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		if i < len(b) {
			sum += float64(a[i]) * float64(b[i])
		}
	}
	return sum
}
