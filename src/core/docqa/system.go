package docqa

import (
	"context"
)

type systemService struct {
	retriever *Retriever
	store     VectorStore
	llm       LLMProvider
}

func NewSystemService(retriever *Retriever, store VectorStore, llm LLMProvider) SystemService {
	return &systemService{
		retriever: retriever,
		store:     store,
		llm:       llm,
	}
}

func (s *systemService) CheckHealth(ctx context.Context) (*HealthStatus, error) {
	status := &HealthStatus{
		Status:     "healthy",
		IndexReady: s.retriever.Ready(),
	}
	status.Components.Store = StatusDown
	status.Components.LLM = StatusDown

	if count, err := s.store.Count(ctx); err == nil {
		status.Components.Store = StatusUp
		status.Chunks = count
	}

	if _, err := s.llm.Models(ctx); err == nil {
		status.Components.LLM = StatusUp
	}

	if !status.IndexReady ||
		status.Components.Store == StatusDown ||
		status.Components.LLM == StatusDown {
		status.Status = "unhealthy"
	}

	return status, nil
}
