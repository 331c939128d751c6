package ollama

import (
	"context"
)

// Provider adapts the Ollama client to the core LLMProvider interface,
// binding the embedding and reasoning models at construction time.
type Provider struct {
	client         *Client
	embeddingModel string
	reasoningModel string
}

func NewProvider(client *Client, embeddingModel, reasoningModel string) *Provider {
	return &Provider{
		client:         client,
		embeddingModel: embeddingModel,
		reasoningModel: reasoningModel,
	}
}

func (p *Provider) GetEmbedding(ctx context.Context, input string) ([]float32, error) {
	return p.client.GetEmbedding(ctx, p.embeddingModel, input)
}

func (p *Provider) Generate(ctx context.Context, system, prompt string) (string, error) {
	return p.client.Generate(ctx, p.reasoningModel, system, prompt, map[string]interface{}{
		"temperature": 0,
	})
}

func (p *Provider) Models(ctx context.Context) ([]string, error) {
	return p.client.Models(ctx)
}
