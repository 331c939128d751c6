package weaviate

import (
	"context"
	"fmt"
	"strconv"

	"github.com/weaviate/weaviate-go-client/v4/weaviate/graphql"
)

// HybridConfig contains configuration for hybrid search
type HybridConfig struct {
	Query  string  // Text query for BM25
	Alpha  float32 // Weight for vector search (default: 0.75)
	Fields []string
	Limit  int
}

// DefaultHybridAlpha weighs vector search at 75% and BM25 at 25%.
const DefaultHybridAlpha = 0.75

// QueryHybrid performs hybrid search combining vector similarity and BM25
func (w *SDK) QueryHybrid(ctx context.Context, className string, vector []float32, config HybridConfig) ([]QueryResult, error) {
	fields := make([]graphql.Field, len(config.Fields))
	for i, field := range config.Fields {
		fields[i] = graphql.Field{Name: field}
	}
	fields = append(fields, graphql.Field{Name: "_additional { id score }"})

	if config.Alpha <= 0 {
		config.Alpha = DefaultHybridAlpha
	}
	if config.Limit <= 0 {
		config.Limit = DefaultQueryLimit
	}

	hybridBuilder := w.client.GraphQL().HybridArgumentBuilder().
		WithVector(vector).
		WithQuery(config.Query).
		WithAlpha(config.Alpha)

	result, err := w.client.GraphQL().Get().
		WithClassName(className).
		WithFields(fields...).
		WithHybrid(hybridBuilder).
		WithLimit(config.Limit).
		Do(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to run hybrid query: %v", err)
	}

	var queryResults []QueryResult
	data, ok := result.Data["Get"].(map[string]interface{})
	if !ok {
		return queryResults, nil
	}
	objects, ok := data[className].([]interface{})
	if !ok {
		return queryResults, nil
	}

	for _, obj := range objects {
		objMap, ok := obj.(map[string]interface{})
		if !ok {
			continue
		}
		additional, ok := objMap["_additional"].(map[string]interface{})
		if !ok {
			continue
		}

		properties := make(map[string]interface{})
		for k, v := range objMap {
			if k != "_additional" {
				properties[k] = v
			}
		}

		id, _ := additional["id"].(string)
		// Hybrid scores come back as strings; higher is better.
		var score float64
		if raw, ok := additional["score"].(string); ok {
			score, _ = strconv.ParseFloat(raw, 64)
		}

		queryResults = append(queryResults, QueryResult{
			ID:         id,
			Score:      score,
			Properties: properties,
		})
	}

	return queryResults, nil
}
