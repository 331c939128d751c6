package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/viper"
	weaviateClient "github.com/weaviate/weaviate-go-client/v4/weaviate"

	"paperqa/src/chunker"
	"paperqa/src/core/docload"
	"paperqa/src/core/docqa"
	"paperqa/src/fsutil"
	"paperqa/src/infrastructure/integrations/ollama"
	"paperqa/src/infrastructure/integrations/openai"
	"paperqa/src/storage/chromemdb"
	"paperqa/src/storage/minioctrl"
	"paperqa/src/storage/weaviate"
)

// pipeline holds the wired components every command works with: the
// loaded document, its chunks and the retrieval side of the system.
type pipeline struct {
	Document  *docload.Document
	Chunks    []docqa.Chunk
	Retriever *docqa.Retriever
	Generator *docqa.AnswerGenerator
	Store     docqa.VectorStore
	LLM       docqa.LLMProvider
}

func newSource() (docload.Source, error) {
	switch source := viper.GetString("document.source"); source {
	case "file":
		return docload.NewFileSource(fsutil.NewLocalFileStore(), viper.GetString("document.path")), nil
	case "minio":
		minioService, err := minioctrl.NewMinioService(
			viper.GetString("minio.endpoint"),
			viper.GetString("minio.access_key"),
			viper.GetString("minio.secret_key"),
			viper.GetBool("minio.use_ssl"),
		)
		if err != nil {
			return nil, err
		}
		return docload.NewMinioSource(
			minioService,
			viper.GetString("minio.bucket"),
			viper.GetString("minio.object"),
		), nil
	default:
		return nil, fmt.Errorf("unknown document source: %s", source)
	}
}

func newProvider() (docqa.LLMProvider, error) {
	switch backend := viper.GetString("llm.backend"); backend {
	case "ollama":
		client := ollama.NewClient(viper.GetString("ollama.url"), &http.Client{
			Timeout: 120 * time.Second,
		})
		return ollama.NewProvider(
			client,
			viper.GetString("ollama.embedding_model"),
			viper.GetString("ollama.reasoning_model"),
		), nil
	case "openai":
		return openai.NewProvider(
			viper.GetString("openai.api_key"),
			viper.GetString("openai.base_url"),
			viper.GetString("openai.embedding_model"),
			viper.GetString("openai.chat_model"),
		)
	default:
		return nil, fmt.Errorf("unknown llm backend: %s", backend)
	}
}

func newStore() (docqa.VectorStore, error) {
	switch backend := viper.GetString("store.backend"); backend {
	case "chromem":
		return chromemdb.NewStore(
			viper.GetString("chromem.path"),
			"chunks",
			viper.GetBool("chromem.compress"),
		)
	case "weaviate":
		client := weaviateClient.New(weaviateClient.Config{
			Host:   viper.GetString("weaviate.host"),
			Scheme: viper.GetString("weaviate.scheme"),
		})
		return weaviate.NewStore(
			client,
			viper.GetString("weaviate.class"),
			float32(viper.GetFloat64("weaviate.hybrid_alpha")),
		), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s", backend)
	}
}

func newSplitter() (chunker.Splitter, error) {
	return chunker.New(chunker.Config{
		Strategy: viper.GetString("chunker.strategy"),
		Size:     viper.GetInt("chunker.size"),
		Overlap:  viper.GetInt("chunker.overlap"),
	})
}

// buildPipeline loads and chunks the configured document and wires the
// retrieval components. The index itself is built by the caller, which
// decides how to report progress.
func buildPipeline(ctx context.Context) (*pipeline, error) {
	source, err := newSource()
	if err != nil {
		return nil, err
	}

	doc, err := docload.NewLoader(source).Load(ctx)
	if err != nil {
		return nil, err
	}

	splitter, err := newSplitter()
	if err != nil {
		return nil, err
	}

	chunks, err := docqa.NewIngestor(splitter).Chunks(doc)
	if err != nil {
		return nil, err
	}

	llm, err := newProvider()
	if err != nil {
		return nil, err
	}

	store, err := newStore()
	if err != nil {
		return nil, err
	}

	return &pipeline{
		Document:  doc,
		Chunks:    chunks,
		Retriever: docqa.NewRetriever(store, llm, viper.GetInt("retrieval.top_k")),
		Generator: docqa.NewAnswerGenerator(llm),
		Store:     store,
		LLM:       llm,
	}, nil
}
