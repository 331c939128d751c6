package cmd

import "github.com/spf13/viper"

func settingDefaultConfig() {
	// Enable automatic environment variable binding
	viper.AutomaticEnv()

	// Map environment variables to Viper keys for the source document
	viper.BindEnv("document.source", "DOCUMENT_SOURCE")
	viper.BindEnv("document.path", "DOCUMENT_PATH")

	// Map environment variables to Viper keys for MinIO
	viper.BindEnv("minio.endpoint", "MINIO_ENDPOINT")
	viper.BindEnv("minio.access_key", "MINIO_ACCESS_KEY")
	viper.BindEnv("minio.secret_key", "MINIO_SECRET_KEY")
	viper.BindEnv("minio.bucket", "MINIO_BUCKET")
	viper.BindEnv("minio.object", "MINIO_OBJECT")
	viper.BindEnv("minio.use_ssl", "MINIO_USE_SSL")

	// Map environment variables to Viper keys for the LLM backends
	viper.BindEnv("llm.backend", "LLM_BACKEND")
	viper.BindEnv("ollama.url", "OLLAMA_URL")
	viper.BindEnv("ollama.embedding_model", "OLLAMA_EMBEDDING_MODEL")
	viper.BindEnv("ollama.reasoning_model", "OLLAMA_REASONING_MODEL")
	viper.BindEnv("openai.api_key", "OPENAI_API_KEY")
	viper.BindEnv("openai.base_url", "OPENAI_BASE_URL")
	viper.BindEnv("openai.embedding_model", "OPENAI_EMBEDDING_MODEL")
	viper.BindEnv("openai.chat_model", "OPENAI_CHAT_MODEL")

	// Map environment variables to Viper keys for the vector stores
	viper.BindEnv("store.backend", "STORE_BACKEND")
	viper.BindEnv("chromem.path", "CHROMEM_PATH")
	viper.BindEnv("chromem.compress", "CHROMEM_COMPRESS")
	viper.BindEnv("weaviate.host", "WEAVIATE_HOST")
	viper.BindEnv("weaviate.scheme", "WEAVIATE_SCHEME")
	viper.BindEnv("weaviate.class", "WEAVIATE_CLASS")
	viper.BindEnv("weaviate.hybrid_alpha", "WEAVIATE_HYBRID_ALPHA")

	// Map environment variables to Viper keys for chunking and retrieval
	viper.BindEnv("chunker.strategy", "CHUNKER_STRATEGY")
	viper.BindEnv("chunker.size", "CHUNKER_SIZE")
	viper.BindEnv("chunker.overlap", "CHUNKER_OVERLAP")
	viper.BindEnv("retrieval.top_k", "RETRIEVAL_TOP_K")
	viper.BindEnv("chat.history_limit", "CHAT_HISTORY_LIMIT")

	// Map environment variables to Viper keys for the Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.shutdown_timeout", "SERVER_SHUTDOWN_TIMEOUT")

	// Set default values for the source document
	viper.SetDefault("document.source", "file")
	viper.SetDefault("document.path", "paper.pdf")

	// Set default values for MinIO
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.bucket", "documents")
	viper.SetDefault("minio.use_ssl", false)

	// Set default values for the LLM backends
	viper.SetDefault("llm.backend", "ollama")
	viper.SetDefault("ollama.url", "http://localhost:11434/api")
	viper.SetDefault("ollama.embedding_model", "nomic-embed-text")
	viper.SetDefault("ollama.reasoning_model", "llama3.1")

	// Set default values for the vector stores
	viper.SetDefault("store.backend", "chromem")
	viper.SetDefault("chromem.path", "")
	viper.SetDefault("chromem.compress", false)
	viper.SetDefault("weaviate.host", "localhost:8080")
	viper.SetDefault("weaviate.scheme", "http")
	viper.SetDefault("weaviate.class", "PaperChunk")
	viper.SetDefault("weaviate.hybrid_alpha", 0.75)

	// Set default values for chunking and retrieval
	viper.SetDefault("chunker.strategy", "window")
	viper.SetDefault("chunker.size", 1000)
	viper.SetDefault("chunker.overlap", 200)
	viper.SetDefault("retrieval.top_k", 5)
	viper.SetDefault("chat.history_limit", 6)

	// Set default values for the Server
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.shutdown_timeout", "5s")
}
