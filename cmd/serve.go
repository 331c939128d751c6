package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	handler "paperqa/handler/http"
	"paperqa/src/core/docqa"
	"paperqa/src/infrastructure/log"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Ingest the document and run the question answering server",
	Long: `The serve command loads the configured PDF, chunks and indexes it,
then starts an HTTP server that answers questions about the document.`,
	Run: RunServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func RunServer(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	p, err := buildPipeline(ctx)
	if err != nil {
		log.Error(err, "Failed to build pipeline")
		return
	}
	log.Info("Loaded document",
		"name", p.Document.Name,
		"pages", len(p.Document.Pages),
		"chunks", len(p.Chunks),
	)

	if err := p.Retriever.Index(ctx, p.Chunks); err != nil {
		log.Error(err, "Failed to build vector index")
		return
	}
	log.Info("Vector index ready", "chunks", len(p.Chunks))

	chatService, err := docqa.NewChatService(
		p.Retriever,
		p.Generator,
		docqa.NewMemoryHistoryStore(),
		viper.GetInt("chat.history_limit"),
	)
	if err != nil {
		log.Error(err, "Failed to create chat service")
		return
	}

	// Initialize HTTP handler with individual services
	h := handler.NewHandler(
		chatService,
		docqa.NewSystemService(p.Retriever, p.Store, p.LLM),
	)

	// Setup gin router
	r := gin.Default()

	// Register routes
	h.RegisterRoutes(r)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + viper.GetString("server.port"),
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(err, "Failed to start server")
			return
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Parse shutdown timeout
	timeout, err := time.ParseDuration(viper.GetString("server.shutdown_timeout"))
	if err != nil {
		log.Error(err, "Invalid shutdown timeout, using default 5s")
		timeout = 5 * time.Second
	}

	// Create context with timeout for shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(err, "Server forced to shutdown")
	}

	log.Info("Server exited")
}
