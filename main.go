package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/escalate-ai/router/internal/adapter/ollama"
	"github.com/escalate-ai/router/internal/adapter/websearch"
	"github.com/escalate-ai/router/internal/classify"
	"github.com/escalate-ai/router/internal/config"
	"github.com/escalate-ai/router/internal/service"
	"github.com/escalate-ai/router/internal/store"
	transport "github.com/escalate-ai/router/internal/transport/http"
)

func main() {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting escalate router...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("Front model: %s", cfg.FrontModel)
	log.Printf("Back model: %s", cfg.BackModel)
	log.Printf("Ollama URL: %s", cfg.OllamaURL)
	if cfg.SearchAPIKey == "" {
		log.Printf("Web search disabled (no API key configured)")
	}

	// Initialize dispatch log
	var db store.Store
	if cfg.DatabaseURL != "" {
		sqlite, err := store.NewSQLiteStore(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize store: %v", err)
		}
		db = sqlite
		log.Printf("Dispatch log: %s", cfg.DatabaseURL)
	} else {
		db = store.NewNopStore()
	}
	defer db.Close()

	// Initialize upstream clients
	ollamaClient := ollama.NewClient(cfg.OllamaURL, cfg.GenerateTimeout)
	searchClient := websearch.NewClient(cfg.SearchBaseURL, cfg.SearchAPIKey, cfg.SearchTimeout)

	// Initialize classifier and service
	classifier := classify.New(classify.DefaultRules())
	svc := service.New(db, ollamaClient, searchClient, classifier, cfg)

	// Create HTTP server
	server := transport.NewServer(svc)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Router started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down router...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Router stopped")
}
