package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sentimark/reviews_api/config"
	"github.com/sentimark/reviews_api/internal/db"
	api "github.com/sentimark/reviews_api/internal/http/rest"
)

const schemaTimeout = 10 * time.Second

func main() {
	cfg := config.New()

	database, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Panicln("failed to connect to database", "error", err)
	}

	// The schema must exist before the first request is accepted.
	schemaCtx, cancel := context.WithTimeout(context.Background(), schemaTimeout)
	if err := database.EnsureSchema(schemaCtx); err != nil {
		cancel()
		log.Panicln("failed to ensure database schema", "error", err)
	}
	cancel()

	a := &api.API{
		Config: cfg,
		Store:  api.NewReviewRepo(database),
	}

	go func() {
		log.Printf("Server running on port %v ...", cfg.Port)
		if serveErr := a.Serve(); serveErr != nil {
			log.Println("server stopped:", serveErr)
		}
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-stopChan

	log.Println("Shutting down server...")
	if err := a.Shutdown(); err != nil {
		log.Println("server shutdown failed:", err)
	}

	database.Close()
	log.Println("Database connections closed.")
}
