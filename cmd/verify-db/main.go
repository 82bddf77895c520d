package main

import (
	"context"
	"log"
	"time"

	"inventory-service/internal/config"
	"inventory-service/internal/db"

	"github.com/joho/godotenv"
)

// verify-db connects to the configured database, bootstraps the items schema,
// and reports row counts. Useful as a deploy-time smoke check.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[CONFIG] %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[CONNECT] %v", err)
	}
	defer pool.Close()
	log.Println("[CONNECT] success")

	if err := db.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("[SCHEMA] %v", err)
	}
	log.Println("[SCHEMA] items table present")

	var total, visible int64
	if err := pool.QueryRow(ctx, `
		SELECT count(*), count(*) FILTER (WHERE is_deleted = FALSE)
		FROM items`,
	).Scan(&total, &visible); err != nil {
		log.Fatalf("[COUNT] %v", err)
	}
	log.Printf("[COUNT] %d rows (%d visible, %d soft-deleted)", total, visible, total-visible)

	log.Println("[DONE] database verified")
}
