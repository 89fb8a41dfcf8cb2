package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"finos_backend/internal/feature/resolver/adapters"
	"finos_backend/internal/feature/resolver/adapters/nse"
	platformdb "finos_backend/internal/platform/db"
	platformhttp "finos_backend/internal/platform/http"
)

// Downloads the NSE equity listing and replaces the persisted
// instrument table. Run from cron ahead of market open.
func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] no .env file loaded:", err)
	}

	db := platformdb.OpenDB()
	cfg := nse.LoadConfig()
	client := nse.NewClient(cfg, platformhttp.NewHTTPClient(cfg.Timeout))
	repo := adapters.NewInstrumentRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	instruments, err := client.FetchListing(ctx)
	if err != nil {
		log.Fatal("failed to download NSE listing:", err)
	}
	if err := repo.ReplaceAll(ctx, instruments); err != nil {
		log.Fatal("failed to store instruments:", err)
	}
	log.Printf("ingest ok: %d instruments", len(instruments))
}
