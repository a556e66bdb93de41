package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/trendcraft/trendcraft-server/internal/config"
	"github.com/trendcraft/trendcraft-server/internal/ingest"
	"github.com/trendcraft/trendcraft-server/internal/store"
	"github.com/trendcraft/trendcraft-server/internal/store/analytics"
	"github.com/trendcraft/trendcraft-server/internal/youtube"
)

func main() {

	logger := log.New(os.Stdout, "INGEST: ", log.Ldate|log.Ltime)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration:", err)
	}
	if err := cfg.ValidateIngest(); err != nil {
		logger.Fatal("Invalid configuration:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := &ingest.Runner{
		Fetcher:      youtube.NewClient(cfg),
		Logger:       logger,
		DataDir:      cfg.DataDir,
		CategoryFrom: cfg.CategoryFrom,
		CategoryTo:   cfg.CategoryTo,
	}

	// The analytics mirror is optional; the dataset file is the primary
	// output either way.
	if cfg.ClickhouseURL != "" {
		conn, err := store.ConnectClickhouse(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to clickhouse:", err)
		}
		defer conn.Close()

		if err := store.MigrateClickhouse(cfg); err != nil {
			logger.Fatal("Clickhouse migration failed:", err)
		}

		runner.Observations = analytics.NewClickhouseObservationStore(conn)
	}

	if err := runner.Run(ctx); err != nil {
		logger.Fatal("Ingestion run failed:", err)
	}

}
