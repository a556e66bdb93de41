package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/trendcraft/trendcraft-server/internal/config"
	"github.com/trendcraft/trendcraft-server/internal/trainer"
)

const checkInterval = time.Hour

func main() {

	logger := log.New(os.Stdout, "SCHEDULER: ", log.Ldate|log.Ltime)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration:", err)
	}
	if err := cfg.ValidateTraining(); err != nil {
		logger.Fatal("Invalid configuration:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cfg.ResolveGoogleCredentials(ctx); err != nil {
		logger.Fatal("Invalid credentials:", err)
	}

	submitter, err := trainer.NewVertexJobSubmitter(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to create job submitter:", err)
	}
	defer submitter.Close()

	period := time.Duration(cfg.TrainingPeriodDays) * 24 * time.Hour
	scheduler := trainer.NewScheduler(submitter, checkInterval, period, logger)

	scheduler.Start(ctx)

}
