package app

import (
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/trendcraft/trendcraft-server/internal/config"
	"github.com/trendcraft/trendcraft-server/internal/handlers"
	handler_analytics "github.com/trendcraft/trendcraft-server/internal/handlers/analytics"
	"github.com/trendcraft/trendcraft-server/internal/llm"
	"github.com/trendcraft/trendcraft-server/internal/middlewares"
	"github.com/trendcraft/trendcraft-server/internal/ml"
	"github.com/trendcraft/trendcraft-server/internal/store"
	"github.com/trendcraft/trendcraft-server/internal/store/analytics"
	"github.com/trendcraft/trendcraft-server/migrations"
)

type Application struct {
	Config *config.Config
	Logger *log.Logger
	Bundle *ml.Bundle

	db        *sql.DB
	DBConn    driver.Conn
	generator *llm.VertexGenerator

	MiddlewareHandler  *middlewares.MiddlewareHandler
	HealthHandler      *handlers.HealthHandler
	AnalyzeHandler     *handlers.AnalyzeHandler
	CategoryHandler    *handlers.CategoryHandler
	PredictionHandler  *handlers.PredictionHandler
	DashboardHandler   *handlers.DashboardHandler
	ObservationHandler *handler_analytics.ObservationHandler
}

func NewApplication(ctx context.Context, cfg *config.Config) (*Application, error) {
	logger := log.New(os.Stdout, "LOGGING: ", log.Ldate|log.Ltime)

	if err := cfg.ValidateServer(); err != nil {
		return nil, err
	}
	if err := cfg.ResolveGoogleCredentials(ctx); err != nil {
		return nil, err
	}

	pgDB, err := store.ConnectPGDB(cfg.DatabaseURL)
	if err != nil {
		logger.Println("Error connecting to db")
		return nil, err
	}

	dbConn, err := store.ConnectClickhouse(cfg)
	if err != nil {
		logger.Println("Error connecting to clickhouse")
		return nil, err
	}

	err = store.MigrateFS(pgDB, migrations.FS, "db")
	if err != nil {
		logger.Println("PANIC: Postgresql migration failed, exiting...")
		return nil, err
	}

	err = store.MigrateClickhouse(cfg)
	if err != nil {
		logger.Println("PANIC: Clickhouse migration failed, exiting...")
		return nil, err
	}

	logger.Println("Databases migrated...")

	// All pretrained artifacts load once here; requests share the bundle
	// read-only.
	bundle, err := ml.LoadBundle(cfg.ModelDir)
	if err != nil {
		logger.Println("Error loading model bundle from", cfg.ModelDir)
		return nil, err
	}

	generator, err := llm.NewVertexGenerator(ctx, cfg)
	if err != nil {
		logger.Println("Error creating suggestion client")
		return nil, err
	}
	suggester := llm.NewSuggester(generator)

	predictionStore := store.NewPostgresPredictionStore(pgDB)
	dashboardStore := store.NewPostgresDashboardStore(pgDB)
	observationStore := analytics.NewClickhouseObservationStore(dbConn)

	healthHandler := handlers.NewHealthHandler(cfg.Env)
	analyzeHandler := handlers.NewAnalyzeHandler(bundle, suggester, predictionStore, logger)
	categoryHandler := handlers.NewCategoryHandler(logger)
	predictionHandler := handlers.NewPredictionHandler(predictionStore, logger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardStore, logger)
	observationHandler := handler_analytics.NewObservationHandler(observationStore, logger)

	middlewareHandler := middlewares.NewMiddlewareHandler(logger, cfg.AllowedOrigins)

	app := &Application{
		Config:             cfg,
		Logger:             logger,
		Bundle:             bundle,
		db:                 pgDB,
		DBConn:             dbConn,
		generator:          generator,
		MiddlewareHandler:  middlewareHandler,
		HealthHandler:      healthHandler,
		AnalyzeHandler:     analyzeHandler,
		CategoryHandler:    categoryHandler,
		PredictionHandler:  predictionHandler,
		DashboardHandler:   dashboardHandler,
		ObservationHandler: observationHandler,
	}

	return app, nil
}

// Close releases the database and LLM connections.
func (a *Application) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.DBConn != nil {
		a.DBConn.Close()
	}
	if a.generator != nil {
		a.generator.Close()
	}
}
