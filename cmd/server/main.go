package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/trendcraft/trendcraft-server/internal/app"
	"github.com/trendcraft/trendcraft-server/internal/config"
	"github.com/trendcraft/trendcraft-server/internal/routes"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	application, err := app.NewApplication(context.Background(), cfg)
	if err != nil {
		log.Fatal("Failed to start application:", err)
	}
	defer application.Close()

	r := routes.SetupRoutes(application)

	server := &http.Server{
		Addr:         cfg.Port,
		Handler:      r,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	application.Logger.Println("Server started on port", cfg.Port)

	err = server.ListenAndServe()
	if err != nil {
		application.Logger.Fatal("Error starting server", err)
	}

}
