// Package main initializes and starts the FormVault HTTP server,
// setting up configuration, logging, the database connection, the
// repository, service, and handlers.
package main

import (
	"cmp"
	"fmt"

	nethttp "net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"formvault/internal/config"
	"formvault/internal/db"
	"formvault/internal/logger"
	"formvault/internal/repository"
	"formvault/internal/server/handler/http"
	"formvault/internal/service"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Load .env before reading flags and environment configuration.
	_ = godotenv.Load()
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(options.LogLevel); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Initialize PostgreSQL connection and schema.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Wire repository → service → handler.
	submissionRepo := repository.NewPostgresSubmissionRepository(postgresDB)
	submissionService := service.NewSubmissionService(submissionRepo)
	submissionHandler := &http.SubmissionHandler{SubmissionService: submissionService}

	// Build the router with middleware and routes.
	router := http.NewRouter(submissionHandler, zapLogger)

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Addr))
	if err := nethttp.ListenAndServe(options.Addr, router); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
