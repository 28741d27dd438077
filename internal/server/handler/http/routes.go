// Package http provides HTTP routing and middleware configuration
// for the FormVault server.
package http

import (
	"net/http"

	"formvault/internal/middleware"

	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter constructs and returns an HTTP handler that serves the
// FormVault API. It applies JSON content-type enforcement, permissive
// CORS for the browser client, and request logging, and mounts the
// submission endpoints under /api.
//
// Routes:
//
//	GET  /api/submissions   → submissionHandler.List
//	POST /api/submissions   → submissionHandler.Create
func NewRouter(submissionHandler *SubmissionHandler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// The client may run behind a dev tunnel on another origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	// Mount API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/submissions", submissionHandler.List)
		r.Post("/submissions", submissionHandler.Create)
	})

	return r
}
