// Copyright (c) 2025 The faculty-vote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/facultyvote/backend/cliparse"
	"github.com/facultyvote/backend/handlers"
	"github.com/facultyvote/backend/metrics"
	"github.com/facultyvote/backend/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	m := metrics.NewService()

	// Initialize handlers
	validateHandler := handlers.NewValidateHandler(m)
	voteHandler := handlers.NewVoteHandler(db, cfg, m)
	resultsHandler := handlers.NewResultsHandler(db, cfg)
	nominationHandler := handlers.NewNominationHandler(db, cfg, m)
	electionHandler := handlers.NewElectionHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Metrics
	mux.Handle("GET /metrics", m.Handler())

	// Voter operations (public)
	mux.HandleFunc("POST /api/validate", middleware.WithLogging(validateHandler.Validate))
	mux.HandleFunc("POST /api/voter-status", middleware.WithLogging(voteHandler.VoterStatus))
	mux.HandleFunc("POST /api/submit", middleware.WithLogging(voteHandler.Submit))
	mux.HandleFunc("POST /api/nominate", middleware.WithLogging(nominationHandler.Nominate))
	mux.HandleFunc("GET /api/election-status", middleware.WithLogging(electionHandler.Status))

	// Admin operations (shared-secret gated)
	mux.HandleFunc("POST /api/toggle-election", middleware.WithLogging(electionHandler.Toggle))
	mux.HandleFunc("POST /api/results", middleware.WithLogging(resultsHandler.Results))
	mux.HandleFunc("POST /api/pending-nominations", middleware.WithLogging(nominationHandler.Pending))
	mux.HandleFunc("POST /api/delete-nominations", middleware.WithLogging(nominationHandler.DeleteAll))
	mux.HandleFunc("POST /api/reset-category", middleware.WithLogging(adminHandler.ResetCategory))
	mux.HandleFunc("POST /api/reset-election", middleware.WithLogging(adminHandler.ResetElection))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("faculty-vote API v1"))
	})

	return middleware.CORS(mux, cfg.AllowedOrigins)
}
