// Copyright (c) 2025 The faculty-vote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/facultyvote/backend/auth"
	"github.com/facultyvote/backend/cliparse"
	"github.com/facultyvote/backend/middleware"
	"github.com/facultyvote/backend/models"
)

type ResultsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{db: db, cfg: cfg}
}

// Results handles POST /api/results
// Full recompute on every call: flatten all choices, count per
// (category, nominee), regroup by category. Vote volume is one
// faculty's electorate, so there is nothing to window or cache.
// Ordering of categories and nominees is unspecified.
func (h *ResultsHandler) Results(w http.ResponseWriter, r *http.Request) {
	var req models.AdminRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := auth.CheckAdminPassword(req.Password, h.cfg.AdminPassword); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized: Invalid password.")
		return
	}

	rows, err := h.db.Query(`
		SELECT category_id, nominee_name, COUNT(*)
		FROM vote_choice
		GROUP BY category_id, nominee_name
	`)
	if err != nil {
		slog.Error("failed to aggregate results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "A server error occurred while fetching results.")
		return
	}
	defer rows.Close()

	byCategory := make(map[string][]models.NomineeTally)
	for rows.Next() {
		var category, nominee string
		var votes int
		if err := rows.Scan(&category, &nominee, &votes); err != nil {
			slog.Error("failed to scan tally row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "A server error occurred while fetching results.")
			return
		}
		byCategory[category] = append(byCategory[category], models.NomineeTally{
			Name:  nominee,
			Votes: votes,
		})
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read tally rows", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "A server error occurred while fetching results.")
		return
	}

	results := make([]models.CategoryResult, 0, len(byCategory))
	for category, nominees := range byCategory {
		results = append(results, models.CategoryResult{
			Category: category,
			Nominees: nominees,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}
