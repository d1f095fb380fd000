// Copyright (c) 2025 The faculty-vote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/facultyvote/backend/auth"
	"github.com/facultyvote/backend/cliparse"
	"github.com/facultyvote/backend/middleware"
	"github.com/facultyvote/backend/models"
)

type AdminHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{db: db, cfg: cfg}
}

// ResetCategory handles POST /api/reset-category
// Removes every trace of one sub-category in a single transaction:
// its choices, votes left empty by that, and its ledger rows, so the
// affected voters can vote in the category again.
func (h *AdminHandler) ResetCategory(w http.ResponseWriter, r *http.Request) {
	var req models.ResetCategoryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := auth.CheckAdminPassword(req.Password, h.cfg.AdminPassword); err != nil {
		middleware.ErrorResponse(w, http.StatusForbidden, "Invalid admin password.")
		return
	}

	if req.CategoryID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Category ID is required.")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "A server error occurred while resetting votes.")
		return
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM vote_choice WHERE category_id = $1`, req.CategoryID)
	if err != nil {
		slog.Error("failed to delete choices", "error", err, "category", req.CategoryID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "A server error occurred while resetting votes.")
		return
	}
	deleted, _ := res.RowsAffected()

	// Votes whose only choice was this category are now empty shells.
	_, err = tx.Exec(`
		DELETE FROM vote
		WHERE NOT EXISTS (SELECT 1 FROM vote_choice WHERE vote_id = vote.id)
	`)
	if err != nil {
		slog.Error("failed to delete emptied votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "A server error occurred while resetting votes.")
		return
	}

	_, err = tx.Exec(`DELETE FROM voter_category WHERE category_id = $1`, req.CategoryID)
	if err != nil {
		slog.Error("failed to delete ledger rows", "error", err, "category", req.CategoryID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "A server error occurred while resetting votes.")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit category reset", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "A server error occurred while resetting votes.")
		return
	}

	slog.Info("category reset", "category", req.CategoryID, "choices_deleted", deleted)

	middleware.JSONResponse(w, http.StatusOK, models.ResetResponse{
		Success: true,
		Message: fmt.Sprintf("Successfully reset %d votes for category %s.", deleted, req.CategoryID),
	})
}

// ResetElection handles POST /api/reset-election
// Wipes votes and the voter ledger. Nominations and the election
// status flag survive.
func (h *AdminHandler) ResetElection(w http.ResponseWriter, r *http.Request) {
	var req models.AdminRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := auth.CheckAdminPassword(req.Password, h.cfg.AdminPassword); err != nil {
		middleware.ErrorResponse(w, http.StatusForbidden, "Invalid admin password.")
		return
	}

	_, err := h.db.Exec(`TRUNCATE vote_choice, vote, voter_category, voter`)
	if err != nil {
		slog.Error("failed to reset election", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "A server error occurred while resetting the election.")
		return
	}

	slog.Info("election reset")

	middleware.JSONResponse(w, http.StatusOK, models.ResetResponse{
		Success: true,
		Message: "All votes and voter records have been reset.",
	})
}
