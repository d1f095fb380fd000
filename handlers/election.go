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

type ElectionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewElectionHandler(db *sql.DB, cfg cliparse.Config) *ElectionHandler {
	return &ElectionHandler{db: db, cfg: cfg}
}

// Status handles GET /api/election-status
func (h *ElectionHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := electionStatus(h.db)
	if err != nil {
		slog.Error("failed to query election status", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ElectionStatusResponse{Status: status})
}

// Toggle handles POST /api/toggle-election
// Flips open<->closed in a single upsert statement; the first toggle
// ever creates the row as "open".
func (h *ElectionHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req models.AdminRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := auth.CheckAdminPassword(req.Password, h.cfg.AdminPassword); err != nil {
		middleware.ErrorResponse(w, http.StatusForbidden, "Invalid admin password.")
		return
	}

	var newStatus string
	err := h.db.QueryRow(`
		INSERT INTO setting (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE
		SET value = CASE WHEN setting.value = $2 THEN $3 ELSE $2 END
		RETURNING value
	`, models.SettingElectionStatus, models.StatusOpen, models.StatusClosed).Scan(&newStatus)
	if err != nil {
		slog.Error("failed to toggle election status", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	slog.Info("election status toggled", "status", newStatus)

	middleware.JSONResponse(w, http.StatusOK, models.ToggleElectionResponse{
		Success:   true,
		NewStatus: newStatus,
	})
}

// electionStatus reads the open/closed flag; absence means closed.
func electionStatus(db *sql.DB) (string, error) {
	var status string
	err := db.QueryRow(`
		SELECT value FROM setting WHERE key = $1
	`, models.SettingElectionStatus).Scan(&status)
	if err == sql.ErrNoRows {
		return models.StatusClosed, nil
	}
	if err != nil {
		return "", err
	}
	return status, nil
}
