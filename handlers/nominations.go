// Copyright (c) 2025 The faculty-vote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/facultyvote/backend/auth"
	"github.com/facultyvote/backend/cliparse"
	"github.com/facultyvote/backend/metrics"
	"github.com/facultyvote/backend/middleware"
	"github.com/facultyvote/backend/models"
)

type NominationHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	m   *metrics.Service
}

func NewNominationHandler(db *sql.DB, cfg cliparse.Config, m *metrics.Service) *NominationHandler {
	return &NominationHandler{db: db, cfg: cfg, m: m}
}

// Nominate handles POST /api/nominate
// Accepts a batch of nominations and stores them pending review.
// All-or-nothing: one bad entry fails the whole batch.
func (h *NominationHandler) Nominate(w http.ResponseWriter, r *http.Request) {
	var req models.NominateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.Nominations) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Nomination data is missing or invalid.")
		return
	}

	for i := range req.Nominations {
		n := &req.Nominations[i]
		n.FullName = strings.TrimSpace(n.FullName)
		n.PopularName = strings.TrimSpace(n.PopularName)
		if n.FullName == "" || n.Category == "" || n.ImageURL == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest,
				fmt.Sprintf("nomination %d needs fullName, category, and imageUrl", i+1))
			return
		}
	}

	status, err := electionStatus(h.db)
	if err != nil {
		slog.Error("failed to query election status", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if status != models.StatusOpen {
		middleware.ErrorResponse(w, http.StatusConflict, "Nominations are not open at the moment")
		return
	}

	now := time.Now()

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	for _, n := range req.Nominations {
		_, err = tx.Exec(`
			INSERT INTO nomination (id, full_name, popular_name, matric_number, category_id, image_url, description, status, submitted_at)
			VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, NULLIF($7, ''), $8, $9)
		`, auth.NewID(), n.FullName, n.PopularName, n.MatricNumber, n.Category, n.ImageURL, n.Description,
			models.NominationPending, now)
		if err != nil {
			if isUniqueViolation(err) {
				h.m.NominationConflicts.Inc()
				middleware.ErrorResponse(w, http.StatusConflict,
					"A nomination from this matriculation number already exists for "+n.Category)
				return
			}
			slog.Error("failed to insert nomination", "error", err, "category", n.Category)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "A server error occurred while submitting.")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit nominations", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "A server error occurred while submitting.")
		return
	}

	h.m.NominationsReceived.Add(float64(len(req.Nominations)))
	slog.Info("nominations received", "count", len(req.Nominations))

	middleware.JSONResponse(w, http.StatusCreated, models.NominateResponse{
		Success: true,
		Message: "Your nomination(s) have been successfully submitted for review!",
	})
}

// Pending handles POST /api/pending-nominations
func (h *NominationHandler) Pending(w http.ResponseWriter, r *http.Request) {
	var req models.AdminRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := auth.CheckAdminPassword(req.Password, h.cfg.AdminPassword); err != nil {
		middleware.ErrorResponse(w, http.StatusForbidden, "Invalid admin password.")
		return
	}

	rows, err := h.db.Query(`
		SELECT id, full_name, popular_name, category_id, image_url, description, status, submitted_at
		FROM nomination
		WHERE status = $1
		ORDER BY submitted_at DESC
	`, models.NominationPending)
	if err != nil {
		slog.Error("failed to query pending nominations", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error fetching pending nominations.")
		return
	}
	defer rows.Close()

	pending := []models.Nomination{}
	for rows.Next() {
		var n models.Nomination
		if err := rows.Scan(&n.ID, &n.FullName, &n.PopularName, &n.Category, &n.ImageURL,
			&n.Description, &n.Status, &n.SubmittedAt); err != nil {
			slog.Error("failed to scan nomination", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Error fetching pending nominations.")
			return
		}
		pending = append(pending, n)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read nominations", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error fetching pending nominations.")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, pending)
}

// DeleteAll handles POST /api/delete-nominations
func (h *NominationHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	var req models.AdminRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := auth.CheckAdminPassword(req.Password, h.cfg.AdminPassword); err != nil {
		middleware.ErrorResponse(w, http.StatusForbidden, "Invalid admin password.")
		return
	}

	res, err := h.db.Exec(`DELETE FROM nomination`)
	if err != nil {
		slog.Error("failed to delete nominations", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error.")
		return
	}

	deleted, _ := res.RowsAffected()
	slog.Info("nominations deleted", "count", deleted)

	middleware.JSONResponse(w, http.StatusOK, models.ResetResponse{
		Success: true,
		Message: fmt.Sprintf("%d nominations have been deleted.", deleted),
	})
}
