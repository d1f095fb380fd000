// Copyright (c) 2025 The faculty-vote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/facultyvote/backend/auth"
	"github.com/facultyvote/backend/cliparse"
	"github.com/facultyvote/backend/eligibility"
	"github.com/facultyvote/backend/metrics"
	"github.com/facultyvote/backend/middleware"
	"github.com/facultyvote/backend/models"
)

type VoteHandler struct {
	db    *sql.DB
	cfg   cliparse.Config
	rules eligibility.Rules
	m     *metrics.Service
}

func NewVoteHandler(db *sql.DB, cfg cliparse.Config, m *metrics.Service) *VoteHandler {
	return &VoteHandler{db: db, cfg: cfg, rules: eligibility.DefaultRules(), m: m}
}

// VoterStatus handles POST /api/voter-status
// Read-only ledger query: which sub-categories has this matric already
// voted in. Unknown voters get an empty list, not an error.
func (h *VoteHandler) VoterStatus(w http.ResponseWriter, r *http.Request) {
	var req models.VoterStatusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if _, err := h.rules.Check(req.MatricNumber); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, h.rules.Message(err))
		return
	}

	voted, err := votedCategories(h.db, req.MatricNumber)
	if err != nil {
		slog.Error("failed to query ledger", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoterStatusResponse{
		VotedSubCategoryIDs: voted,
	})
}

// Submit handles POST /api/submit
// Records a ballot and burns its categories in one transaction. The
// ledger primary key, not the pre-check, is what makes the guarantee
// hold under concurrent submissions from the same matric.
func (h *VoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.FullName = strings.TrimSpace(req.FullName)
	if req.FullName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "fullName is required")
		return
	}
	if len(req.Choices) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "choices cannot be empty")
		return
	}

	// Re-run eligibility server-side; the client's check counts for nothing.
	result, err := h.rules.Check(req.MatricNumber)
	if err != nil {
		h.m.EligibilityFailures.Inc()
		middleware.ErrorResponse(w, http.StatusBadRequest, h.rules.Message(err))
		return
	}

	categoryIDs := make([]string, 0, len(req.Choices))
	seen := make(map[string]bool, len(req.Choices))
	for i := range req.Choices {
		req.Choices[i].NomineeName = strings.TrimSpace(req.Choices[i].NomineeName)
		c := req.Choices[i]
		if c.CategoryID == "" || c.NomineeName == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "every choice needs a categoryId and nomineeName")
			return
		}
		if seen[c.CategoryID] {
			middleware.ErrorResponse(w, http.StatusBadRequest, "duplicate categoryId in submission: "+c.CategoryID)
			return
		}
		seen[c.CategoryID] = true
		categoryIDs = append(categoryIDs, c.CategoryID)
	}

	status, err := electionStatus(h.db)
	if err != nil {
		slog.Error("failed to query election status", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if status != models.StatusOpen {
		middleware.ErrorResponse(w, http.StatusConflict, "The election is not open for voting")
		return
	}

	// Friendly pre-check. Not the enforcement point; a race past this
	// is caught by the ledger primary key below.
	voted, err := votedCategories(h.db, req.MatricNumber)
	if err != nil {
		slog.Error("failed to query ledger", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if overlap := intersect(voted, categoryIDs); len(overlap) > 0 {
		h.m.DuplicateRejections.Inc()
		middleware.ErrorResponse(w, http.StatusForbidden,
			"This matriculation number has already voted in: "+strings.Join(overlap, ", "))
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

	_, err = tx.Exec(`
		INSERT INTO voter (matric_number, full_name, department_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (matric_number) DO UPDATE SET updated_at = EXCLUDED.updated_at
	`, req.MatricNumber, req.FullName, result.DepartmentID, now)
	if err != nil {
		slog.Error("failed to upsert voter", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit vote")
		return
	}

	for _, categoryID := range categoryIDs {
		_, err = tx.Exec(`
			INSERT INTO voter_category (matric_number, category_id, voted_at)
			VALUES ($1, $2, $3)
		`, req.MatricNumber, categoryID, now)
		if err != nil {
			if isUniqueViolation(err) {
				h.m.DuplicateRejections.Inc()
				middleware.ErrorResponse(w, http.StatusForbidden,
					"This matriculation number has already voted in: "+categoryID)
				return
			}
			slog.Error("failed to insert ledger row", "error", err, "category", categoryID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit vote")
			return
		}
	}

	voteID := auth.NewID()
	_, err = tx.Exec(`
		INSERT INTO vote (id, matric_number, main_category, cast_at)
		VALUES ($1, $2, $3, $4)
	`, voteID, req.MatricNumber, req.MainCategory, now)
	if err != nil {
		slog.Error("failed to insert vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit vote")
		return
	}

	for _, c := range req.Choices {
		_, err = tx.Exec(`
			INSERT INTO vote_choice (vote_id, category_id, nominee_name)
			VALUES ($1, $2, $3)
		`, voteID, c.CategoryID, c.NomineeName)
		if err != nil {
			slog.Error("failed to insert choice", "error", err, "category", c.CategoryID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit vote")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			h.m.DuplicateRejections.Inc()
			middleware.ErrorResponse(w, http.StatusForbidden, "This matriculation number has already voted")
			return
		}
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit vote")
		return
	}

	h.m.VotesAccepted.Inc()

	voted, err = votedCategories(h.db, req.MatricNumber)
	if err != nil {
		// The vote is committed; fall back to what we know was written.
		slog.Warn("failed to re-query ledger after commit", "error", err)
		voted = categoryIDs
	}

	slog.Info("vote recorded", "vote_id", voteID, "categories", len(categoryIDs), "department", result.DepartmentID)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitVoteResponse{
		Success:             true,
		Message:             "Your vote has been successfully recorded. Thank you for participating!",
		VotedSubCategoryIDs: voted,
	})
}

// votedCategories reads the ledger for one identity.
func votedCategories(db *sql.DB, matric string) ([]string, error) {
	rows, err := db.Query(`
		SELECT category_id FROM voter_category WHERE matric_number = $1
	`, matric)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	voted := []string{}
	for rows.Next() {
		var categoryID string
		if err := rows.Scan(&categoryID); err != nil {
			return nil, err
		}
		voted = append(voted, categoryID)
	}
	return voted, rows.Err()
}

func intersect(a, b []string) []string {
	inA := make(map[string]bool, len(a))
	for _, s := range a {
		inA[s] = true
	}
	var out []string
	for _, s := range b {
		if inA[s] {
			out = append(out, s)
		}
	}
	return out
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
