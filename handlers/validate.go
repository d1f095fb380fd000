// Copyright (c) 2025 The faculty-vote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/facultyvote/backend/eligibility"
	"github.com/facultyvote/backend/metrics"
	"github.com/facultyvote/backend/middleware"
	"github.com/facultyvote/backend/models"
)

type ValidateHandler struct {
	rules eligibility.Rules
	m     *metrics.Service
}

func NewValidateHandler(m *metrics.Service) *ValidateHandler {
	return &ValidateHandler{rules: eligibility.DefaultRules(), m: m}
}

// Validate handles POST /api/validate
// Runs the eligibility checker only; makes no writes and does not
// consult the ledger, so a valid matric stays valid until it actually
// votes.
func (h *ValidateHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req models.ValidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.JSONResponse(w, http.StatusBadRequest, models.ValidateResponse{
			Valid:   false,
			Message: "Invalid JSON",
		})
		return
	}

	result, err := h.rules.Check(req.MatricNumber)
	if err != nil {
		h.m.EligibilityFailures.Inc()
		middleware.JSONResponse(w, http.StatusBadRequest, models.ValidateResponse{
			Valid:   false,
			Message: h.rules.Message(err),
		})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ValidateResponse{
		Valid:        true,
		Message:      "Validation successful. You can proceed to vote.",
		DepartmentID: result.DepartmentID,
	})
}
