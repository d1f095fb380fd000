// Copyright (c) 2025 The faculty-vote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/facultyvote/backend/metrics"
	"github.com/facultyvote/backend/models"
	"github.com/facultyvote/backend/testutil"
)

func TestVoterStatus(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVoteHandler(conn, cfg, metrics.NewService())

	testutil.CreateTestVoter(t, conn, "190404050", "Ada Obi", "ug-most-beautiful", "ug-best-dressed")

	tests := []struct {
		name           string
		matric         string
		expectedStatus int
		wantCategories []string
	}{
		{"voter with ledger entries", "190404050", http.StatusOK, []string{"ug-best-dressed", "ug-most-beautiful"}},
		{"unknown voter gets empty list", "200406123", http.StatusOK, []string{}},
		{"malformed matric", "12345", http.StatusBadRequest, nil},
		{"ineligible matric", "150404123", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/voter-status",
				models.VoterStatusRequest{MatricNumber: tt.matric}, nil)
			w := httptest.NewRecorder()

			handler.VoterStatus(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.wantCategories != nil {
				var resp models.VoterStatusResponse
				testutil.AssertJSON(t, w, &resp)
				slices.Sort(resp.VotedSubCategoryIDs)
				if !slices.Equal(resp.VotedSubCategoryIDs, tt.wantCategories) {
					t.Errorf("Expected categories %v, got %v", tt.wantCategories, resp.VotedSubCategoryIDs)
				}
			}
		})
	}
}

// Repeated status queries with no intervening submit must return
// identical results.
func TestVoterStatusIdempotent(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVoteHandler(conn, cfg, metrics.NewService())

	testutil.CreateTestVoter(t, conn, "190404050", "Ada Obi", "ug-x")

	var first models.VoterStatusResponse
	for i := 0; i < 5; i++ {
		req := testutil.MakeRequest("POST", "/api/voter-status",
			models.VoterStatusRequest{MatricNumber: "190404050"}, nil)
		w := httptest.NewRecorder()

		handler.VoterStatus(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.VoterStatusResponse
		testutil.AssertJSON(t, w, &resp)
		if i == 0 {
			first = resp
			continue
		}
		if !slices.Equal(resp.VotedSubCategoryIDs, first.VotedSubCategoryIDs) {
			t.Errorf("Status changed between calls: %v then %v", first.VotedSubCategoryIDs, resp.VotedSubCategoryIDs)
		}
	}
}

func TestSubmit(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVoteHandler(conn, cfg, metrics.NewService())
	testutil.OpenElection(t, conn)

	validReq := func() models.SubmitVoteRequest {
		return models.SubmitVoteRequest{
			FullName:     "A",
			MatricNumber: "190404123",
			MainCategory: models.MainCategoryUndergraduate,
			Choices:      []models.Choice{{CategoryID: "ug-x", NomineeName: "Bob"}},
		}
	}

	tests := []struct {
		name           string
		mutate         func(*models.SubmitVoteRequest)
		expectedStatus int
	}{
		{"missing full name", func(r *models.SubmitVoteRequest) { r.FullName = "  " }, http.StatusBadRequest},
		{"empty choices", func(r *models.SubmitVoteRequest) { r.Choices = nil }, http.StatusBadRequest},
		{"malformed matric", func(r *models.SubmitVoteRequest) { r.MatricNumber = "abc" }, http.StatusBadRequest},
		{"ineligible matric", func(r *models.SubmitVoteRequest) { r.MatricNumber = "150404123" }, http.StatusBadRequest},
		{"blank nominee", func(r *models.SubmitVoteRequest) { r.Choices[0].NomineeName = "   " }, http.StatusBadRequest},
		{"duplicate category in one submission", func(r *models.SubmitVoteRequest) {
			r.Choices = append(r.Choices, models.Choice{CategoryID: "ug-x", NomineeName: "Carol"})
		}, http.StatusBadRequest},
		{"valid submission", func(r *models.SubmitVoteRequest) {}, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validReq()
			tt.mutate(&body)

			req := testutil.MakeRequest("POST", "/api/submit", body, nil)
			w := httptest.NewRecorder()

			handler.Submit(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var resp models.SubmitVoteResponse
				testutil.AssertJSON(t, w, &resp)
				if !resp.Success {
					t.Error("Expected success=true")
				}
				if !slices.Contains(resp.VotedSubCategoryIDs, "ug-x") {
					t.Errorf("Expected votedSubCategoryIds to include ug-x, got %v", resp.VotedSubCategoryIDs)
				}
			}
		})
	}

	// Repeat submission with the same category must be forbidden.
	req := testutil.MakeRequest("POST", "/api/submit", validReq(), nil)
	w := httptest.NewRecorder()
	handler.Submit(w, req)
	testutil.AssertStatus(t, w, http.StatusForbidden)

	// And the ledger must not have double-counted.
	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM voter_category WHERE matric_number = '190404123'`).Scan(&count); err != nil {
		t.Fatalf("Failed to count ledger rows: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 ledger row, got %d", count)
	}
}

func TestSubmitClosedElection(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVoteHandler(conn, cfg, metrics.NewService())

	// No setting row at all: defaults to closed.
	body := models.SubmitVoteRequest{
		FullName:     "Ada Obi",
		MatricNumber: "190404050",
		MainCategory: models.MainCategoryUndergraduate,
		Choices:      []models.Choice{{CategoryID: "ug-x", NomineeName: "Bob"}},
	}
	req := testutil.MakeRequest("POST", "/api/submit", body, nil)
	w := httptest.NewRecorder()

	handler.Submit(w, req)
	testutil.AssertStatus(t, w, http.StatusConflict)

	// Explicitly closed behaves the same.
	testutil.SetElectionStatus(t, conn, models.StatusClosed)
	req = testutil.MakeRequest("POST", "/api/submit", body, nil)
	w = httptest.NewRecorder()

	handler.Submit(w, req)
	testutil.AssertStatus(t, w, http.StatusConflict)

	// Nothing must have been written.
	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM vote`).Scan(&count); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 votes after closed-election submits, got %d", count)
	}
}

func TestSubmitPartialOverlap(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVoteHandler(conn, cfg, metrics.NewService())
	testutil.OpenElection(t, conn)

	// First vote burns ug-x.
	first := models.SubmitVoteRequest{
		FullName:     "Ada Obi",
		MatricNumber: "190404050",
		MainCategory: models.MainCategoryUndergraduate,
		Choices:      []models.Choice{{CategoryID: "ug-x", NomineeName: "Bob"}},
	}
	req := testutil.MakeRequest("POST", "/api/submit", first, nil)
	w := httptest.NewRecorder()
	handler.Submit(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Overlapping second submission is rejected wholesale: no mutation,
	// ug-y stays unvoted.
	second := first
	second.Choices = []models.Choice{
		{CategoryID: "ug-y", NomineeName: "Carol"},
		{CategoryID: "ug-x", NomineeName: "Dan"},
	}
	req = testutil.MakeRequest("POST", "/api/submit", second, nil)
	w = httptest.NewRecorder()
	handler.Submit(w, req)
	testutil.AssertStatus(t, w, http.StatusForbidden)

	voted, err := votedCategories(conn, "190404050")
	if err != nil {
		t.Fatalf("Failed to query ledger: %v", err)
	}
	if !slices.Equal(voted, []string{"ug-x"}) {
		t.Errorf("Expected ledger [ug-x], got %v", voted)
	}

	// A disjoint follow-up in a new category is fine.
	third := first
	third.Choices = []models.Choice{{CategoryID: "ug-y", NomineeName: "Carol"}}
	req = testutil.MakeRequest("POST", "/api/submit", third, nil)
	w = httptest.NewRecorder()
	handler.Submit(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)
}

func TestSubmitTrimsNomineeNames(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVoteHandler(conn, cfg, metrics.NewService())
	testutil.OpenElection(t, conn)

	body := models.SubmitVoteRequest{
		FullName:     "Ada Obi",
		MatricNumber: "190404050",
		MainCategory: models.MainCategoryUndergraduate,
		Choices:      []models.Choice{{CategoryID: "ug-x", NomineeName: "  Bob  "}},
	}
	req := testutil.MakeRequest("POST", "/api/submit", body, nil)
	w := httptest.NewRecorder()
	handler.Submit(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var stored string
	if err := conn.QueryRow(`SELECT nominee_name FROM vote_choice WHERE category_id = 'ug-x'`).Scan(&stored); err != nil {
		t.Fatalf("Failed to read choice: %v", err)
	}
	if stored != "Bob" {
		t.Errorf("Expected trimmed nominee 'Bob', got '%s'", stored)
	}
}
