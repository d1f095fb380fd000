package models

import "time"

// Election status values stored under SettingElectionStatus.
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// SettingElectionStatus is the only setting key in use.
const SettingElectionStatus = "election_status"

// Nomination review states.
const (
	NominationPending  = "pending"
	NominationApproved = "approved"
	NominationRejected = "rejected"
)

// Main ballot categories. Each contains several voteable sub-categories;
// the ledger tracks sub-category ids.
const (
	MainCategoryUndergraduate = "undergraduate"
	MainCategoryGeneral       = "general"
	MainCategoryFinalist      = "finalist"
	MainCategoryDepartmental  = "departmental"
)

// Request types

type ValidateRequest struct {
	MatricNumber string `json:"matricNumber"`
}

type VoterStatusRequest struct {
	MatricNumber string `json:"matricNumber"`
}

type Choice struct {
	CategoryID  string `json:"categoryId"`
	NomineeName string `json:"nomineeName"`
}

type SubmitVoteRequest struct {
	FullName     string   `json:"fullName"`
	MatricNumber string   `json:"matricNumber"`
	MainCategory string   `json:"mainCategory"`
	Choices      []Choice `json:"choices"`
}

type NominationEntry struct {
	FullName     string `json:"fullName"`
	PopularName  string `json:"popularName,omitempty"`
	MatricNumber string `json:"matricNumber,omitempty"`
	Category     string `json:"category"`
	ImageURL     string `json:"imageUrl"`
	Description  string `json:"description,omitempty"`
}

type NominateRequest struct {
	Nominations []NominationEntry `json:"nominations"`
}

// AdminRequest carries the shared admin secret for privileged routes.
type AdminRequest struct {
	Password string `json:"password"`
}

type ResetCategoryRequest struct {
	Password   string `json:"password"`
	CategoryID string `json:"categoryId"`
}

// Response types

type ValidateResponse struct {
	Valid        bool   `json:"valid"`
	Message      string `json:"message"`
	DepartmentID string `json:"departmentId,omitempty"`
}

type VoterStatusResponse struct {
	VotedSubCategoryIDs []string `json:"votedSubCategoryIds"`
}

type SubmitVoteResponse struct {
	Success             bool     `json:"success"`
	Message             string   `json:"message"`
	VotedSubCategoryIDs []string `json:"votedSubCategoryIds"`
}

type NominateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ElectionStatusResponse struct {
	Status string `json:"status"`
}

type ToggleElectionResponse struct {
	Success   bool   `json:"success"`
	NewStatus string `json:"newStatus"`
}

type ResetResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Tally types

type NomineeTally struct {
	Name  string `json:"name"`
	Votes int    `json:"votes"`
}

type CategoryResult struct {
	Category string         `json:"category"`
	Nominees []NomineeTally `json:"nominees"`
}

// Domain types

type Voter struct {
	MatricNumber string    `json:"matricNumber"`
	FullName     string    `json:"fullName"`
	DepartmentID string    `json:"departmentId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Vote struct {
	ID           string    `json:"id"`
	MatricNumber string    `json:"-"` // Never expose in JSON
	MainCategory string    `json:"mainCategory"`
	Choices      []Choice  `json:"choices"`
	CastAt       time.Time `json:"castAt"`
}

type Nomination struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	PopularName  *string   `json:"popularName,omitempty"`
	MatricNumber *string   `json:"-"` // Never expose in JSON
	Category     string    `json:"category"`
	ImageURL     string    `json:"imageUrl"`
	Description  *string   `json:"description,omitempty"`
	Status       string    `json:"status"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
