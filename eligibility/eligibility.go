// Copyright (c) 2025 The faculty-vote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package eligibility

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFormat     = errors.New("matriculation number must be exactly 9 digits")
	ErrIneligibleYear    = errors.New("admission year is outside the eligible range")
	ErrWrongFaculty      = errors.New("matriculation number does not belong to this faculty")
	ErrUnknownDepartment = errors.New("unknown department code for this faculty")
	ErrInvalidSequence   = errors.New("student sequence number is outside the accepted range")
)

// Rules describes the matriculation-number scheme for one election.
// Zero value is unusable; start from DefaultRules.
type Rules struct {
	// Admission year, inclusive two-digit bounds (e.g. 16 means 2016).
	MinYear int
	MaxYear int
	// Years inside [MinYear, MaxYear] that are nevertheless ineligible.
	ExcludedYears []int

	// The single accepted two-digit faculty code.
	FacultyCode int

	// Two-digit department code -> department identifier.
	Departments map[int]string

	// Regular student sequence numbers, inclusive.
	MinSequence int
	MaxSequence int
	// Sequence numbers at or above this are direct-entry admissions.
	DirectEntryMin int
}

// Result is the outcome of a successful eligibility check.
type Result struct {
	MatricNumber  string `json:"matricNumber"`
	AdmissionYear int    `json:"admissionYear"`
	DepartmentID  string `json:"departmentId"`
	DirectEntry   bool   `json:"directEntry"`
}

// DefaultRules returns the active rule table: admissions 2016-2024,
// faculty 04, the ten engineering departments, regular sequence 1-180
// and direct entry from 500 up.
func DefaultRules() Rules {
	return Rules{
		MinYear:     16,
		MaxYear:     24,
		FacultyCode: 4,
		Departments: map[int]string{
			1:  "biomedical-engineering",
			2:  "chemical-engineering",
			3:  "civil-engineering",
			4:  "computer-engineering",
			5:  "electrical-engineering",
			6:  "mechanical-engineering",
			7:  "metallurgical-engineering",
			8:  "petroleum-engineering",
			9:  "surveying-geoinformatics",
			10: "systems-engineering",
		},
		MinSequence:    1,
		MaxSequence:    180,
		DirectEntryMin: 500,
	}
}

// Check validates a matriculation number against the rule table and
// resolves its department. Pure and deterministic: no I/O, same verdict
// for the same input every time. Validation fails fast in rule order:
// format, year, faculty, department, sequence.
func (r Rules) Check(matric string) (Result, error) {
	if len(matric) != 9 {
		return Result{}, ErrInvalidFormat
	}
	for _, c := range matric {
		if c < '0' || c > '9' {
			return Result{}, ErrInvalidFormat
		}
	}

	year := twoDigit(matric, 0)
	faculty := twoDigit(matric, 2)
	department := twoDigit(matric, 4)
	sequence := threeDigit(matric, 6)

	if year < r.MinYear || year > r.MaxYear {
		return Result{}, ErrIneligibleYear
	}
	for _, excluded := range r.ExcludedYears {
		if year == excluded {
			return Result{}, ErrIneligibleYear
		}
	}

	if faculty != r.FacultyCode {
		return Result{}, ErrWrongFaculty
	}

	departmentID, ok := r.Departments[department]
	if !ok {
		return Result{}, ErrUnknownDepartment
	}

	regular := sequence >= r.MinSequence && sequence <= r.MaxSequence
	directEntry := r.DirectEntryMin > 0 && sequence >= r.DirectEntryMin
	if !regular && !directEntry {
		return Result{}, ErrInvalidSequence
	}

	return Result{
		MatricNumber:  matric,
		AdmissionYear: year,
		DepartmentID:  departmentID,
		DirectEntry:   directEntry,
	}, nil
}

// Message renders a checker error as user-facing text in terms of the
// active rule table.
func (r Rules) Message(err error) string {
	switch {
	case errors.Is(err, ErrInvalidFormat):
		return "Invalid matriculation number format. It must be 9 digits."
	case errors.Is(err, ErrIneligibleYear):
		return fmt.Sprintf("This platform is for students admitted between 20%02d and 20%02d.", r.MinYear, r.MaxYear)
	case errors.Is(err, ErrWrongFaculty):
		return "This matriculation number does not belong to the Faculty of Engineering."
	case errors.Is(err, ErrUnknownDepartment):
		return "Invalid department code for the Faculty of Engineering."
	case errors.Is(err, ErrInvalidSequence):
		return "Invalid student sequence number."
	}
	return "Matriculation number is not valid for this election."
}

func twoDigit(s string, i int) int {
	return int(s[i]-'0')*10 + int(s[i+1]-'0')
}

func threeDigit(s string, i int) int {
	return int(s[i]-'0')*100 + int(s[i+1]-'0')*10 + int(s[i+2]-'0')
}
