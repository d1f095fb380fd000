// Copyright (c) 2025 The faculty-vote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(Schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Schema is exported so the test fixture can build an identical database.
const Schema = `
-- Voters (identity ledger root)
CREATE TABLE IF NOT EXISTS voter (
    matric_number TEXT PRIMARY KEY,
    full_name TEXT NOT NULL,
    department_id TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

-- Ledger: one row per (identity, sub-category) ever accepted.
-- The primary key is the duplicate-vote guard; inserts race on it
-- instead of on a read-then-write check.
CREATE TABLE IF NOT EXISTS voter_category (
    matric_number TEXT NOT NULL REFERENCES voter(matric_number) ON DELETE CASCADE,
    category_id TEXT NOT NULL,
    voted_at TIMESTAMP NOT NULL DEFAULT NOW(),
    PRIMARY KEY (matric_number, category_id)
);

CREATE INDEX IF NOT EXISTS idx_voter_category_category ON voter_category(category_id);

-- Votes (append-only; deleted only by admin resets)
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    matric_number TEXT NOT NULL,
    main_category TEXT,
    cast_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_vote_matric ON vote(matric_number);

-- Individual (category, nominee) choices within a vote
CREATE TABLE IF NOT EXISTS vote_choice (
    vote_id TEXT NOT NULL REFERENCES vote(id) ON DELETE CASCADE,
    category_id TEXT NOT NULL,
    nominee_name TEXT NOT NULL,
    PRIMARY KEY (vote_id, category_id)
);

CREATE INDEX IF NOT EXISTS idx_vote_choice_category ON vote_choice(category_id);

-- Nominations, pending admin review
CREATE TABLE IF NOT EXISTS nomination (
    id TEXT PRIMARY KEY,
    full_name TEXT NOT NULL,
    popular_name TEXT,
    matric_number TEXT,
    category_id TEXT NOT NULL,
    image_url TEXT NOT NULL,
    description TEXT,
    status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'rejected')),
    submitted_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_nomination_status ON nomination(status);

-- A student may nominate at most once per category
CREATE UNIQUE INDEX IF NOT EXISTS idx_nomination_nominator
    ON nomination(matric_number, category_id)
    WHERE matric_number IS NOT NULL;

-- Singleton key/value settings; only key in use is election_status
CREATE TABLE IF NOT EXISTS setting (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`
