// Copyright (c) 2025 The faculty-vote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - voter: one row per identity that has ever voted
  - voter_category: the ledger; one row per accepted (identity, sub-category)
  - vote: append-only vote records
  - vote_choice: (category, nominee) pairs within a vote
  - nomination: candidate submissions pending review
  - setting: singleton key/value flags (election open/closed)

# Relationships

	voter 1──* voter_category
	vote  1──* vote_choice

vote.matric_number is deliberately denormalized (no foreign key): votes
survive a voter-ledger reset and carry their own identity snapshot.

# Constraints that carry correctness

  - voter_category primary key (matric_number, category_id): the atomic
    one-vote-per-category guard. Concurrent duplicate submissions both
    reach the insert; exactly one commits.
  - idx_nomination_nominator: at most one nomination per (matric,
    category).
  - setting primary key: at most one election_status row, flipped with a
    single upsert statement.
*/
package db
