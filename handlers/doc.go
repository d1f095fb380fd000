// Copyright (c) 2025 The faculty-vote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP request handlers.

# Handler Groups

  - ValidateHandler: matric-number eligibility check (no writes)
  - VoteHandler: ledger queries and ballot submission
  - ResultsHandler: admin tally aggregation
  - NominationHandler: public intake + admin review/delete
  - ElectionHandler: open/closed flag read and toggle
  - AdminHandler: category and full election resets

# Duplicate-Vote Enforcement

Submit does a friendly ledger pre-check so a voter who already voted
gets a 403 naming the categories. Enforcement, however, is the
voter_category primary key inside the submission transaction: two
racing submissions for the same (matric, category) both pass the
pre-check, but only one insert commits. The loser rolls back entirely,
so no orphaned vote rows are possible.

# Admin Routes

All admin routes are gated by a shared secret compared in constant
time. The results route answers 401 on a bad password; the other admin
routes answer 403.
*/
package handlers
