// Copyright (c) 2025 The faculty-vote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package eligibility validates matriculation numbers.

A matriculation number is 9 digits encoding four fields:

	YY FF DD SSS
	│  │  │  └── student sequence number (001-180 regular, 500+ direct entry)
	│  │  └───── department code (01-10)
	│  └──────── faculty code (04 = Engineering)
	└─────────── two-digit admission year

Check runs the rules in order and fails fast on the first violation,
returning one of the sentinel errors. On success it resolves the
department identifier used to route departmental ballots.

The check is pure: it must be re-run server-side on every submission
even when the client already validated, because the server is the only
enforcement point.
*/
package eligibility
