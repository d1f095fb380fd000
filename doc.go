// Copyright (c) 2025 The faculty-vote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the faculty-vote API server.

faculty-vote is the election backend for a university engineering
faculty: students validated by their matriculation number cast votes in
award sub-categories exactly once per category, nominate candidates for
review, and admins read tallies and open or close the election.

# Starting the Server

The server reads configuration from a .env file, environment variables,
or CLI flags:

	DATABASE_URL=postgres://... ADMIN_PASSWORD=... go run main.go

Or with flags:

	go run main.go -p 4000 -d "postgres://..." -admin-password "..."

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string
  - ADMIN_PASSWORD (-admin-password): shared admin secret

Optional settings:

  - PORT (-p): Server port (default: 4000)
  - ALLOWED_ORIGINS (-origins): comma-separated CORS allow-list

# Architecture

The server uses a handler-based architecture with dependency injection:

  - eligibility: matriculation-number rule table and checker
  - handlers: HTTP request handlers (validate, voting, results,
    nominations, election control, admin resets)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Admin-secret comparison and ID generation
  - metrics: prometheus counters
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
