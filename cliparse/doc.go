// Copyright (c) 2025 The faculty-vote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package cliparse parses server configuration from CLI flags with
// environment-variable fallback. The admin password and database URL
// are required; everything else has a default.
package cliparse
