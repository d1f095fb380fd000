// Copyright (c) 2025 The faculty-vote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package auth provides the admin-secret check and ID generation.
//
// Admin authentication is a single shared secret distributed out of
// band; CheckAdminPassword is the only gate on privileged routes and
// compares in constant time.
package auth
