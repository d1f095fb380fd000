// Copyright (c) 2025 The faculty-vote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package router defines the route table using Go 1.22+ method routing
// and wraps the mux with CORS.
package router
