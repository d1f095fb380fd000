// Copyright (c) 2025 The faculty-vote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics exposes election counters over prometheus at
// GET /metrics.
package metrics
