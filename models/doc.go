// Copyright (c) 2025 The faculty-vote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response, and domain types shared
across handlers.

Wire fields are camelCase to match the frontend contract. Identity
fields (matric numbers) are never serialized on domain types.
*/
package models
