// Copyright (c) 2025 The faculty-vote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidAdminPassword = errors.New("invalid admin password")
	ErrAdminPasswordUnset   = errors.New("admin password not configured")
)

// CheckAdminPassword compares the provided password against the
// configured admin secret in constant time. Both sides are hashed first
// so the comparison leaks neither content nor length.
func CheckAdminPassword(given, configured string) error {
	if configured == "" {
		return ErrAdminPasswordUnset
	}
	g := sha256.Sum256([]byte(given))
	c := sha256.Sum256([]byte(configured))
	if !hmac.Equal(g[:], c[:]) {
		return ErrInvalidAdminPassword
	}
	return nil
}

// NewID returns a random identifier for votes and nominations.
func NewID() string {
	return uuid.NewString()
}
