package service

import "github.com/google/uuid"

// TokenSigner issues and decodes opaque session tokens bound to an account id.
type TokenSigner interface {
	// Sign creates a new token bound to accountID.
	Sign(accountID uuid.UUID) (string, error)

	// Verify decodes a token. It never fails on malformed input; ok is false instead.
	Verify(token string) (accountID uuid.UUID, ok bool)
}
