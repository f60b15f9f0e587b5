// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core entity in the system, representing a registered person who can sign in.
type Account struct {
	ID           uuid.UUID // Assigned by the store on insert.
	Name         string    // The account holder's display name.
	Email        string    // Login identifier, unique within the store.
	PasswordHash string    // Hashed password. The raw password is never stored.
	AccessToken  string    // The current session token. Empty until the first successful login.
	Role         Role      // Optional role tag, passed through untouched.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Credentials is the transient email/password pair presented at registration or login.
// It is never persisted as-is.
type Credentials struct {
	Email    string
	Password string
}
