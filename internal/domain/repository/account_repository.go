// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"authcore/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrAccountNotFound is returned when no account matches a lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrEmailAlreadyExists is returned by Create when the store's unique constraint on email rejects the insert.
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByToken retrieves the account whose current access token equals token.
	// A non-zero role restricts the match to accounts carrying that role.
	FindByToken(ctx context.Context, token string, role entity.Role) (*entity.Account, error)

	// Create persists a new account and fills in its ID and timestamps.
	// It returns ErrEmailAlreadyExists when the email is already taken.
	Create(ctx context.Context, account *entity.Account) error

	// SetAccessToken replaces the stored access token of the account.
	SetAccessToken(ctx context.Context, accountID uuid.UUID, token string) error
}
