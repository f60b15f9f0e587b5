package usecase

import (
	"context"

	"authcore/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Credentials returns the email/password pair the new account signs in with.
func (in RegisterInput) Credentials() entity.Credentials {
	return entity.Credentials{Email: in.Email, Password: in.Password}
}

// AuthenticateInput defines the data required for an account to log in.
type AuthenticateInput = entity.Credentials

// RegistrationUsecase creates accounts.
type RegistrationUsecase interface {
	// Register creates a new account. An email already in use is a denial, not an error.
	Register(ctx context.Context, input RegisterInput) (Outcome[*entity.Account], error)
}

// AuthenticationUsecase exchanges credentials for a session token.
type AuthenticationUsecase interface {
	// Authenticate returns a fresh access token. Unknown email and wrong password are the same denial.
	Authenticate(ctx context.Context, input AuthenticateInput) (Outcome[string], error)
}

// SessionUsecase resolves session tokens back to accounts.
type SessionUsecase interface {
	// Resolve returns the account bound to token. A non-zero role narrows the lookup to that role.
	Resolve(ctx context.Context, token string, role entity.Role) (Outcome[*entity.Account], error)
}
