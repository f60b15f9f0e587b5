package impl

import (
	"context"
	"log/slog"

	deliverycontext "authcore/internal/delivery/context"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/repository"
	"authcore/internal/domain/service"
	"authcore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authenticationService implements the AuthenticationUsecase interface.
type authenticationService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	signer      service.TokenSigner
	logger      *slog.Logger
}

// AuthenticationServiceParams holds dependencies for the authentication service, injected by Fx.
type AuthenticationServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Signer      service.TokenSigner
	Logger      *slog.Logger
}

// NewAuthenticationService is the constructor for authenticationService.
func NewAuthenticationService(params AuthenticationServiceParams) usecase.AuthenticationUsecase {
	return &authenticationService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		signer:      params.Signer,
		logger:      params.Logger,
	}
}

func (srv *authenticationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate checks the credentials and issues a new session token.
// Steps run strictly in order: lookup, compare, sign, persist.
func (srv *authenticationService) Authenticate(ctx context.Context, input usecase.AuthenticateInput) (usecase.Outcome[string], error) {
	srv.log(ctx).Debug("Starting authentication", slog.String("email", input.Email))

	// 1. Unknown email and wrong password deny the same way.
	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		srv.log(ctx).Warn("Authentication denied", slog.String("email", input.Email))

		return usecase.Denied[string](domainerrors.ErrInvalidCredentials), nil
	}
	if err != nil {
		return usecase.Outcome[string]{}, errors.Wrap(err, "failed to look up account by email")
	}

	if err := ctx.Err(); err != nil {
		return usecase.Outcome[string]{}, errors.Wrap(err, "authentication cancelled")
	}

	// 2. Check password.
	matches, err := srv.hasher.Compare(input.Password, account.PasswordHash)
	if err != nil {
		return usecase.Outcome[string]{}, errors.Wrap(err, "failed to compare password hash")
	}
	if !matches {
		srv.log(ctx).Warn("Authentication denied", slog.String("email", input.Email))

		return usecase.Denied[string](domainerrors.ErrInvalidCredentials), nil
	}

	// 3. Issue token.
	token, err := srv.signer.Sign(account.ID)
	if err != nil {
		return usecase.Outcome[string]{}, errors.Wrap(err, "failed to sign access token")
	}

	// 4. Store it; this overwrites any previous session of the account.
	if err := srv.accountRepo.SetAccessToken(ctx, account.ID, token); err != nil {
		return usecase.Outcome[string]{}, errors.Wrap(err, "failed to store access token")
	}

	srv.log(ctx).Debug("Account authenticated", slog.Any("accountID", account.ID))

	return usecase.Granted(token), nil
}
