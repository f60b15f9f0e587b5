// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "authcore/internal/delivery/context"
	"authcore/internal/domain/entity"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/repository"
	"authcore/internal/domain/service"
	"authcore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// registrationService implements the RegistrationUsecase interface.
type registrationService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// RegistrationServiceParams holds dependencies for the registration service, injected by Fx.
type RegistrationServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewRegistrationService is the constructor for registrationService. It receives all dependencies as interfaces.
func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	return &registrationService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *registrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the uniqueness check, password hashing and account persistence, in that order.
func (srv *registrationService) Register(ctx context.Context, input usecase.RegisterInput) (usecase.Outcome[*entity.Account], error) {
	srv.log(ctx).Debug("Starting registration", slog.String("email", input.Email))

	existing, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, repository.ErrAccountNotFound) {
		return usecase.Outcome[*entity.Account]{}, errors.Wrap(err, "failed to look up account by email")
	}
	if existing != nil {
		srv.log(ctx).Info("Registration denied, email in use", slog.String("email", input.Email))

		return usecase.Denied[*entity.Account](domainerrors.ErrEmailInUse), nil
	}

	// bcrypt does not observe ctx, so check before spending the hash cost.
	if err := ctx.Err(); err != nil {
		return usecase.Outcome[*entity.Account]{}, errors.Wrap(err, "registration cancelled")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return usecase.Outcome[*entity.Account]{}, errors.Wrap(err, "failed to hash password during registration")
	}

	account := &entity.Account{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		// A concurrent registration won the race between our lookup and this insert.
		if errors.Is(err, repository.ErrEmailAlreadyExists) {
			srv.log(ctx).Info("Registration denied by unique constraint", slog.String("email", input.Email))

			return usecase.Denied[*entity.Account](domainerrors.ErrEmailInUse), nil
		}

		return usecase.Outcome[*entity.Account]{}, errors.Wrap(err, "failed to create account during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", account.ID))

	return usecase.Granted(account), nil
}
