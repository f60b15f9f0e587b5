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
)

// sessionResolver implements the SessionUsecase interface.
type sessionResolver struct {
	accountRepo repository.AccountRepository
	signer      service.TokenSigner
	logger      *slog.Logger
}

// NewSessionResolver is the constructor for sessionResolver.
func NewSessionResolver(accountRepo repository.AccountRepository, signer service.TokenSigner, logger *slog.Logger) usecase.SessionUsecase {
	return &sessionResolver{
		accountRepo: accountRepo,
		signer:      signer,
		logger:      logger,
	}
}

// Resolve maps a session token to its account.
// The signature is checked first so structurally invalid tokens never reach the store.
func (srv *sessionResolver) Resolve(ctx context.Context, token string, role entity.Role) (usecase.Outcome[*entity.Account], error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if _, ok := srv.signer.Verify(token); !ok {
		logger.Debug("Session token rejected by signer")

		return usecase.Denied[*entity.Account](domainerrors.ErrAccessDenied), nil
	}

	account, err := srv.accountRepo.FindByToken(ctx, token, role)
	if errors.Is(err, repository.ErrAccountNotFound) {
		logger.Debug("No account bound to session token", slog.String("role", role.String()))

		return usecase.Denied[*entity.Account](domainerrors.ErrAccessDenied), nil
	}
	if err != nil {
		return usecase.Outcome[*entity.Account]{}, errors.Wrap(err, "failed to load account by token")
	}

	return usecase.Granted(account), nil
}
