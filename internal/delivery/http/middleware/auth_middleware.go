package middleware

import (
	"context"
	"strings"

	"authcore/config"
	"authcore/internal/delivery/http/controller"
	"authcore/internal/domain/entity"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/usecase"
)

// AuthMiddleware turns the access token header into the account that owns it.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
	header    string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionUC usecase.SessionUsecase, cfg *config.Config) *AuthMiddleware {
	header := config.DefaultTokenHeader
	if cfg.Auth != nil && strings.TrimSpace(cfg.Auth.TokenHeader) != "" {
		header = cfg.Auth.TokenHeader
	}

	return &AuthMiddleware{sessionUC: sessionUC, header: header}
}

// Require returns the controller guarding routes for role. RoleNone admits any account.
// On success the response body is the resolved *entity.Account.
func (m *AuthMiddleware) Require(role entity.Role) controller.Controller {
	return controller.Func(func(ctx context.Context, req *controller.Request) *controller.Response {
		token := strings.TrimSpace(req.Header.Get(m.header))
		if token == "" {
			return controller.Forbidden(domainerrors.ErrAccessDenied)
		}

		outcome, err := m.sessionUC.Resolve(ctx, token, role)
		if err != nil {
			return controller.ServerError(err)
		}
		if outcome.Denied() {
			return controller.Forbidden(outcome.Reason())
		}

		return controller.OK(outcome.Value())
	})
}
