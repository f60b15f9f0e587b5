// Package handler contains the HTTP handlers for the application.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "authcore/internal/delivery/context"
	"authcore/internal/delivery/http/controller"
	"authcore/internal/delivery/http/response"
	"authcore/internal/domain/entity"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/usecase"
	"authcore/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountView is the public shape of an account.
type AccountView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// TokenView carries an issued access token.
type TokenView struct {
	AccessToken string `json:"accessToken"`
}

type AccountHandlerParams struct {
	fx.In

	Registration   usecase.RegistrationUsecase
	Authentication usecase.AuthenticationUsecase
	Logger         *slog.Logger
}

// AccountHandler holds the controllers for the account endpoints.
type AccountHandler struct {
	registration     usecase.RegistrationUsecase
	authentication   usecase.AuthenticationUsecase
	signUpValidation validation.Validator
	loginValidation  validation.Validator
	logger           *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		registration:     params.Registration,
		authentication:   params.Authentication,
		signUpValidation: validation.SignUpValidation(),
		loginValidation:  validation.LoginValidation(),
		logger:           params.Logger,
	}
}

// SignUp registers a new account and signs it in.
func (h *AccountHandler) SignUp(ctx context.Context, req *controller.Request) *controller.Response {
	if err := h.signUpValidation.Validate(req.Body); err != nil {
		return controller.BadRequest(err)
	}

	input := usecase.RegisterInput{
		Name:     stringField(req.Body, validation.FieldName),
		Email:    stringField(req.Body, validation.FieldEmail),
		Password: stringField(req.Body, validation.FieldPassword),
	}

	registered, err := h.registration.Register(ctx, input)
	if err != nil {
		return controller.ServerError(err)
	}
	if registered.Denied() {
		return controller.Forbidden(registered.Reason())
	}

	authenticated, err := h.authentication.Authenticate(ctx, input.Credentials())
	if err != nil {
		return controller.ServerError(err)
	}
	if authenticated.Denied() {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).WarnContext(ctx, "Fresh account could not sign in",
			slog.String("account_id", registered.Value().ID.String()),
		)

		return controller.Forbidden(authenticated.Reason())
	}

	return controller.OK(TokenView{AccessToken: authenticated.Value()})
}

// Login exchanges credentials for an access token.
func (h *AccountHandler) Login(ctx context.Context, req *controller.Request) *controller.Response {
	if err := h.loginValidation.Validate(req.Body); err != nil {
		return controller.BadRequest(err)
	}

	authenticated, err := h.authentication.Authenticate(ctx, usecase.AuthenticateInput{
		Email:    stringField(req.Body, validation.FieldEmail),
		Password: stringField(req.Body, validation.FieldPassword),
	})
	if err != nil {
		return controller.ServerError(err)
	}
	if authenticated.Denied() {
		return controller.Forbidden(authenticated.Reason())
	}

	return controller.OK(TokenView{AccessToken: authenticated.Value()})
}

// CurrentAccount returns the account resolved by the auth middleware.
func (h *AccountHandler) CurrentAccount(_ context.Context, req *controller.Request) *controller.Response {
	if req.Account == nil {
		return controller.Forbidden(domainerrors.ErrAccessDenied)
	}

	return controller.OK(newAccountView(req.Account))
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

func newAccountView(account *entity.Account) AccountView {
	return AccountView{
		ID:        account.ID,
		Name:      account.Name,
		Email:     account.Email,
		Role:      account.Role.String(),
		CreatedAt: account.CreatedAt,
	}
}

// stringField reads a validated body field. Non-string JSON values keep their printed form.
func stringField(body map[string]any, field string) string {
	switch v := body[field].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
