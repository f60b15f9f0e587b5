package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"authcore/internal/delivery/http/controller"
	"authcore/internal/domain/entity"
	domainerrors "authcore/internal/domain/errors"
	mockUsecase "authcore/internal/mocks/usecase"
	"authcore/internal/usecase"
	"authcore/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerMocks struct {
	registration   *mockUsecase.MockRegistrationUsecase
	authentication *mockUsecase.MockAuthenticationUsecase
}

func newTestAccountHandler(t *testing.T) (*AccountHandler, handlerMocks) {
	m := handlerMocks{
		registration:   mockUsecase.NewMockRegistrationUsecase(t),
		authentication: mockUsecase.NewMockAuthenticationUsecase(t),
	}

	h := NewAccountHandler(AccountHandlerParams{
		Registration:   m.registration,
		Authentication: m.authentication,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, m
}

func signUpBody() map[string]any {
	return map[string]any{
		"name":                 "any_name",
		"email":                "any_email@mail.com",
		"password":             "any_password",
		"passwordConfirmation": "any_password",
	}
}

func TestAccountHandler_SignUp_Success(t *testing.T) {
	h, m := newTestAccountHandler(t)
	ctx := context.Background()

	m.registration.EXPECT().
		Register(ctx, usecase.RegisterInput{Name: "any_name", Email: "any_email@mail.com", Password: "any_password"}).
		Return(usecase.Granted(&entity.Account{ID: uuid.New()}), nil).
		Once()
	m.authentication.EXPECT().
		Authenticate(ctx, usecase.AuthenticateInput{Email: "any_email@mail.com", Password: "any_password"}).
		Return(usecase.Granted("any_token"), nil).
		Once()

	res := h.SignUp(ctx, &controller.Request{Body: signUpBody()})

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, TokenView{AccessToken: "any_token"}, res.Body)
}

func TestAccountHandler_SignUp_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(body map[string]any)
		want   error
	}{
		{
			name:   "missing name",
			mutate: func(body map[string]any) { delete(body, "name") },
			want:   &validation.MissingParamError{Field: "name"},
		},
		{
			name:   "missing passwordConfirmation",
			mutate: func(body map[string]any) { delete(body, "passwordConfirmation") },
			want:   &validation.MissingParamError{Field: "passwordConfirmation"},
		},
		{
			name:   "confirmation mismatch",
			mutate: func(body map[string]any) { body["passwordConfirmation"] = "other_password" },
			want:   &validation.InvalidParamError{Field: "passwordConfirmation"},
		},
		{
			name: "password longer than bcrypt accepts",
			mutate: func(body map[string]any) {
				long := strings.Repeat("x", validation.MaxPasswordBytes+1)
				body["password"], body["passwordConfirmation"] = long, long
			},
			want: &validation.InvalidParamError{Field: "password"},
		},
		{
			name:   "malformed email",
			mutate: func(body map[string]any) { body["email"] = "invalid_email" },
			want:   &validation.InvalidParamError{Field: "email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestAccountHandler(t)
			body := signUpBody()
			tt.mutate(body)

			res := h.SignUp(context.Background(), &controller.Request{Body: body})

			assert.Equal(t, http.StatusBadRequest, res.StatusCode)
			assert.Equal(t, tt.want, res.Err)
			m.registration.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
		})
	}
}

func TestAccountHandler_SignUp_EmailInUse(t *testing.T) {
	h, m := newTestAccountHandler(t)

	m.registration.EXPECT().Register(mock.Anything, mock.Anything).
		Return(usecase.Denied[*entity.Account](domainerrors.ErrEmailInUse), nil)

	res := h.SignUp(context.Background(), &controller.Request{Body: signUpBody()})

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Equal(t, domainerrors.ErrEmailInUse, res.Err)
	m.authentication.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
}

func TestAccountHandler_SignUp_ServerErrors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("register fails", func(t *testing.T) {
		h, m := newTestAccountHandler(t)
		m.registration.EXPECT().Register(mock.Anything, mock.Anything).Return(usecase.Outcome[*entity.Account]{}, boom)

		res := h.SignUp(context.Background(), &controller.Request{Body: signUpBody()})

		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
		assert.ErrorIs(t, res.Err, boom)
	})

	t.Run("authenticate fails", func(t *testing.T) {
		h, m := newTestAccountHandler(t)
		m.registration.EXPECT().Register(mock.Anything, mock.Anything).Return(usecase.Granted(&entity.Account{ID: uuid.New()}), nil)
		m.authentication.EXPECT().Authenticate(mock.Anything, mock.Anything).Return(usecase.Outcome[string]{}, boom)

		res := h.SignUp(context.Background(), &controller.Request{Body: signUpBody()})

		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
		assert.Nil(t, res.Body)
	})
}

func TestAccountHandler_Login(t *testing.T) {
	body := map[string]any{"email": "any_email@mail.com", "password": "any_password"}
	input := usecase.AuthenticateInput{Email: "any_email@mail.com", Password: "any_password"}

	t.Run("success", func(t *testing.T) {
		h, m := newTestAccountHandler(t)
		m.authentication.EXPECT().Authenticate(mock.Anything, input).Return(usecase.Granted("any_token"), nil)

		res := h.Login(context.Background(), &controller.Request{Body: body})

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, TokenView{AccessToken: "any_token"}, res.Body)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		h, m := newTestAccountHandler(t)
		m.authentication.EXPECT().Authenticate(mock.Anything, input).
			Return(usecase.Denied[string](domainerrors.ErrInvalidCredentials), nil)

		res := h.Login(context.Background(), &controller.Request{Body: body})

		assert.Equal(t, http.StatusForbidden, res.StatusCode)
		assert.Equal(t, domainerrors.ErrInvalidCredentials, res.Err)
	})

	t.Run("password too long", func(t *testing.T) {
		h, m := newTestAccountHandler(t)
		long := map[string]any{"email": "any_email@mail.com", "password": strings.Repeat("x", validation.MaxPasswordBytes+1)}

		res := h.Login(context.Background(), &controller.Request{Body: long})

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, &validation.InvalidParamError{Field: "password"}, res.Err)
		m.authentication.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
	})

	t.Run("missing password", func(t *testing.T) {
		h, m := newTestAccountHandler(t)

		res := h.Login(context.Background(), &controller.Request{Body: map[string]any{"email": "any_email@mail.com"}})

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, &validation.MissingParamError{Field: "password"}, res.Err)
		m.authentication.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
	})
}

func TestAccountHandler_CurrentAccount(t *testing.T) {
	h, _ := newTestAccountHandler(t)

	t.Run("resolved account", func(t *testing.T) {
		account := &entity.Account{
			ID:           uuid.New(),
			Name:         "any_name",
			Email:        "any_email@mail.com",
			PasswordHash: "hashed_password",
			Role:         entity.RoleAdmin,
			CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		}

		res := h.CurrentAccount(context.Background(), &controller.Request{Account: account})

		require.Equal(t, http.StatusOK, res.StatusCode)
		view, ok := res.Body.(AccountView)
		require.True(t, ok)
		assert.Equal(t, account.ID, view.ID)
		assert.Equal(t, "admin", view.Role)
		assert.Equal(t, account.CreatedAt, view.CreatedAt)
	})

	t.Run("no account", func(t *testing.T) {
		res := h.CurrentAccount(context.Background(), &controller.Request{})

		assert.Equal(t, http.StatusForbidden, res.StatusCode)
	})
}

func TestStringField(t *testing.T) {
	body := map[string]any{"s": "text", "n": float64(42), "nil": nil}

	assert.Equal(t, "text", stringField(body, "s"))
	assert.Equal(t, "42", stringField(body, "n"))
	assert.Equal(t, "", stringField(body, "nil"))
	assert.Equal(t, "", stringField(body, "absent"))
}
