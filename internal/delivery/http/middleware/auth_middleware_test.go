package middleware

import (
	"context"
	"net/http"
	"testing"

	"authcore/config"
	"authcore/internal/delivery/http/controller"
	"authcore/internal/domain/entity"
	domainerrors "authcore/internal/domain/errors"
	mockUsecase "authcore/internal/mocks/usecase"
	"authcore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func tokenRequest(header, token string) *controller.Request {
	h := http.Header{}
	if token != "" {
		h.Set(header, token)
	}

	return &controller.Request{Header: h}
}

func TestAuthMiddleware_Require(t *testing.T) {
	account := &entity.Account{ID: uuid.New(), Role: entity.RoleAdmin}
	boom := errors.New("boom")

	tests := []struct {
		name       string
		token      string
		setup      func(m *mockUsecase.MockSessionUsecase)
		wantStatus int
		wantErr    error
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusForbidden,
			wantErr:    domainerrors.ErrAccessDenied,
		},
		{
			name:  "resolved",
			token: "any_token",
			setup: func(m *mockUsecase.MockSessionUsecase) {
				m.EXPECT().Resolve(mock.Anything, "any_token", entity.RoleAdmin).Return(usecase.Granted(account), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "denied",
			token: "any_token",
			setup: func(m *mockUsecase.MockSessionUsecase) {
				m.EXPECT().Resolve(mock.Anything, "any_token", entity.RoleAdmin).
					Return(usecase.Denied[*entity.Account](domainerrors.ErrAccessDenied), nil)
			},
			wantStatus: http.StatusForbidden,
			wantErr:    domainerrors.ErrAccessDenied,
		},
		{
			name:  "resolver fails",
			token: "any_token",
			setup: func(m *mockUsecase.MockSessionUsecase) {
				m.EXPECT().Resolve(mock.Anything, "any_token", entity.RoleAdmin).Return(usecase.Outcome[*entity.Account]{}, boom)
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    boom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionUC := mockUsecase.NewMockSessionUsecase(t)
			if tt.setup != nil {
				tt.setup(sessionUC)
			}
			m := NewAuthMiddleware(sessionUC, &config.Config{})

			res := m.Require(entity.RoleAdmin).Handle(context.Background(), tokenRequest(config.DefaultTokenHeader, tt.token))

			assert.Equal(t, tt.wantStatus, res.StatusCode)
			if tt.wantErr != nil {
				assert.ErrorIs(t, res.Err, tt.wantErr)
			} else {
				assert.Same(t, account, res.Body)
			}
			if tt.token == "" {
				sessionUC.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestAuthMiddleware_CustomHeader(t *testing.T) {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	cfg := &config.Config{Auth: &config.AuthConfig{TokenHeader: "X-Session"}}
	m := NewAuthMiddleware(sessionUC, cfg)

	sessionUC.EXPECT().Resolve(mock.Anything, "any_token", entity.RoleNone).
		Return(usecase.Granted(&entity.Account{ID: uuid.New()}), nil)

	res := m.Require(entity.RoleNone).Handle(context.Background(), tokenRequest("X-Session", "any_token"))
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res = m.Require(entity.RoleNone).Handle(context.Background(), tokenRequest(config.DefaultTokenHeader, "any_token"))
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
