package impl

import (
	"context"
	"testing"

	"authcore/internal/domain/entity"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/repository"
	mockRepo "authcore/internal/mocks/repository"
	mockSvc "authcore/internal/mocks/service"
	"authcore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authenticationMocks struct {
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockSvc.MockPasswordHasher
	signer      *mockSvc.MockTokenSigner
}

func newAuthenticationService(t *testing.T) (usecase.AuthenticationUsecase, authenticationMocks) {
	m := authenticationMocks{
		accountRepo: mockRepo.NewMockAccountRepository(t),
		hasher:      mockSvc.NewMockPasswordHasher(t),
		signer:      mockSvc.NewMockTokenSigner(t),
	}

	srv := NewAuthenticationService(AuthenticationServiceParams{
		AccountRepo: m.accountRepo,
		Hasher:      m.hasher,
		Signer:      m.signer,
		Logger:      newTestLogger(),
	})

	return srv, m
}

var authenticateInput = usecase.AuthenticateInput{
	Email:    "any_email@mail.com",
	Password: "any_password",
}

func TestAuthenticationService_Authenticate_Success(t *testing.T) {
	srv, m := newAuthenticationService(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: authenticateInput.Email, PasswordHash: "hashed_password"}

	m.accountRepo.EXPECT().FindByEmail(ctx, authenticateInput.Email).Return(account, nil).Once()
	m.hasher.EXPECT().Compare(authenticateInput.Password, "hashed_password").Return(true, nil).Once()
	m.signer.EXPECT().Sign(account.ID).Return("any_token", nil).Once()
	m.accountRepo.EXPECT().SetAccessToken(ctx, account.ID, "any_token").Return(nil).Once()

	outcome, err := srv.Authenticate(ctx, authenticateInput)

	require.NoError(t, err)
	require.False(t, outcome.Denied())
	assert.Equal(t, "any_token", outcome.Value())
}

func TestAuthenticationService_Authenticate_UnknownEmail(t *testing.T) {
	srv, m := newAuthenticationService(t)

	m.accountRepo.EXPECT().FindByEmail(mock.Anything, authenticateInput.Email).Return(nil, repository.ErrAccountNotFound)

	outcome, err := srv.Authenticate(context.Background(), authenticateInput)

	require.NoError(t, err)
	require.True(t, outcome.Denied())
	assert.Equal(t, domainerrors.ErrInvalidCredentials, outcome.Reason())
	assert.Empty(t, outcome.Value())
	m.hasher.AssertNotCalled(t, "Compare", mock.Anything, mock.Anything)
	m.signer.AssertNotCalled(t, "Sign", mock.Anything)
	m.accountRepo.AssertNotCalled(t, "SetAccessToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthenticationService_Authenticate_WrongPassword(t *testing.T) {
	srv, m := newAuthenticationService(t)

	account := &entity.Account{ID: uuid.New(), PasswordHash: "hashed_password"}
	m.accountRepo.EXPECT().FindByEmail(mock.Anything, authenticateInput.Email).Return(account, nil)
	m.hasher.EXPECT().Compare(authenticateInput.Password, "hashed_password").Return(false, nil)

	outcome, err := srv.Authenticate(context.Background(), authenticateInput)

	require.NoError(t, err)
	require.True(t, outcome.Denied())
	assert.Equal(t, domainerrors.ErrInvalidCredentials, outcome.Reason())
	m.signer.AssertNotCalled(t, "Sign", mock.Anything)
	m.accountRepo.AssertNotCalled(t, "SetAccessToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthenticationService_Authenticate_Failures(t *testing.T) {
	boom := errors.New("boom")
	account := &entity.Account{ID: uuid.New(), PasswordHash: "hashed_password"}

	tests := []struct {
		name  string
		setup func(m authenticationMocks)
	}{
		{
			name: "lookup fails",
			setup: func(m authenticationMocks) {
				m.accountRepo.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(nil, boom)
			},
		},
		{
			name: "compare fails",
			setup: func(m authenticationMocks) {
				m.accountRepo.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(account, nil)
				m.hasher.EXPECT().Compare(mock.Anything, mock.Anything).Return(false, boom)
			},
		},
		{
			name: "sign fails",
			setup: func(m authenticationMocks) {
				m.accountRepo.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(account, nil)
				m.hasher.EXPECT().Compare(mock.Anything, mock.Anything).Return(true, nil)
				m.signer.EXPECT().Sign(account.ID).Return("", boom)
			},
		},
		{
			name: "store token fails",
			setup: func(m authenticationMocks) {
				m.accountRepo.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(account, nil)
				m.hasher.EXPECT().Compare(mock.Anything, mock.Anything).Return(true, nil)
				m.signer.EXPECT().Sign(account.ID).Return("any_token", nil)
				m.accountRepo.EXPECT().SetAccessToken(mock.Anything, account.ID, "any_token").Return(boom)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newAuthenticationService(t)
			tt.setup(m)

			outcome, err := srv.Authenticate(context.Background(), authenticateInput)

			require.Error(t, err)
			assert.ErrorIs(t, err, boom)
			assert.False(t, outcome.Denied())
			assert.Empty(t, outcome.Value())
		})
	}
}

func TestAuthenticationService_Authenticate_CancelledBeforeCompare(t *testing.T) {
	srv, m := newAuthenticationService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m.accountRepo.EXPECT().FindByEmail(ctx, authenticateInput.Email).Return(&entity.Account{ID: uuid.New()}, nil)

	_, err := srv.Authenticate(ctx, authenticateInput)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	m.hasher.AssertNotCalled(t, "Compare", mock.Anything, mock.Anything)
}
