package impl

import (
	"context"
	"io"
	"log/slog"
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

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRegistrationService(accountRepo repository.AccountRepository, hasher *mockSvc.MockPasswordHasher) usecase.RegistrationUsecase {
	return NewRegistrationService(RegistrationServiceParams{
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Logger:      newTestLogger(),
	})
}

var registerInput = usecase.RegisterInput{
	Name:     "any_name",
	Email:    "any_email@mail.com",
	Password: "any_password",
}

func TestRegistrationService_Register_Success(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	srv := newRegistrationService(accountRepo, hasher)

	ctx := context.Background()
	accountID := uuid.New()

	accountRepo.EXPECT().FindByEmail(ctx, registerInput.Email).Return(nil, repository.ErrAccountNotFound).Once()
	hasher.EXPECT().Hash(registerInput.Password).Return("hashed_password", nil).Once()
	accountRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(a *entity.Account) bool {
			return a.Name == registerInput.Name &&
				a.Email == registerInput.Email &&
				a.PasswordHash == "hashed_password"
		})).
		Run(func(_ context.Context, a *entity.Account) { a.ID = accountID }).
		Return(nil).
		Once()

	outcome, err := srv.Register(ctx, registerInput)

	require.NoError(t, err)
	require.False(t, outcome.Denied())
	assert.Equal(t, accountID, outcome.Value().ID)
	assert.Equal(t, "hashed_password", outcome.Value().PasswordHash)
	assert.NotEqual(t, registerInput.Password, outcome.Value().PasswordHash)
}

func TestRegistrationService_Register_EmailInUse(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	srv := newRegistrationService(accountRepo, hasher)

	ctx := context.Background()
	accountRepo.EXPECT().FindByEmail(ctx, registerInput.Email).Return(&entity.Account{ID: uuid.New(), Email: registerInput.Email}, nil)

	outcome, err := srv.Register(ctx, registerInput)

	require.NoError(t, err)
	require.True(t, outcome.Denied())
	assert.Equal(t, domainerrors.ErrEmailInUse, outcome.Reason())
	assert.Nil(t, outcome.Value())
	hasher.AssertNotCalled(t, "Hash", mock.Anything)
	accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegistrationService_Register_LostRaceOnInsert(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	srv := newRegistrationService(accountRepo, hasher)

	ctx := context.Background()
	accountRepo.EXPECT().FindByEmail(ctx, registerInput.Email).Return(nil, repository.ErrAccountNotFound)
	hasher.EXPECT().Hash(registerInput.Password).Return("hashed_password", nil)
	accountRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.Wrap(repository.ErrEmailAlreadyExists, "insert"))

	outcome, err := srv.Register(ctx, registerInput)

	require.NoError(t, err)
	require.True(t, outcome.Denied())
	assert.Equal(t, domainerrors.ErrEmailInUse, outcome.Reason())
}

func TestRegistrationService_Register_Failures(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name  string
		setup func(accountRepo *mockRepo.MockAccountRepository, hasher *mockSvc.MockPasswordHasher)
	}{
		{
			name: "lookup fails",
			setup: func(accountRepo *mockRepo.MockAccountRepository, _ *mockSvc.MockPasswordHasher) {
				accountRepo.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(nil, boom)
			},
		},
		{
			name: "hash fails",
			setup: func(accountRepo *mockRepo.MockAccountRepository, hasher *mockSvc.MockPasswordHasher) {
				accountRepo.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(nil, repository.ErrAccountNotFound)
				hasher.EXPECT().Hash(mock.Anything).Return("", boom)
			},
		},
		{
			name: "create fails",
			setup: func(accountRepo *mockRepo.MockAccountRepository, hasher *mockSvc.MockPasswordHasher) {
				accountRepo.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(nil, repository.ErrAccountNotFound)
				hasher.EXPECT().Hash(mock.Anything).Return("hashed_password", nil)
				accountRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(boom)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accountRepo := mockRepo.NewMockAccountRepository(t)
			hasher := mockSvc.NewMockPasswordHasher(t)
			tt.setup(accountRepo, hasher)

			outcome, err := newRegistrationService(accountRepo, hasher).Register(context.Background(), registerInput)

			require.Error(t, err)
			assert.ErrorIs(t, err, boom)
			assert.False(t, outcome.Denied())
			assert.Nil(t, outcome.Value())
		})
	}
}

func TestRegistrationService_Register_CancelledBeforeHash(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	srv := newRegistrationService(accountRepo, hasher)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	accountRepo.EXPECT().FindByEmail(ctx, registerInput.Email).Return(nil, repository.ErrAccountNotFound)

	_, err := srv.Register(ctx, registerInput)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	hasher.AssertNotCalled(t, "Hash", mock.Anything)
}
