package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bastion/internal/domain/entity"
	domainerrors "bastion/internal/domain/errors"
	"bastion/internal/domain/repository"
	mockRepo "bastion/internal/mocks/repository"
	mockSvc "bastion/internal/mocks/service"
	"bastion/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixture struct {
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
	service   usecase.UserUsecase
}

func createTestUserService(t *testing.T) *userServiceFixture {
	t.Helper()

	fx := &userServiceFixture{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
	}

	fx.service = NewUserService(UserServiceParams{
		TxManager: fx.txManager,
		UserRepo:  fx.userRepo,
		Hasher:    fx.hasher,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return fx
}

func TestUserService_GetProfile_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice", Email: "alice@example.com"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	got, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateProfile_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice", Bio: "old bio"}
	newUsername := "alice-renamed"
	newBio := "new bio"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockUserRepo.EXPECT().ExistsByEmailOrUsername(ctx, "", newUsername).Return(false, nil)
			mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, userID, usecase.UpdateProfileInput{
		Username: &newUsername,
		Bio:      &newBio,
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, newUsername, updated.Username)
	assert.Equal(t, newBio, updated.Bio)
}

func TestUserService_UpdateProfile_UsernameTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice"}
	newUsername := "taken"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockUserRepo.EXPECT().ExistsByEmailOrUsername(ctx, "", newUsername).Return(true, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrUserAlreadyExists)

	updated, err := fx.service.UpdateProfile(ctx, userID, usecase.UpdateProfileInput{Username: &newUsername})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_UpdateProfile_SameUsernameSkipsCheck(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice"}
	sameUsername := "alice"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, userID, usecase.UpdateProfileInput{Username: &sameUsername})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "alice", updated.Username)
}

func TestUserService_ChangePassword_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, PasswordHash: "old-hash"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.hasher.EXPECT().Check("current-pass", "old-hash").Return(true)
	fx.hasher.EXPECT().ValidateStrength("NewS3cret!").Return(nil)
	fx.hasher.EXPECT().Hash("NewS3cret!").Return("new-hash", nil)
	fx.userRepo.EXPECT().UpdatePassword(ctx, userID, "new-hash").Return(nil)

	err := fx.service.ChangePassword(ctx, userID, usecase.ChangePasswordInput{
		CurrentPassword: "current-pass",
		NewPassword:     "NewS3cret!",
	})

	require.NoError(t, err)
}

func TestUserService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, PasswordHash: "old-hash"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "old-hash").Return(false)

	err := fx.service.ChangePassword(ctx, userID, usecase.ChangePasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "NewS3cret!",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_ChangePassword_WeakNewPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, PasswordHash: "old-hash"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.hasher.EXPECT().Check("current-pass", "old-hash").Return(true)
	fx.hasher.EXPECT().ValidateStrength("weak").Return(assert.AnError)

	err := fx.service.ChangePassword(ctx, userID, usecase.ChangePasswordInput{
		CurrentPassword: "current-pass",
		NewPassword:     "weak",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestUserService_DeleteAccount_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()

	fx.userRepo.EXPECT().SoftDelete(ctx, userID).Return(nil)

	err := fx.service.DeleteAccount(ctx, userID)

	require.NoError(t, err)
}

func TestUserService_DeleteAccount_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()

	fx.userRepo.EXPECT().SoftDelete(ctx, userID).Return(repository.ErrUserNotFound)

	err := fx.service.DeleteAccount(ctx, userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ListUsers_ClampsPagination(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	users := []*entity.User{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.userRepo.EXPECT().List(ctx, 0, defaultPerPage).Return(users, int64(2), nil)

	output, err := fx.service.ListUsers(ctx, usecase.ListUsersInput{Page: 0, PerPage: 0})

	require.NoError(t, err)
	assert.Len(t, output.Users, 2)
	assert.Equal(t, int64(2), output.Total)
}

func TestUserService_ListUsers_CapsPerPage(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().List(ctx, maxPerPage, maxPerPage).Return([]*entity.User{}, int64(0), nil)

	output, err := fx.service.ListUsers(ctx, usecase.ListUsersInput{Page: 2, PerPage: 500})

	require.NoError(t, err)
	assert.Empty(t, output.Users)
}
