package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/forgestack/atlas-backend/internal/apperr"
	"github.com/forgestack/atlas-backend/internal/auth"
	"github.com/forgestack/atlas-backend/internal/config"
	"github.com/forgestack/atlas-backend/internal/dto"
	"github.com/forgestack/atlas-backend/internal/model"
)

func newTestAuthService(repo *fakeUserRepo) *AuthService {
	return NewAuthService(
		repo,
		auth.NewTokenService("test-secret", time.Hour, 24*time.Hour),
		NewMailer(config.MailConfig{}, zap.NewNop()),
		zap.NewNop(),
	)
}

func seedUser(t *testing.T, email, password string, status model.UserStatus) *model.User {
	t.Helper()
	hash, err := hashPassword(password)
	require.NoError(t, err)
	return &model.User{
		Email:    email,
		Password: hash,
		Role:     model.RoleClient,
		Status:   status,
	}
}

func TestRegisterCreatesPendingClient(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:     "New@Example.com ",
		Password:  "hunter2hunter2",
		FirstName: "New",
		LastName:  "User",
	})
	require.NoError(t, err)

	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, model.RoleClient, user.Role)
	assert.Equal(t, model.StatusPending, user.Status)
	assert.NotEmpty(t, user.Metadata.VerificationTokenHash)
	assert.NotEqual(t, "hunter2hunter2", user.Password)
	assert.False(t, user.ID.IsZero())
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	repo := newFakeUserRepo(seedUser(t, "taken@example.com", "hunter2hunter2", model.StatusActive))
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:     "Taken@Example.COM",
		Password:  "hunter2hunter2",
		FirstName: "Dup",
		LastName:  "User",
	})
	require.Error(t, err)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.CodeConflict, appErr.Code)
	assert.Len(t, repo.users, 1)
}

func TestLoginSuspendedRejectedBeforePasswordCheck(t *testing.T) {
	user := seedUser(t, "suspended@example.com", "correct-password", model.StatusSuspended)
	repo := newFakeUserRepo(user)
	svc := newTestAuthService(repo)

	_, _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "suspended@example.com",
		Password: "correct-password",
	})
	require.Error(t, err)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.CodeUnauthorized, appErr.Code)
	assert.Equal(t, "invalid credentials", appErr.Message)
	// rejected on status alone; the attempt counter never moves
	assert.Equal(t, 0, user.Security.LoginAttempts)
}

func TestLoginUnknownEmailIsVague(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	_, _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})
	require.Error(t, err)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.CodeUnauthorized, appErr.Code)
	assert.Equal(t, "invalid credentials", appErr.Message)
}

func TestLoginFailuresIncrementWithoutLockout(t *testing.T) {
	user := seedUser(t, "admin@example.com", "correct-password", model.StatusActive)
	repo := newFakeUserRepo(user)
	svc := newTestAuthService(repo)

	for i := 0; i < 3; i++ {
		_, _, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email:    "admin@example.com",
			Password: "wrong-password",
		})
		require.Error(t, err)
		appErr, ok := apperr.As(err)
		require.True(t, ok)
		assert.Equal(t, apperr.CodeUnauthorized, appErr.Code)
	}
	assert.Equal(t, 3, user.Security.LoginAttempts)

	// no lockout threshold; the correct password still works and resets
	// the counter
	got, pair, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "correct-password",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, 0, user.Security.LoginAttempts)
	assert.NotNil(t, user.Security.LastLoginAt)
}
