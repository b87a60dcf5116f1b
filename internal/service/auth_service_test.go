package service

import (
	"testing"

	"go-stocktrack/internal/model"
	"go-stocktrack/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func activeUser(t *testing.T, password string) *model.User {
	t.Helper()
	user := &model.User{
		Email:    "staff@example.com",
		FullName: "Staff Member",
		Role:     &model.Role{ID: 3, Code: model.RoleStaff},
		IsActive: true,
	}
	user.ID = uuid.New()
	require.NoError(t, user.SetPassword(password))
	return user
}

func TestLogin_RotatesTokenVersion(t *testing.T) {
	user := activeUser(t, "hunter2hunter2")
	user.TokenVersion = "previous-session"
	repo := &mockUserRepo{
		FindByEmailFunc: func(email string) (*model.User, error) {
			return user, nil
		},
	}
	svc := NewAuthService(repo, zap.NewNop())

	resp, err := svc.Login(user.Email, "hunter2hunter2")

	require.NoError(t, err)
	require.Len(t, repo.updated, 1)
	assert.NotEqual(t, "previous-session", user.TokenVersion)
	assert.NotNil(t, user.LastSeenAt)

	claims, err := jwt.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.TokenVersion, claims.TokenVersion)
	assert.Equal(t, model.RoleStaff, claims.RoleCode)
}

func TestLogin_WrongPassword(t *testing.T) {
	user := activeUser(t, "hunter2hunter2")
	repo := &mockUserRepo{
		FindByEmailFunc: func(email string) (*model.User, error) {
			return user, nil
		},
	}
	svc := NewAuthService(repo, zap.NewNop())

	_, err := svc.Login(user.Email, "wrong-password")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, repo.updated)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, zap.NewNop())

	_, err := svc.Login("nobody@example.com", "whatever")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	user := activeUser(t, "hunter2hunter2")
	user.IsActive = false
	repo := &mockUserRepo{
		FindByEmailFunc: func(email string) (*model.User, error) {
			return user, nil
		},
	}
	svc := NewAuthService(repo, zap.NewNop())

	_, err := svc.Login(user.Email, "hunter2hunter2")

	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestValidateToken_SupersededSession(t *testing.T) {
	user := activeUser(t, "hunter2hunter2")
	user.TokenVersion = "current-session"
	repo := &mockUserRepo{
		FindByIDFunc: func(id uuid.UUID) (*model.User, error) {
			return user, nil
		},
	}
	svc := NewAuthService(repo, zap.NewNop())

	// A token minted for an older session no longer validates.
	stale, err := jwt.GenerateToken(user.ID, user.Email, user.FullName, user.RoleCode(), "old-session")
	require.NoError(t, err)

	_, err = svc.ValidateToken(stale)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	current, err := jwt.GenerateToken(user.ID, user.Email, user.FullName, user.RoleCode(), "current-session")
	require.NoError(t, err)

	resp, err := svc.ValidateToken(current)
	require.NoError(t, err)
	assert.Equal(t, user.Email, resp.User.Email)
}
