package service

import (
	"testing"
	"time"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*testEnv, *AuthService) {
	t.Helper()
	env := newTestEnv(t)

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-test-secret-test-secret!"
	cfg.JWT.ExpireTime = time.Hour

	return env, NewAuthService(env.users, cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	_, auth := newAuthService(t)

	reg, err := auth.Register(&RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, model.Student, reg.User.Role)
	assert.Equal(t, 1, reg.User.Level)
	assert.Empty(t, reg.User.Password, "password hash must not serialize")

	login, err := auth.Login(&LoginRequest{Email: "ada@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)

	claims, err := util.ParseJWT(login.Token, "test-secret-test-secret-test-secret!")
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, claims.UserID)
	assert.Equal(t, "Ada", claims.DisplayName())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	_, auth := newAuthService(t)

	_, err := auth.Register(&RegisterRequest{Email: "ada@example.com", Password: "hunter22"})
	require.NoError(t, err)

	_, err = auth.Register(&RegisterRequest{Email: "ada@example.com", Password: "other"})
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	_, auth := newAuthService(t)

	_, err := auth.Register(&RegisterRequest{Email: "ada@example.com", Password: "hunter22"})
	require.NoError(t, err)

	_, err = auth.Login(&LoginRequest{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, err = auth.Login(&LoginRequest{Email: "nobody@example.com", Password: "hunter22"})
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}
