package services

import (
	"testing"

	"github.com/animalfamily/animal-family-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	cfg := testConfig()
	cfg.JWTSecret = "test-secret"
	return NewAuthService(db, cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{Email: "a@example.com", Password: "short"})
	assert.Error(t, err)

	resp, err := svc.Register(&dto.RegisterRequest{
		Email:       "a@example.com",
		Password:    "correct horse",
		DisplayName: "Aylin",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "user", resp.User.Role)

	_, err = svc.Register(&dto.RegisterRequest{Email: "a@example.com", Password: "correct horse"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = svc.Login(&dto.LoginRequest{Email: "a@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	logged, err := svc.Login(&dto.LoginRequest{Email: "a@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, logged.User.ID)
}

func TestRefreshRotation(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{Email: "b@example.com", Password: "correct horse"})
	require.NoError(t, err)

	rotated, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, resp.RefreshToken, rotated.RefreshToken)

	// The spent token cannot be replayed.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{Email: "c@example.com", Password: "correct horse"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken}))

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}
