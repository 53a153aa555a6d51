package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/Dhia-dev/BACK-URL-TASK/internal/auth"
	"github.com/Dhia-dev/BACK-URL-TASK/internal/store"
	"github.com/Dhia-dev/BACK-URL-TASK/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEmail    = "alice@example.com"
	testPassword = "pw123456"
)

func setupLogin(t *testing.T) (*auth.Service, *auth.TokenIssuer) {
	t.Helper()

	memStore := store.NewMemoryStore()

	_, err := user.NewService(memStore).Register(context.Background(), testEmail, "alice", testPassword)
	require.NoError(t, err)

	issuer := auth.NewTokenIssuer(testSecret, time.Hour)

	return auth.NewService(memStore, issuer), issuer
}

func TestLogin(t *testing.T) {
	t.Run("correct credentials return the user and a valid token", func(t *testing.T) {
		svc, issuer := setupLogin(t)

		u, token, err := svc.Login(context.Background(), testEmail, testPassword)

		require.NoError(t, err)
		assert.Equal(t, testEmail, u.Email)
		require.NotEmpty(t, token)

		claims, err := issuer.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, u.ID, claims.Subject)
		assert.Equal(t, testEmail, claims.Email)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		svc, _ := setupLogin(t)

		u, token, err := svc.Login(context.Background(), testEmail, "wrongpass")

		assert.Nil(t, u)
		assert.Empty(t, token)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email is unauthorized", func(t *testing.T) {
		svc, _ := setupLogin(t)

		u, token, err := svc.Login(context.Background(), "nobody@example.com", testPassword)

		assert.Nil(t, u)
		assert.Empty(t, token)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}
