package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) *AuthService {
	return &AuthService{
		Repo:      newTestRepo(t),
		JWTSecret: []byte("test-jwt-secret"),
	}
}

func TestAuthService_Register(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "John Doe", "john@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", user.Name)
	assert.Equal(t, "user", user.Role)
	assert.NotEmpty(t, user.UserID)
	assert.NotEqual(t, "password123", user.PasswordHash)

	_, err = svc.Register(ctx, "John Clone", "john@example.com", "password123")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{name: "empty name", userName: "", email: "a@b.c", password: "secret"},
		{name: "empty email", userName: "user", email: "", password: "secret"},
		{name: "empty password", userName: "user", email: "a@b.c", password: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.userName, tt.email, tt.password)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "John Doe", "john@example.com", "password123")
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "john@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, user.UserID)
	assert.NotEmpty(t, token)

	_, _, err = svc.Login(ctx, "john@example.com", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, _, err = svc.Login(ctx, "ghost@example.com", "password123")
	assert.ErrorIs(t, err, ErrNotFound)
}
