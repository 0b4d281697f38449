package services

import (
	"context"
	"testing"

	"github.com/neurosensemed-IA/Med-FlashCards/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(storage.NewMemory(), "test-secret")
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "Dr. David", "david@medflash.ai", "drdavid", "hunter2"))

	status, token, err := svc.Login(ctx, "drdavid", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, AuthAuthenticated, status)
	require.NotEmpty(t, token)

	username, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "drdavid", username)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := NewAuthService(storage.NewMemory(), "test-secret")
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "Dr. David", "david@medflash.ai", "drdavid", "hunter2"))

	err := svc.Register(ctx, "Impostor", "other@medflash.ai", "drdavid", "different")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLogin_TriState(t *testing.T) {
	svc := NewAuthService(storage.NewMemory(), "test-secret")
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "Dr. David", "david@medflash.ai", "drdavid", "hunter2"))

	tests := []struct {
		name     string
		username string
		password string
		want     AuthStatus
	}{
		{"wrong password", "drdavid", "wrong", AuthRejected},
		{"unknown user", "nobody", "hunter2", AuthRejected},
		{"missing credentials", "", "", AuthPending},
		{"missing password", "drdavid", "", AuthPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, token, err := svc.Login(ctx, tt.username, tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
			assert.Empty(t, token)
		})
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := NewAuthService(storage.NewMemory(), "test-secret")

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	signer := NewAuthService(storage.NewMemory(), "secret-a")
	verifier := NewAuthService(storage.NewMemory(), "secret-b")

	token, err := signer.GenerateToken("drdavid")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}
