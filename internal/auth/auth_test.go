package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veloralabs/agencydesk/internal/config"
	"github.com/veloralabs/agencydesk/internal/types"
)

func newTestProvider(secret string) Provider {
	return NewProvider(&config.Configuration{
		Auth: config.AuthConfig{Secret: secret},
	})
}

func TestTokenRoundTrip(t *testing.T) {
	provider := newTestProvider("test-secret")
	ctx := context.Background()

	token, err := provider.GenerateToken(ctx, "user_123", types.RoleStaff)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := provider.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user_123", claims.UserID)
	assert.Equal(t, types.RoleStaff, claims.Role)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	ctx := context.Background()

	token, err := newTestProvider("secret-a").GenerateToken(ctx, "user_123", types.RoleAdmin)
	require.NoError(t, err)

	_, err = newTestProvider("secret-b").ValidateToken(ctx, token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	provider := newTestProvider("test-secret")

	_, err := provider.ValidateToken(context.Background(), "not-a-jwt")
	assert.Error(t, err)
}
