package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kennethenow1/Connect-Four-Game/internal/config"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret")
	require.NoError(t, err)
	assert.NotEqual(t, "Sup3rSecret", hash)

	assert.True(t, CheckPasswordHash("Sup3rSecret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestValidatePasswordStrength(t *testing.T) {
	assert.NoError(t, ValidatePasswordStrength("Abcdefg1"))

	assert.Error(t, ValidatePasswordStrength("short1A"))
	assert.Error(t, ValidatePasswordStrength("alllowercase1"))
	assert.Error(t, ValidatePasswordStrength("ALLUPPERCASE1"))
	assert.Error(t, ValidatePasswordStrength("NoDigitsHere"))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	config.AppConfig = &config.Config{
		JWTSecret:         "test-secret",
		AccessTokenTTLMin: 5,
	}

	token, err := GenerateAccessToken(42, "casey")
	require.NoError(t, err)

	claims, err := ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "casey", claims.Username)

	_, err = ValidateAccessToken(token + "tampered")
	assert.Error(t, err)

	config.AppConfig.JWTSecret = "rotated"
	_, err = ValidateAccessToken(token)
	assert.Error(t, err)
}
