package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arena/pkg/config"
)

func setupJWTConfig(t *testing.T) {
	t.Helper()
	old := config.AppConfig
	config.AppConfig = &config.Config{
		JWT: config.JWTConfig{
			Secret:         "test-secret",
			ExpireDuration: "1h",
		},
	}
	t.Cleanup(func() { config.AppConfig = old })
}

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, CheckPasswordHash("hunter2", hash))
	assert.False(t, CheckPasswordHash("hunter3", hash))
}

func TestTokenRoundtrip(t *testing.T) {
	setupJWTConfig(t)

	token, err := GenerateToken(42, "alice")
	require.NoError(t, err)

	uid, username, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), uid)
	assert.Equal(t, "alice", username)
}

func TestGenerateTokenRejectsBadExpireDuration(t *testing.T) {
	setupJWTConfig(t)
	config.AppConfig.JWT.ExpireDuration = "one day"

	_, err := GenerateToken(42, "alice")
	assert.Error(t, err)
}

func TestParseTokenRejectsBadSignature(t *testing.T) {
	setupJWTConfig(t)

	token, err := GenerateToken(42, "alice")
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "different-secret"
	_, _, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	setupJWTConfig(t)

	_, _, err := ParseToken("not.a.token")
	assert.Error(t, err)
}
