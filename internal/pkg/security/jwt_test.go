package security

import (
	"Recipeo/internal/api/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJWTConfig(t *testing.T) {
	t.Helper()
	config.Cfg = &config.Config{
		JWT: config.JWTConfig{
			Secret:      "unit-test-secret",
			ExpireHours: 1,
			Issuer:      "recipeo-test",
		},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	setupJWTConfig(t)

	token, err := GenerateToken(42, RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "recipeo-test", claims.Issuer)
}

func TestValidateTokenWithWrongSecret(t *testing.T) {
	setupJWTConfig(t)

	token, err := GenerateToken(7, RoleUser)
	require.NoError(t, err)

	config.Cfg.JWT.Secret = "a-different-secret"
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenMalformed(t *testing.T) {
	setupJWTConfig(t)

	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)

	_, err = ValidateToken("")
	assert.Error(t, err)
}

func TestExtractSignature(t *testing.T) {
	setupJWTConfig(t)

	token, err := GenerateToken(1, RoleUser)
	require.NoError(t, err)

	sig, err := ExtractSignature(token)
	require.NoError(t, err)
	assert.NotEmpty(t, sig)
	assert.NotContains(t, sig, ".")

	_, err = ExtractSignature("onlytwo.parts")
	assert.Error(t, err)
}
