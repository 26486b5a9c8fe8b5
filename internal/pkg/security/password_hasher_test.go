package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	password := "mysecretpassword"

	hashed, err := HashPassword(password)
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, password, hashed)

	assert.NoError(t, CheckPasswordHash(password, hashed))
	assert.Error(t, CheckPasswordHash("wrongpassword", hashed))
	assert.Error(t, CheckPasswordHash(password, "not-a-bcrypt-hash"))

	// 空密码拒绝哈希
	_, err = HashPassword("")
	assert.Error(t, err)
}

func TestEnsureHashedIdempotence(t *testing.T) {
	hashed, err := EnsureHashed("plainvalue")
	require.NoError(t, err)
	assert.True(t, IsHashed(hashed))

	// 已是哈希形态的值不做二次哈希
	again, err := EnsureHashed(hashed)
	require.NoError(t, err)
	assert.Equal(t, hashed, again)

	// 原始密码仍可通过校验
	assert.NoError(t, CheckPasswordHash("plainvalue", again))
}

func TestIsHashed(t *testing.T) {
	assert.False(t, IsHashed("password123"))
	assert.False(t, IsHashed(""))
	assert.True(t, IsHashed("$2a$10$abcdefghijklmnopqrstuv"))
	assert.True(t, IsHashed("$2b$12$abcdefghijklmnopqrstuv"))
}
