package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	svc := GetAdminAuthService()

	hash, err := svc.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, svc.VerifyPassword(hash, "correct horse battery staple"))
	assert.False(t, svc.VerifyPassword(hash, "wrong password"))
	assert.False(t, svc.VerifyPassword(hash, ""))
}

func TestHashPasswordProducesUniqueHashes(t *testing.T) {
	svc := GetAdminAuthService()

	first, err := svc.HashPassword("password123")
	require.NoError(t, err)
	second, err := svc.HashPassword("password123")
	require.NoError(t, err)

	// bcrypt salts per call
	assert.NotEqual(t, first, second)
}

func TestValidatePassword(t *testing.T) {
	svc := GetAdminAuthService()

	assert.True(t, svc.ValidatePassword("12345678"))
	assert.True(t, svc.ValidatePassword("a much longer passphrase"))
	assert.False(t, svc.ValidatePassword("1234567"))
	assert.False(t, svc.ValidatePassword(""))
}
