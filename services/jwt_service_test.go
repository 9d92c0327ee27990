package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitJWTServiceRejectsEmptySecret(t *testing.T) {
	assert.Error(t, InitJWTService(""))
}

func TestGenerateAndVerifyAdminJWT(t *testing.T) {
	svc := &JWTService{secretKey: "test-secret"}

	token, err := svc.GenerateAdminJWT("0192b1c4-0000-7000-8000-000000000001", "admin@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyAdminJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "0192b1c4-0000-7000-8000-000000000001", claims.AdminID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "somine-cms", claims.Issuer)

	// Expiry honors the session lifetime.
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, SessionMaxAge.Seconds(), remaining.Seconds(), 60)
}

func TestGenerateAdminJWTRejectsEmptyFields(t *testing.T) {
	svc := &JWTService{secretKey: "test-secret"}

	_, err := svc.GenerateAdminJWT("", "admin@example.com")
	assert.Error(t, err)

	_, err = svc.GenerateAdminJWT("some-id", "")
	assert.Error(t, err)
}

func TestVerifyAdminJWTRejectsWrongSecret(t *testing.T) {
	signer := &JWTService{secretKey: "secret-a"}
	verifier := &JWTService{secretKey: "secret-b"}

	token, err := signer.GenerateAdminJWT("some-id", "admin@example.com")
	require.NoError(t, err)

	_, err = verifier.VerifyAdminJWT(token)
	assert.Error(t, err)
}

func TestVerifyAdminJWTRejectsGarbage(t *testing.T) {
	svc := &JWTService{secretKey: "test-secret"}

	_, err := svc.VerifyAdminJWT("not-a-token")
	assert.Error(t, err)
}

func TestVerifyAdminJWTRejectsMissingClaims(t *testing.T) {
	svc := &JWTService{secretKey: "test-secret"}

	// A structurally valid token without admin_id must not pass.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		Issuer:    "somine-cms",
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.VerifyAdminJWT(signed)
	assert.Error(t, err)
}
