package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 1)

	token, err := svc.Generate(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)

	id, err := claims.CustomerID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	require.NotNil(t, claims.ExpiresAt)
	ttl := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, ttl, 55*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)
}

func TestJWTService_VerifyRejectsWrongSecret(t *testing.T) {
	svc := NewJWTService("test-secret", 1)
	other := NewJWTService("other-secret", 1)

	token, err := svc.Generate(7)
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_VerifyRejectsExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", 1)

	past := time.Now().UTC().Add(-2 * time.Hour)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(past),
			NotBefore: jwt.NewNumericDate(past),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(tokenString)
	assert.Error(t, err)
}

func TestJWTService_VerifyRejectsUnsignedToken(t *testing.T) {
	svc := NewJWTService("test-secret", 1)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(tokenString)
	assert.Error(t, err)
}

func TestClaims_CustomerIDRejectsBadSubject(t *testing.T) {
	tests := []struct {
		name    string
		subject string
	}{
		{"empty", ""},
		{"non numeric", "abc"},
		{"zero", "0"},
		{"negative", "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: tt.subject}}
			_, err := claims.CustomerID()
			assert.Error(t, err)
		})
	}
}

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("secret-password")
	require.NoError(t, err)
	require.NotEqual(t, "secret-password", hash)

	assert.NoError(t, hasher.Verify("secret-password", hash))
	assert.Error(t, hasher.Verify("wrong-password", hash))
	assert.Error(t, hasher.Verify("secret-password", "not-a-hash"))
}

func TestNewBcryptPasswordHasher_ClampsInvalidCost(t *testing.T) {
	hasher := NewBcryptPasswordHasher(99)

	hash, err := hasher.Hash("pw")
	require.NoError(t, err)
	assert.NoError(t, hasher.Verify("pw", hash))
}
