package jwthelper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	key := []byte("test-signing-key")

	tokenStr, err := GenerateToken(key, 42, "steve", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims, err := ParseToken(key, tokenStr)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "steve", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.WithinDuration(t, time.Now().Add(TokenLifespan), claims.ExpiresAt.Time, time.Minute)
}

func TestParseToken_WrongKey(t *testing.T) {
	tokenStr, err := GenerateToken([]byte("key-one"), 1, "steve", "admin")
	require.NoError(t, err)

	_, err = ParseToken([]byte("key-two"), tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken([]byte("key"), "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_UnexpectedSigningMethod(t *testing.T) {
	key := []byte("test-signing-key")

	claims := UserClaims{
		UserID:   1,
		Username: "steve",
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	// Same key, different HMAC variant. Only HS256 is accepted.
	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(key)
	require.NoError(t, err)

	_, err = ParseToken(key, tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	key := []byte("test-signing-key")

	claims := UserClaims{
		UserID:   1,
		Username: "steve",
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)

	_, err = ParseToken(key, tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
