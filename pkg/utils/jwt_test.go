package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJWT(t *testing.T) {
	secret := []byte("secret")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   "some-id",
		"role": "user",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(secret)
	require.NoError(t, err)

	claims, err := DecodeJWT(signed, secret)
	require.NoError(t, err)
	assert.Equal(t, "some-id", claims["id"])
	assert.Equal(t, "user", claims["role"])
}

func TestDecodeJWT_WrongSecret(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": "some-id"})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = DecodeJWT(signed, []byte("other-secret"))
	assert.Error(t, err)
}

func TestDecodeJWT_Expired(t *testing.T) {
	secret := []byte("secret")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "some-id",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString(secret)
	require.NoError(t, err)

	_, err = DecodeJWT(signed, secret)
	assert.Error(t, err)
}
