package util

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	token, err := GenerateAdminToken("secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, ParseAdminToken(token, "secret"))
}

func TestAdminTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateAdminToken("secret")
	require.NoError(t, err)

	assert.Error(t, ParseAdminToken(token, "other-secret"))
}

func TestAdminTokenRejectsExpired(t *testing.T) {
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(-time.Minute).Unix(),
		"iat":  time.Now().Add(-AdminTokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	assert.Error(t, ParseAdminToken(token, "secret"))
}

func TestAdminTokenRejectsMissingRole(t *testing.T) {
	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	assert.Error(t, ParseAdminToken(token, "secret"))
}

func TestAdminTokenRejectsGarbage(t *testing.T) {
	assert.Error(t, ParseAdminToken("not-a-token", "secret"))
	assert.Error(t, ParseAdminToken("", "secret"))
}
