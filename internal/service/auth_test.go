package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddinghub/internal/util"
)

func TestAuthServiceLogin(t *testing.T) {
	hash, err := util.HashPassword("hunter2")
	require.NoError(t, err)
	svc := NewAuthService(hash, "secret")

	token, err := svc.Login("hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, svc.Check(token))

	_, err = svc.Login("wrong")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestAuthServiceLoginWithoutConfiguredHash(t *testing.T) {
	svc := NewAuthService("", "secret")

	_, err := svc.Login("anything")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestAuthServiceCheck(t *testing.T) {
	svc := NewAuthService("unused", "secret")

	assert.False(t, svc.Check(""))
	assert.False(t, svc.Check("garbage"))

	token, err := util.GenerateAdminToken("other-secret")
	require.NoError(t, err)
	assert.False(t, svc.Check(token))
}
