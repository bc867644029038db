package service

import (
	"errors"

	"weddinghub/internal/util"
)

// ErrInvalidPassword is returned for a failed admin login.
var ErrInvalidPassword = errors.New("invalid password")

// AuthService checks the single admin credential and issues the session
// token carried by the admin_token cookie.
type AuthService struct {
	passwordHash string
	jwtSecret    string
}

func NewAuthService(passwordHash, jwtSecret string) *AuthService {
	return &AuthService{
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
	}
}

// Login verifies the password and returns a signed admin token.
func (s *AuthService) Login(password string) (string, error) {
	if s.passwordHash == "" || !util.CheckPassword(password, s.passwordHash) {
		return "", ErrInvalidPassword
	}
	return util.GenerateAdminToken(s.jwtSecret)
}

// Check reports whether a token is a valid admin session. An invalid or
// missing token is a normal negative result, not an error.
func (s *AuthService) Check(token string) bool {
	if token == "" {
		return false
	}
	return util.ParseAdminToken(token, s.jwtSecret) == nil
}
