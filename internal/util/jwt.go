package util

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminTokenTTL bounds an admin session.
const AdminTokenTTL = 2 * time.Hour

// GenerateAdminToken creates the admin session token carried by the
// admin_token cookie.
func GenerateAdminToken(secret string) (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(AdminTokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAdminToken validates a token and checks the admin role claim.
func ParseAdminToken(tokenStr, secret string) error {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return err
	}

	if !token.Valid {
		return jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.ErrTokenMalformed
	}

	if role, _ := claims["role"].(string); role != "admin" {
		return jwt.ErrTokenInvalidClaims
	}

	return nil
}
