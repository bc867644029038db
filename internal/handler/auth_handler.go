package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"weddinghub/internal/service"
	"weddinghub/internal/util"
)

// AdminCookieName is the cookie carrying the admin session token.
const AdminCookieName = "admin_token"

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	token, err := h.authService.Login(req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "login failed"})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(AdminCookieName, token, int(util.AdminTokenTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Check handles GET /api/auth/check
func (h *AuthHandler) Check(c *gin.Context) {
	token, _ := c.Cookie(AdminCookieName)
	c.JSON(http.StatusOK, gin.H{"isAdmin": h.authService.Check(token)})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(AdminCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
