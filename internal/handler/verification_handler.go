package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"weddinghub/internal/service"
)

type VerificationHandler struct {
	verification *service.VerificationService
	logger       *zap.Logger
}

func NewVerificationHandler(verification *service.VerificationService, logger *zap.Logger) *VerificationHandler {
	return &VerificationHandler{
		verification: verification,
		logger:       logger,
	}
}

// Verify handles POST /api/guest-verification
func (h *VerificationHandler) Verify(c *gin.Context) {
	var req struct {
		GuestName string `json:"guest_name"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.GuestName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"verified": false, "message": "Guest name is required"})
		return
	}

	result, err := h.verification.Verify(c.Request.Context(), req.GuestName)
	if err != nil {
		h.logger.Error("Guest verification failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"verified": false, "message": "Error verifying guest"})
		return
	}

	c.JSON(http.StatusOK, result)
}
