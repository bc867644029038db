package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"weddinghub/internal/repository"
	"weddinghub/internal/service"
)

type RSVPHandler struct {
	rsvpService *service.RSVPService
	logger      *zap.Logger
}

func NewRSVPHandler(rsvpService *service.RSVPService, logger *zap.Logger) *RSVPHandler {
	return &RSVPHandler{
		rsvpService: rsvpService,
		logger:      logger,
	}
}

// Submit handles POST /api/rsvp
func (h *RSVPHandler) Submit(c *gin.Context) {
	var req struct {
		RSVPID              *int   `json:"rsvpId"`
		GuestName           string `json:"guestName"`
		Email               string `json:"email"`
		Phone               string `json:"phone"`
		Attending           *bool  `json:"attending"`
		GuestCount          int    `json:"guestCount"`
		DietaryRestrictions string `json:"dietaryRestrictions"`
		Message             string `json:"message"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.GuestName == "" || req.Email == "" || req.Attending == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	_, created, err := h.rsvpService.Submit(c.Request.Context(), service.Submission{
		RSVPID:              req.RSVPID,
		GuestName:           req.GuestName,
		Email:               req.Email,
		Phone:               req.Phone,
		Attending:           *req.Attending,
		GuestCount:          req.GuestCount,
		DietaryRestrictions: req.DietaryRestrictions,
		Message:             req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "RSVP not found"})
		default:
			h.logger.Error("RSVP submission failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "created": created})
}
