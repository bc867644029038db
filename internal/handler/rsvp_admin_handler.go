package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"weddinghub/internal/model"
	"weddinghub/internal/repository"
)

// RSVPAdminHandler serves the admin view over submitted RSVPs.
type RSVPAdminHandler struct {
	rsvps  *repository.RSVPRepository
	logger *zap.Logger
}

func NewRSVPAdminHandler(rsvps *repository.RSVPRepository, logger *zap.Logger) *RSVPAdminHandler {
	return &RSVPAdminHandler{
		rsvps:  rsvps,
		logger: logger,
	}
}

// List handles GET /api/admin/rsvps
func (h *RSVPAdminHandler) List(c *gin.Context) {
	rsvps, err := h.rsvps.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to fetch RSVPs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	if rsvps == nil {
		rsvps = []*model.RSVP{}
	}
	c.JSON(http.StatusOK, gin.H{"rsvps": rsvps})
}

// Delete handles DELETE /api/admin/rsvps
func (h *RSVPAdminHandler) Delete(c *gin.Context) {
	var req struct {
		ID int `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.rsvps.Delete(c.Request.Context(), req.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "RSVP not found"})
			return
		}
		h.logger.Error("Failed to delete RSVP", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
