package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"weddinghub/internal/model"
	"weddinghub/internal/repository"
)

// GuestHandler serves the admin guest-list CRUD.
type GuestHandler struct {
	guests *repository.GuestRepository
	logger *zap.Logger
}

func NewGuestHandler(guests *repository.GuestRepository, logger *zap.Logger) *GuestHandler {
	return &GuestHandler{
		guests: guests,
		logger: logger,
	}
}

type guestRequest struct {
	ID          int    `json:"id"`
	GuestName   string `json:"guest_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	PartySize   int    `json:"party_size"`
	PlusOneName string `json:"plus_one_name"`
	Side        string `json:"side"`
	Notes       string `json:"notes"`
	Invited     *bool  `json:"invited"`
}

// List handles GET /api/admin/guest-list
func (h *GuestHandler) List(c *gin.Context) {
	guests, err := h.guests.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to fetch guest list", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest list"})
		return
	}
	if guests == nil {
		guests = []*model.Guest{}
	}
	c.JSON(http.StatusOK, guests)
}

// Create handles POST /api/admin/guest-list
func (h *GuestHandler) Create(c *gin.Context) {
	var req guestRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.GuestName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guest_name is required"})
		return
	}
	if req.PartySize < 1 {
		req.PartySize = 1
	}

	invited := true
	if req.Invited != nil {
		invited = *req.Invited
	}

	guest := &model.Guest{
		GuestName:   req.GuestName,
		Email:       req.Email,
		Phone:       req.Phone,
		PartySize:   req.PartySize,
		PlusOneName: req.PlusOneName,
		Side:        req.Side,
		Notes:       req.Notes,
		Invited:     invited,
	}
	if err := h.guests.Create(c.Request.Context(), guest); err != nil {
		h.logger.Error("Failed to add guest", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add guest"})
		return
	}
	c.JSON(http.StatusOK, guest)
}

// Update handles PUT /api/admin/guest-list
func (h *GuestHandler) Update(c *gin.Context) {
	var req guestRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}
	if req.PartySize < 1 {
		req.PartySize = 1
	}

	invited := true
	if req.Invited != nil {
		invited = *req.Invited
	}

	guest := &model.Guest{
		ID:          req.ID,
		GuestName:   req.GuestName,
		Email:       req.Email,
		Phone:       req.Phone,
		PartySize:   req.PartySize,
		PlusOneName: req.PlusOneName,
		Side:        req.Side,
		Notes:       req.Notes,
		Invited:     invited,
	}
	if err := h.guests.Update(c.Request.Context(), guest); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
			return
		}
		h.logger.Error("Failed to update guest", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update guest"})
		return
	}
	c.JSON(http.StatusOK, guest)
}

// Delete handles DELETE /api/admin/guest-list. RSVPs filed by the guest
// are left alone; they keep matching by name.
func (h *GuestHandler) Delete(c *gin.Context) {
	var req struct {
		ID int `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.guests.Delete(c.Request.Context(), req.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
			return
		}
		h.logger.Error("Failed to delete guest", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete guest"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
