package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"weddinghub/internal/model"
)

// WipToggleStore is the slice of the toggle repository the handler needs.
type WipToggleStore interface {
	List(ctx context.Context) ([]*model.WipToggle, error)
	ActivePaths(ctx context.Context) ([]string, error)
	Upsert(ctx context.Context, t *model.WipToggle) error
}

// WipHandler serves the work-in-progress page toggles. The gate is
// advisory: clients redirect off flagged pages, the server never
// blocks anything with it.
type WipHandler struct {
	toggles WipToggleStore
	logger  *zap.Logger
}

func NewWipHandler(toggles WipToggleStore, logger *zap.Logger) *WipHandler {
	return &WipHandler{
		toggles: toggles,
		logger:  logger,
	}
}

// Status handles GET /api/wip-status. Storage errors degrade to an
// empty map so pages stay reachable when the database is down.
func (h *WipHandler) Status(c *gin.Context) {
	status := map[string]bool{}

	paths, err := h.toggles.ActivePaths(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to fetch wip status, serving empty map", zap.Error(err))
		c.JSON(http.StatusOK, status)
		return
	}
	for _, p := range paths {
		status[p] = true
	}
	c.JSON(http.StatusOK, status)
}

// List handles GET /api/admin/wip-toggles
func (h *WipHandler) List(c *gin.Context) {
	toggles, err := h.toggles.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to fetch wip toggles", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch toggles"})
		return
	}
	if toggles == nil {
		toggles = []*model.WipToggle{}
	}
	c.JSON(http.StatusOK, gin.H{"toggles": toggles})
}

// Upsert handles POST /api/admin/wip-toggles
func (h *WipHandler) Upsert(c *gin.Context) {
	var req struct {
		PagePath  string `json:"page_path"`
		PageLabel string `json:"page_label"`
		IsWip     *bool  `json:"is_wip"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.PagePath == "" || req.IsWip == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page_path and is_wip are required"})
		return
	}

	toggle := &model.WipToggle{
		PagePath:  req.PagePath,
		PageLabel: req.PageLabel,
		IsWip:     *req.IsWip,
	}
	if err := h.toggles.Upsert(c.Request.Context(), toggle); err != nil {
		h.logger.Error("Failed to upsert wip toggle", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save toggle"})
		return
	}
	c.JSON(http.StatusOK, toggle)
}
