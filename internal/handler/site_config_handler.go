package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"weddinghub/internal/content"
)

// SiteConfigHandler serves the site configuration document.
type SiteConfigHandler struct {
	config *content.SiteConfigStore
	logger *zap.Logger
}

func NewSiteConfigHandler(config *content.SiteConfigStore, logger *zap.Logger) *SiteConfigHandler {
	return &SiteConfigHandler{
		config: config,
		logger: logger,
	}
}

// Get handles GET /api/site-config
func (h *SiteConfigHandler) Get(c *gin.Context) {
	cfg, err := h.config.Get()
	if err != nil {
		h.logger.Error("Failed to load site config", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load site config"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// Update handles POST /api/admin/site-config. The body is a partial
// document; top-level keys it carries replace the stored values.
func (h *SiteConfigHandler) Update(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	cfg, err := h.config.Update(body)
	if err != nil {
		h.logger.Error("Failed to update site config", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update site config"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "config": cfg})
}
