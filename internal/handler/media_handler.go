package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"weddinghub/internal/content"
)

// Uploaded filenames are timestamp-prefixed and never reused, so the
// browser may cache them forever.
const mediaCacheControl = "public, max-age=31536000, immutable"

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

// MediaHandler streams stored photo files.
type MediaHandler struct {
	photos *content.PhotoStore
	logger *zap.Logger
}

func NewMediaHandler(photos *content.PhotoStore, logger *zap.Logger) *MediaHandler {
	return &MediaHandler{
		photos: photos,
		logger: logger,
	}
}

// Serve handles GET /api/photos/:filename
func (h *MediaHandler) Serve(c *gin.Context) {
	filename := c.Param("filename")

	path, err := h.photos.FilePath(filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filename"})
		return
	}
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
		return
	}

	contentType := contentTypes[strings.ToLower(filepath.Ext(filename))]
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Type", contentType)
	c.Header("Cache-Control", mediaCacheControl)
	c.File(path)
}
