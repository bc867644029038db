package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"weddinghub/internal/content"
	"weddinghub/pkg/metrics"
)

// PhotoHandler serves the gallery and the admin photo CRUD.
type PhotoHandler struct {
	photos *content.PhotoStore
	logger *zap.Logger
}

func NewPhotoHandler(photos *content.PhotoStore, logger *zap.Logger) *PhotoHandler {
	return &PhotoHandler{
		photos: photos,
		logger: logger,
	}
}

// Gallery handles GET /api/gallery. Only hearted photos are public.
func (h *PhotoHandler) Gallery(c *gin.Context) {
	photos, err := h.photos.Gallery()
	if err != nil {
		h.logger.Error("Failed to load gallery", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load gallery"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"photos": photos})
}

// List handles GET /api/admin/photos
func (h *PhotoHandler) List(c *gin.Context) {
	photos, err := h.photos.List()
	if err != nil {
		h.logger.Error("Failed to load photos", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load photos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"photos": photos})
}

// Upload handles POST /api/admin/photos. Multipart with a "photo" file
// part and an optional "category" field.
func (h *PhotoHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded photo", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read uploaded photo", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}

	photo, err := h.photos.Save(fileHeader.Filename, c.PostForm("category"), data)
	if err != nil {
		h.logger.Error("Failed to store photo", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store photo"})
		return
	}

	metrics.PhotoUploadCount.Inc()
	c.JSON(http.StatusOK, gin.H{"success": true, "photo": photo})
}

// Update handles PATCH /api/admin/photos. A body with a "reorder" id
// list resequences the collection; otherwise it patches a single photo
// by id.
func (h *PhotoHandler) Update(c *gin.Context) {
	var req struct {
		ID          int64   `json:"id"`
		Hearted     *bool   `json:"hearted"`
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Reorder     []int64 `json:"reorder"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.Reorder != nil {
		if err := h.photos.Reorder(req.Reorder); err != nil {
			h.logger.Error("Failed to reorder photos", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder photos"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	if req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	photo, err := h.photos.Update(req.ID, content.PhotoPatch{
		Hearted:     req.Hearted,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, content.ErrPhotoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
			return
		}
		h.logger.Error("Failed to update photo", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update photo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "photo": photo})
}

// Delete handles DELETE /api/admin/photos
func (h *PhotoHandler) Delete(c *gin.Context) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.photos.Delete(req.ID); err != nil {
		if errors.Is(err, content.ErrPhotoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
			return
		}
		h.logger.Error("Failed to delete photo", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete photo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
