package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"weddinghub/internal/content"
)

// WeddingPartyHandler manages wedding-party portrait files. The member
// records themselves live in the site config document; these endpoints
// only move image bytes and hand back filenames for the config to
// reference.
type WeddingPartyHandler struct {
	photos *content.PhotoStore
	logger *zap.Logger
}

func NewWeddingPartyHandler(photos *content.PhotoStore, logger *zap.Logger) *WeddingPartyHandler {
	return &WeddingPartyHandler{
		photos: photos,
		logger: logger,
	}
}

// UploadPhoto handles POST /api/admin/wedding-party/photo. Multipart
// with a "photo" file part and a "memberType" field (bride, groom,
// officiant).
func (h *WeddingPartyHandler) UploadPhoto(c *gin.Context) {
	memberType := c.PostForm("memberType")
	if memberType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "memberType is required"})
		return
	}

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

	filename, err := h.photos.SaveMemberPhoto(memberType, fileHeader.Filename, data)
	if err != nil {
		h.logger.Error("Failed to store member photo", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store photo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "filename": filename})
}

// DeletePhoto handles DELETE /api/admin/wedding-party/photo?filename=x
func (h *WeddingPartyHandler) DeletePhoto(c *gin.Context) {
	filename := c.Query("filename")
	if filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "filename is required"})
		return
	}

	if err := h.photos.RemoveFile(filename); err != nil {
		h.logger.Error("Failed to delete member photo", zap.Error(err), zap.String("filename", filename))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to delete photo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
