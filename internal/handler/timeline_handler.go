package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"weddinghub/internal/content"
	"weddinghub/internal/model"
)

// TimelineHandler serves the story timeline and its admin CRUD. Writes
// are multipart: milestone fields as form values, photos as file parts
// named photo1/photo2 with matching photo1Align/photo2Align fields.
type TimelineHandler struct {
	timeline *content.TimelineStore
	logger   *zap.Logger
}

func NewTimelineHandler(timeline *content.TimelineStore, logger *zap.Logger) *TimelineHandler {
	return &TimelineHandler{
		timeline: timeline,
		logger:   logger,
	}
}

// List handles GET /api/timeline
func (h *TimelineHandler) List(c *gin.Context) {
	milestones, err := h.timeline.List()
	if err != nil {
		h.logger.Error("Failed to load timeline", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load timeline"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"milestones": milestones})
}

func readUpload(fh *multipart.FileHeader, align string) (content.PhotoUpload, error) {
	file, err := fh.Open()
	if err != nil {
		return content.PhotoUpload{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return content.PhotoUpload{}, err
	}
	return content.PhotoUpload{Name: fh.Filename, Align: align, Data: data}, nil
}

// collectUploads picks up the photo1/photo2 parts and their align
// fields from a parsed multipart form.
func collectUploads(form *multipart.Form) ([]content.PhotoUpload, error) {
	var uploads []content.PhotoUpload
	for _, slot := range []string{"photo1", "photo2"} {
		files := form.File[slot]
		if len(files) == 0 {
			continue
		}
		align := ""
		if v := form.Value[slot+"Align"]; len(v) > 0 {
			align = v[0]
		}
		u, err := readUpload(files[0], align)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, u)
	}
	return uploads, nil
}

func formValue(form *multipart.Form, key string) (string, bool) {
	v, ok := form.Value[key]
	if !ok || len(v) == 0 {
		return "", false
	}
	return v[0], true
}

// Create handles POST /api/admin/timeline
func (h *TimelineHandler) Create(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form"})
		return
	}

	title, _ := formValue(form, "title")
	date, _ := formValue(form, "date")
	if title == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and date are required"})
		return
	}
	dateFormat, _ := formValue(form, "dateFormat")
	description, _ := formValue(form, "description")

	uploads, err := collectUploads(form)
	if err != nil {
		h.logger.Error("Failed to read milestone uploads", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}

	milestone, err := h.timeline.Create(title, date, dateFormat, description, uploads)
	if err != nil {
		if errors.Is(err, content.ErrTooManyPhotos) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to create milestone", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create milestone"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "milestone": milestone})
}

// Update handles PUT /api/admin/timeline. The "existingPhotos" field
// is a JSON array of the photos the client keeps; files dropped from
// it are deleted from disk.
func (h *TimelineHandler) Update(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form"})
		return
	}

	idValue, ok := formValue(form, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}
	id, err := strconv.ParseInt(idValue, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var patch content.MilestonePatch
	if v, ok := formValue(form, "title"); ok {
		patch.Title = &v
	}
	if v, ok := formValue(form, "date"); ok {
		patch.Date = &v
	}
	if v, ok := formValue(form, "dateFormat"); ok {
		patch.DateFormat = &v
	}
	if v, ok := formValue(form, "description"); ok {
		patch.Description = &v
	}

	surviving := []model.MilestonePhoto{}
	if v, ok := formValue(form, "existingPhotos"); ok && v != "" {
		if err := json.Unmarshal([]byte(v), &surviving); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid existingPhotos"})
			return
		}
	}
	patch.Surviving = surviving

	patch.Uploads, err = collectUploads(form)
	if err != nil {
		h.logger.Error("Failed to read milestone uploads", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}

	milestone, err := h.timeline.Update(id, patch)
	if err != nil {
		if errors.Is(err, content.ErrMilestoneNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Milestone not found"})
			return
		}
		h.logger.Error("Failed to update milestone", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update milestone"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "milestone": milestone})
}

// Delete handles DELETE /api/admin/timeline
func (h *TimelineHandler) Delete(c *gin.Context) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.timeline.Delete(req.ID); err != nil {
		if errors.Is(err, content.ErrMilestoneNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Milestone not found"})
			return
		}
		h.logger.Error("Failed to delete milestone", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete milestone"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
