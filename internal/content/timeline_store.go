package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"weddinghub/internal/model"
)

// ErrMilestoneNotFound is returned when a milestone id has no record.
var ErrMilestoneNotFound = fmt.Errorf("milestone not found")

// ErrTooManyPhotos is returned when a milestone would exceed its photo cap.
var ErrTooManyPhotos = fmt.Errorf("a milestone can carry at most %d photos", model.MaxMilestonePhotos)

// TimelineStore keeps milestone records in timeline.json. Milestone
// photo files live in the shared photos directory and are owned by the
// milestone: edits and deletes remove the files they drop.
type TimelineStore struct {
	mu        sync.Mutex
	path      string
	photosDir string
	logger    *zap.Logger
}

type timelineDocument struct {
	Milestones []model.Milestone `json:"milestones"`
}

func NewTimelineStore(contentDir, photosDir string, logger *zap.Logger) *TimelineStore {
	return &TimelineStore{
		path:      filepath.Join(contentDir, "timeline.json"),
		photosDir: photosDir,
		logger:    logger,
	}
}

func (s *TimelineStore) load() ([]model.Milestone, error) {
	var doc timelineDocument
	if _, err := readDocument(s.path, &doc); err != nil {
		return nil, err
	}
	return doc.Milestones, nil
}

func (s *TimelineStore) save(milestones []model.Milestone) error {
	if milestones == nil {
		milestones = []model.Milestone{}
	}
	return writeDocument(s.path, timelineDocument{Milestones: milestones})
}

// List returns milestones ordered oldest first. Dates are ISO date
// strings, so lexicographic order is chronological order.
func (s *TimelineStore) List() ([]model.Milestone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	milestones, err := s.load()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(milestones, func(i, j int) bool { return milestones[i].Date < milestones[j].Date })
	return milestones, nil
}

// PhotoUpload is an image submitted alongside a milestone. Slot keeps
// the original upload field position in the stored filename.
type PhotoUpload struct {
	Name  string
	Align string
	Data  []byte
}

func (s *TimelineStore) writeUpload(u PhotoUpload, slot int) (model.MilestonePhoto, error) {
	align := u.Align
	if align == "" {
		align = "center"
	}
	filename := fmt.Sprintf("%d-%d-%s", time.Now().UnixMilli(), slot, sanitizeFilename(u.Name))
	if err := os.MkdirAll(s.photosDir, 0o755); err != nil {
		return model.MilestonePhoto{}, fmt.Errorf("failed to create photos directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.photosDir, filename), u.Data, 0o644); err != nil {
		return model.MilestonePhoto{}, fmt.Errorf("failed to write photo file: %w", err)
	}
	return model.MilestonePhoto{Filename: filename, Align: align}, nil
}

// Create appends a milestone, storing up to two uploaded photos.
func (s *TimelineStore) Create(title, date, dateFormat, description string, uploads []PhotoUpload) (*model.Milestone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(uploads) > model.MaxMilestonePhotos {
		return nil, ErrTooManyPhotos
	}
	if dateFormat == "" {
		dateFormat = model.DateFormatExact
	}

	milestone := model.Milestone{
		ID:          time.Now().UnixMilli(),
		Title:       title,
		Date:        date,
		DateFormat:  dateFormat,
		Description: description,
		Photos:      []model.MilestonePhoto{},
	}

	for i, u := range uploads {
		photo, err := s.writeUpload(u, i+1)
		if err != nil {
			return nil, err
		}
		milestone.Photos = append(milestone.Photos, photo)
	}

	milestones, err := s.load()
	if err != nil {
		return nil, err
	}
	milestones = append(milestones, milestone)
	if err := s.save(milestones); err != nil {
		return nil, err
	}
	return &milestone, nil
}

// MilestonePatch updates a milestone. Surviving is the full list of
// photos the client wants to keep: files present on the stored record
// but absent from Surviving are deleted from disk, permanently. New
// uploads are appended only while the total stays within the cap.
type MilestonePatch struct {
	Title       *string
	Date        *string
	DateFormat  *string
	Description *string
	Surviving   []model.MilestonePhoto
	Uploads     []PhotoUpload
}

func (s *TimelineStore) Update(id int64, patch MilestonePatch) (*model.Milestone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	milestones, err := s.load()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range milestones {
		if milestones[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrMilestoneNotFound
	}
	m := &milestones[idx]

	if patch.Title != nil {
		m.Title = *patch.Title
	}
	if patch.Date != nil {
		m.Date = *patch.Date
	}
	if patch.DateFormat != nil {
		m.DateFormat = *patch.DateFormat
	}
	if patch.Description != nil {
		m.Description = *patch.Description
	}

	surviving := patch.Surviving
	if surviving == nil {
		surviving = []model.MilestonePhoto{}
	}

	// Destructive diff cleanup: whatever the client did not send back
	// is gone from disk as well.
	kept := make(map[string]bool, len(surviving))
	for _, p := range surviving {
		kept[p.Filename] = true
	}
	for _, p := range m.Photos {
		if !kept[p.Filename] {
			if err := removeFileIfExists(filepath.Join(s.photosDir, p.Filename)); err != nil {
				return nil, fmt.Errorf("failed to delete photo file: %w", err)
			}
			s.logger.Info("Deleted milestone photo dropped by edit",
				zap.Int64("milestone_id", id),
				zap.String("filename", p.Filename),
			)
		}
	}

	updated := append([]model.MilestonePhoto{}, surviving...)
	for i, u := range patch.Uploads {
		if len(updated) >= model.MaxMilestonePhotos {
			break
		}
		photo, err := s.writeUpload(u, i+1)
		if err != nil {
			return nil, err
		}
		updated = append(updated, photo)
	}
	m.Photos = updated

	if err := s.save(milestones); err != nil {
		return nil, err
	}
	result := *m
	return &result, nil
}

// Delete removes the milestone and every photo file it carries.
func (s *TimelineStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	milestones, err := s.load()
	if err != nil {
		return err
	}

	for i := range milestones {
		if milestones[i].ID != id {
			continue
		}
		for _, p := range milestones[i].Photos {
			if err := removeFileIfExists(filepath.Join(s.photosDir, p.Filename)); err != nil {
				return fmt.Errorf("failed to delete photo file: %w", err)
			}
		}
		milestones = append(milestones[:i], milestones[i+1:]...)
		return s.save(milestones)
	}
	return ErrMilestoneNotFound
}
