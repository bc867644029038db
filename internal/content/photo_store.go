package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"weddinghub/internal/model"
)

// ErrPhotoNotFound is returned when a photo id has no record.
var ErrPhotoNotFound = fmt.Errorf("photo not found")

// PhotoStore keeps photo records in photos.json and the image bytes as
// flat files in a shared directory, referenced by filename only.
type PhotoStore struct {
	mu        sync.Mutex
	path      string
	photosDir string
	logger    *zap.Logger
}

type photosDocument struct {
	Photos []model.Photo `json:"photos"`
}

func NewPhotoStore(contentDir, photosDir string, logger *zap.Logger) *PhotoStore {
	return &PhotoStore{
		path:      filepath.Join(contentDir, "photos.json"),
		photosDir: photosDir,
		logger:    logger,
	}
}

// load reads the document and drops records whose backing file no
// longer exists. When anything was dropped the filtered list is
// persisted immediately, so a second load returns the same set.
// Callers must hold the mutex.
func (s *PhotoStore) load() ([]model.Photo, error) {
	var doc photosDocument
	if _, err := readDocument(s.path, &doc); err != nil {
		return nil, err
	}

	valid := doc.Photos[:0]
	for _, p := range doc.Photos {
		if _, err := os.Stat(filepath.Join(s.photosDir, p.Filename)); err == nil {
			valid = append(valid, p)
		} else {
			s.logger.Warn("Dropping photo record without backing file",
				zap.Int64("id", p.ID),
				zap.String("filename", p.Filename),
			)
		}
	}

	if len(valid) != len(doc.Photos) {
		if err := s.save(valid); err != nil {
			return nil, err
		}
	}
	return valid, nil
}

func (s *PhotoStore) save(photos []model.Photo) error {
	if photos == nil {
		photos = []model.Photo{}
	}
	return writeDocument(s.path, photosDocument{Photos: photos})
}

// List returns all photo records sorted by display order.
func (s *PhotoStore) List() ([]model.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	photos, err := s.load()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(photos, func(i, j int) bool { return photos[i].Order < photos[j].Order })
	return photos, nil
}

// Gallery returns the hearted photos sorted by display order.
func (s *PhotoStore) Gallery() ([]model.Photo, error) {
	photos, err := s.List()
	if err != nil {
		return nil, err
	}
	gallery := make([]model.Photo, 0, len(photos))
	for _, p := range photos {
		if p.Hearted {
			gallery = append(gallery, p)
		}
	}
	return gallery, nil
}

// Save stores uploaded bytes under a timestamp-prefixed filename and
// appends a record placed at the end of the display order.
func (s *PhotoStore) Save(originalName, category string, data []byte) (*model.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if category == "" {
		category = "gallery"
	}

	now := time.Now()
	filename := fmt.Sprintf("%d-%s", now.UnixMilli(), sanitizeFilename(originalName))
	if err := os.MkdirAll(s.photosDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create photos directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.photosDir, filename), data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write photo file: %w", err)
	}

	photos, err := s.load()
	if err != nil {
		return nil, err
	}

	photo := model.Photo{
		ID:       now.UnixMilli(),
		Filename: filename,
		Alt:      originalName,
		Category: category,
		Hearted:  false,
		Order:    len(photos),
	}
	photos = append(photos, photo)
	if err := s.save(photos); err != nil {
		return nil, err
	}
	return &photo, nil
}

// PhotoPatch is a partial-field update; nil fields are untouched.
type PhotoPatch struct {
	Hearted     *bool
	Title       *string
	Description *string
}

// Update patches a photo record by id.
func (s *PhotoStore) Update(id int64, patch PhotoPatch) (*model.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	photos, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range photos {
		if photos[i].ID != id {
			continue
		}
		if patch.Hearted != nil {
			photos[i].Hearted = *patch.Hearted
		}
		if patch.Title != nil {
			photos[i].Title = *patch.Title
		}
		if patch.Description != nil {
			photos[i].Description = *patch.Description
		}
		if err := s.save(photos); err != nil {
			return nil, err
		}
		p := photos[i]
		return &p, nil
	}
	return nil, ErrPhotoNotFound
}

// Reorder assigns sequential order values following the given id list.
// Ids not mentioned keep their relative order and are pushed after the
// listed ones, so an incomplete list never drops records.
func (s *PhotoStore) Reorder(ids []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	photos, err := s.load()
	if err != nil {
		return err
	}

	byID := make(map[int64]*model.Photo, len(photos))
	for i := range photos {
		byID[photos[i].ID] = &photos[i]
	}

	listed := make([]model.Photo, 0, len(ids))
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok && !seen[id] {
			p.Order = len(listed)
			listed = append(listed, *p)
			seen[id] = true
		}
	}

	rest := make([]model.Photo, 0, len(photos))
	sort.SliceStable(photos, func(i, j int) bool { return photos[i].Order < photos[j].Order })
	for _, p := range photos {
		if !seen[p.ID] {
			p.Order = len(listed) + len(rest)
			rest = append(rest, p)
		}
	}

	return s.save(append(listed, rest...))
}

// Delete removes the record and its physical file. A file that is
// already gone is not an error. References from the site config to the
// filename are left dangling; the render path falls back when the file
// is missing.
func (s *PhotoStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	photos, err := s.load()
	if err != nil {
		return err
	}

	for i := range photos {
		if photos[i].ID != id {
			continue
		}
		if err := removeFileIfExists(filepath.Join(s.photosDir, photos[i].Filename)); err != nil {
			return fmt.Errorf("failed to delete photo file: %w", err)
		}
		photos = append(photos[:i], photos[i+1:]...)
		return s.save(photos)
	}
	return ErrPhotoNotFound
}

// SaveMemberPhoto stores a wedding-party portrait. The file is not
// tracked in photos.json; the site config references it by filename.
func (s *PhotoStore) SaveMemberPhoto(memberType, originalName string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			return r
		default:
			return '_'
		}
	}, filepath.Base(originalName))

	filename := fmt.Sprintf("wedding-party-%s-%d-%s", memberType, time.Now().UnixMilli(), cleaned)
	if err := os.MkdirAll(s.photosDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create photos directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.photosDir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write photo file: %w", err)
	}
	return filename, nil
}

// RemoveFile deletes an uploaded file by name, tolerating a missing
// file. Names that escape the photos directory are rejected.
func (s *PhotoStore) RemoveFile(filename string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if filename != filepath.Base(filename) {
		return fmt.Errorf("invalid filename")
	}
	return removeFileIfExists(filepath.Join(s.photosDir, filename))
}

// FilePath resolves a stored filename to its path on disk, rejecting
// traversal attempts.
func (s *PhotoStore) FilePath(filename string) (string, error) {
	if filename != filepath.Base(filename) || filename == "." || filename == ".." {
		return "", fmt.Errorf("invalid filename")
	}
	return filepath.Join(s.photosDir, filename), nil
}
