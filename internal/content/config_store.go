package content

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"weddinghub/internal/model"
)

// SiteConfigStore is the single-document store for site.json. The
// document is held as a loose key/value bag so that updates are a
// shallow merge: a top-level key present in the patch replaces the
// stored value wholesale (arrays and the weddingParty object included),
// unknown keys are kept, absent keys are untouched.
type SiteConfigStore struct {
	mu     sync.Mutex
	path   string
	logger *zap.Logger
}

func NewSiteConfigStore(contentDir string, logger *zap.Logger) *SiteConfigStore {
	return &SiteConfigStore{
		path:   filepath.Join(contentDir, "site.json"),
		logger: logger,
	}
}

func (s *SiteConfigStore) loadRaw() (map[string]json.RawMessage, error) {
	doc := map[string]json.RawMessage{}
	if _, err := readDocument(s.path, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func toTyped(doc map[string]json.RawMessage) (model.SiteConfig, error) {
	cfg := model.DefaultSiteConfig()
	data, err := json.Marshal(doc)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("site config document is malformed: %w", err)
	}
	return cfg, nil
}

// Get returns the typed configuration, backfilling the default fields
// the read path guarantees when the document is absent or sparse.
func (s *SiteConfigStore) Get() (model.SiteConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.loadRaw()
	if err != nil {
		return model.SiteConfig{}, err
	}
	return toTyped(doc)
}

// Update shallow-merges the posted partial object over the stored
// document and returns the merged typed configuration.
func (s *SiteConfigStore) Update(patch []byte) (model.SiteConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var incoming map[string]json.RawMessage
	if err := json.Unmarshal(patch, &incoming); err != nil {
		return model.SiteConfig{}, fmt.Errorf("invalid config patch: %w", err)
	}

	doc, err := s.loadRaw()
	if err != nil {
		return model.SiteConfig{}, err
	}
	for k, v := range incoming {
		doc[k] = v
	}

	cfg, err := toTyped(doc)
	if err != nil {
		return model.SiteConfig{}, err
	}

	if err := writeDocument(s.path, doc); err != nil {
		return model.SiteConfig{}, err
	}
	return cfg, nil
}
