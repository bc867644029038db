package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"weddinghub/internal/model"
)

type stubWipToggleStore struct {
	toggles []*model.WipToggle
	paths   []string
	err     error
}

func (s *stubWipToggleStore) List(context.Context) ([]*model.WipToggle, error) {
	return s.toggles, s.err
}

func (s *stubWipToggleStore) ActivePaths(context.Context) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.paths, nil
}

func (s *stubWipToggleStore) Upsert(_ context.Context, t *model.WipToggle) error {
	if s.err != nil {
		return s.err
	}
	t.ID = 1
	return nil
}

func wipTestRouter(store *stubWipToggleStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewWipHandler(store, zap.NewNop())

	r := gin.New()
	r.GET("/api/wip-status", h.Status)
	r.POST("/api/admin/wip-toggles", h.Upsert)
	return r
}

func TestWipStatusMapsActivePaths(t *testing.T) {
	r := wipTestRouter(&stubWipToggleStore{paths: []string{"/gallery", "/schedule"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/wip-status", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"/gallery":true,"/schedule":true}`, w.Body.String())
}

func TestWipStatusDegradesToEmptyMapOnError(t *testing.T) {
	r := wipTestRouter(&stubWipToggleStore{err: errors.New("db down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/wip-status", nil)
	r.ServeHTTP(w, req)

	// The gate fails open: pages stay reachable when storage is down.
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())
}

func TestWipUpsertValidation(t *testing.T) {
	r := wipTestRouter(&stubWipToggleStore{})

	for _, body := range []string{`{}`, `{"page_path":"/gallery"}`, `{"is_wip":true}`} {
		w := postJSON(r, "/api/admin/wip-toggles", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}

	w := postJSON(r, "/api/admin/wip-toggles", `{"page_path":"/gallery","page_label":"Gallery","is_wip":true}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"page_path":"/gallery"`)
}
