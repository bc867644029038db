package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"weddinghub/internal/content"
)

func mediaTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	photosDir := filepath.Join(dir, "photos")
	require.NoError(t, os.MkdirAll(photosDir, 0o755))

	store := content.NewPhotoStore(dir, photosDir, zap.NewNop())
	h := NewMediaHandler(store, zap.NewNop())

	r := gin.New()
	r.GET("/api/photos/:filename", h.Serve)
	return r, photosDir
}

func TestServePhoto(t *testing.T) {
	r, photosDir := mediaTestRouter(t)
	require.NoError(t, os.WriteFile(filepath.Join(photosDir, "123-pic.jpg"), []byte("jpeg-bytes"), 0o644))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/photos/123-pic.jpg", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=31536000, immutable", w.Header().Get("Cache-Control"))
	assert.Equal(t, "jpeg-bytes", w.Body.String())
}

func TestServePhotoContentTypes(t *testing.T) {
	r, photosDir := mediaTestRouter(t)

	cases := map[string]string{
		"a.png":  "image/png",
		"b.webp": "image/webp",
		"c.SVG":  "image/svg+xml",
		"d.bin":  "application/octet-stream",
	}
	for name, want := range cases {
		require.NoError(t, os.WriteFile(filepath.Join(photosDir, name), []byte("x"), 0o644))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/photos/"+name, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, name)
		assert.Equal(t, want, w.Header().Get("Content-Type"), name)
	}
}

func TestServePhotoMissingFile(t *testing.T) {
	r, _ := mediaTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/photos/nope.jpg", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServePhotoRejectsTraversal(t *testing.T) {
	r, _ := mediaTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/photos/%2e%2e%2fsecrets.txt", nil)
	r.ServeHTTP(w, req)

	assert.NotEqual(t, http.StatusOK, w.Code)
}
