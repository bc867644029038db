package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"weddinghub/internal/content"
	"weddinghub/internal/model"
)

func photoTestRouter(t *testing.T) (*gin.Engine, *content.PhotoStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	store := content.NewPhotoStore(dir, filepath.Join(dir, "photos"), zap.NewNop())
	h := NewPhotoHandler(store, zap.NewNop())

	r := gin.New()
	r.GET("/api/admin/photos", h.List)
	r.PATCH("/api/admin/photos", h.Update)
	return r, store
}

func patchJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func listPhotoIDs(t *testing.T, r *gin.Engine) []int64 {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/photos", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Photos []model.Photo `json:"photos"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	ids := make([]int64, len(body.Photos))
	for i, p := range body.Photos {
		ids[i] = p.ID
	}
	return ids
}

func TestPhotoPatchReorder(t *testing.T) {
	r, store := photoTestRouter(t)

	var ids []int64
	for _, name := range []string{"a.jpg", "b.jpg", "c.jpg"} {
		p, err := store.Save(name, "", []byte("img"))
		require.NoError(t, err)
		ids = append(ids, p.ID)
		time.Sleep(2 * time.Millisecond)
	}

	w := patchJSON(r, "/api/admin/photos", fmt.Sprintf(`{"reorder":[%d,%d,%d]}`, ids[2], ids[0], ids[1]))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int64{ids[2], ids[0], ids[1]}, listPhotoIDs(t, r))
}

func TestPhotoPatchSingleRecord(t *testing.T) {
	r, store := photoTestRouter(t)

	p, err := store.Save("a.jpg", "", []byte("img"))
	require.NoError(t, err)

	w := patchJSON(r, "/api/admin/photos", fmt.Sprintf(`{"id":%d,"hearted":true,"title":"Us"}`, p.ID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"hearted":true`)
	assert.Contains(t, w.Body.String(), `"title":"Us"`)
}

func TestPhotoPatchUnknownID(t *testing.T) {
	r, _ := photoTestRouter(t)

	w := patchJSON(r, "/api/admin/photos", `{"id":999,"hearted":true}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
