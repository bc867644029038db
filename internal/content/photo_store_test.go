package content

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestPhotoStore(t *testing.T) (*PhotoStore, string) {
	t.Helper()
	dir := t.TempDir()
	photosDir := filepath.Join(dir, "photos")
	return NewPhotoStore(dir, photosDir, zap.NewNop()), photosDir
}

// savePhoto pauses between saves so ids derived from the clock stay unique.
func savePhoto(t *testing.T, s *PhotoStore, name string) int64 {
	t.Helper()
	p, err := s.Save(name, "", []byte("image-bytes"))
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	return p.ID
}

func TestPhotoStoreSaveAndList(t *testing.T) {
	store, photosDir := newTestPhotoStore(t)

	idA := savePhoto(t, store, "first photo.jpg")
	idB := savePhoto(t, store, "second.jpg")

	photos, err := store.List()
	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.Equal(t, idA, photos[0].ID)
	assert.Equal(t, idB, photos[1].ID)
	assert.Equal(t, 0, photos[0].Order)
	assert.Equal(t, 1, photos[1].Order)
	assert.Equal(t, "gallery", photos[0].Category)

	// Whitespace in the original name never reaches disk.
	assert.NotContains(t, photos[0].Filename, " ")
	_, err = os.Stat(filepath.Join(photosDir, photos[0].Filename))
	assert.NoError(t, err)
}

func TestPhotoStoreGalleryOnlyHearted(t *testing.T) {
	store, _ := newTestPhotoStore(t)

	savePhoto(t, store, "a.jpg")
	idB := savePhoto(t, store, "b.jpg")

	gallery, err := store.Gallery()
	require.NoError(t, err)
	assert.Empty(t, gallery)

	hearted := true
	_, err = store.Update(idB, PhotoPatch{Hearted: &hearted})
	require.NoError(t, err)

	gallery, err = store.Gallery()
	require.NoError(t, err)
	require.Len(t, gallery, 1)
	assert.Equal(t, idB, gallery[0].ID)
}

func TestPhotoStoreDropsRecordsWithoutBackingFile(t *testing.T) {
	store, photosDir := newTestPhotoStore(t)

	idA := savePhoto(t, store, "keep.jpg")
	savePhoto(t, store, "lost.jpg")

	photos, err := store.List()
	require.NoError(t, err)
	require.Len(t, photos, 2)

	// Remove the backing file behind the store's back.
	require.NoError(t, os.Remove(filepath.Join(photosDir, photos[1].Filename)))

	photos, err = store.List()
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, idA, photos[0].ID)

	// The filtered list was persisted, so the document itself shrank.
	raw, err := os.ReadFile(filepath.Join(filepath.Dir(photosDir), "photos.json"))
	require.NoError(t, err)
	var doc struct {
		Photos []json.RawMessage `json:"photos"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Len(t, doc.Photos, 1)

	// A second load is a no-op.
	photos, err = store.List()
	require.NoError(t, err)
	assert.Len(t, photos, 1)
}

func TestPhotoStoreReorder(t *testing.T) {
	store, _ := newTestPhotoStore(t)

	idA := savePhoto(t, store, "a.jpg")
	idB := savePhoto(t, store, "b.jpg")
	idC := savePhoto(t, store, "c.jpg")

	t.Run("full list", func(t *testing.T) {
		require.NoError(t, store.Reorder([]int64{idC, idA, idB}))

		photos, err := store.List()
		require.NoError(t, err)
		require.Len(t, photos, 3)
		assert.Equal(t, []int64{idC, idA, idB}, []int64{photos[0].ID, photos[1].ID, photos[2].ID})
	})

	t.Run("subset keeps the rest in relative order", func(t *testing.T) {
		// Current order is c, a, b. Listing only b moves it to the
		// front; c and a keep their relative order behind it.
		require.NoError(t, store.Reorder([]int64{idB}))

		photos, err := store.List()
		require.NoError(t, err)
		require.Len(t, photos, 3)
		assert.Equal(t, []int64{idB, idC, idA}, []int64{photos[0].ID, photos[1].ID, photos[2].ID})
	})

	t.Run("unknown ids are ignored", func(t *testing.T) {
		require.NoError(t, store.Reorder([]int64{999, idA, idB, idC}))

		photos, err := store.List()
		require.NoError(t, err)
		assert.Len(t, photos, 3)
		assert.Equal(t, idA, photos[0].ID)
	})
}

func TestPhotoStoreUpdate(t *testing.T) {
	store, _ := newTestPhotoStore(t)
	id := savePhoto(t, store, "a.jpg")

	title := "Engagement shoot"
	photo, err := store.Update(id, PhotoPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, photo.Title)

	// Untouched fields survive a partial patch.
	desc := "Golden hour"
	photo, err = store.Update(id, PhotoPatch{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, title, photo.Title)
	assert.Equal(t, desc, photo.Description)

	_, err = store.Update(999, PhotoPatch{Title: &title})
	assert.ErrorIs(t, err, ErrPhotoNotFound)
}

func TestPhotoStoreDelete(t *testing.T) {
	store, photosDir := newTestPhotoStore(t)
	id := savePhoto(t, store, "a.jpg")

	photos, err := store.List()
	require.NoError(t, err)
	filename := photos[0].Filename

	require.NoError(t, store.Delete(id))

	_, err = os.Stat(filepath.Join(photosDir, filename))
	assert.True(t, os.IsNotExist(err))

	photos, err = store.List()
	require.NoError(t, err)
	assert.Empty(t, photos)

	assert.ErrorIs(t, store.Delete(id), ErrPhotoNotFound)
}

func TestPhotoStoreMemberPhoto(t *testing.T) {
	store, photosDir := newTestPhotoStore(t)

	filename, err := store.SaveMemberPhoto("bride", "maid of honor!.png", []byte("img"))
	require.NoError(t, err)
	assert.Contains(t, filename, "wedding-party-bride-")
	assert.NotContains(t, filename, " ")
	assert.NotContains(t, filename, "!")

	_, err = os.Stat(filepath.Join(photosDir, filename))
	require.NoError(t, err)

	// Member photos never appear in the tracked collection.
	photos, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, photos)

	require.NoError(t, store.RemoveFile(filename))
	// Removing again is fine.
	require.NoError(t, store.RemoveFile(filename))

	assert.Error(t, store.RemoveFile("../escape.png"))
}

func TestPhotoStoreFilePath(t *testing.T) {
	store, photosDir := newTestPhotoStore(t)

	path, err := store.FilePath("123-pic.jpg")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(photosDir, "123-pic.jpg"), path)

	_, err = store.FilePath("../secrets.txt")
	assert.Error(t, err)
	_, err = store.FilePath("..")
	assert.Error(t, err)
}
