package storage

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestFilePhotoStore_Save(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := NewFilePhotoStore(fs, "uploads")
	require.NoError(t, err)
	store.now = func() time.Time { return time.UnixMilli(1700000000000) }

	url, err := store.Save(context.Background(), "IMG_01.JPG", bytes.NewBufferString("jpeg-bytes"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/uploads/1700000000000-"), url)
	require.True(t, strings.HasSuffix(url, ".jpg"), url)

	name := strings.TrimPrefix(url, "/uploads/")
	content, err := afero.ReadFile(fs, filepath.Join("uploads", name))
	require.NoError(t, err)
	require.Equal(t, "jpeg-bytes", string(content))

	served, err := afero.ReadFile(store.FS(), name)
	require.NoError(t, err)
	require.Equal(t, "jpeg-bytes", string(served))
}

func TestFilePhotoStore_NamesAreUnique(t *testing.T) {
	store, err := NewFilePhotoStore(afero.NewMemMapFs(), "uploads")
	require.NoError(t, err)
	store.now = func() time.Time { return time.UnixMilli(1) }

	a, err := store.Save(context.Background(), "a.png", bytes.NewBufferString("a"))
	require.NoError(t, err)
	b, err := store.Save(context.Background(), "a.png", bytes.NewBufferString("b"))
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestFilePhotoStore_StripsClientPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := NewFilePhotoStore(fs, "uploads")
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "../../etc/passwd", bytes.NewBufferString("x"))
	require.NoError(t, err)
	require.NotContains(t, url, "..")
	require.NotContains(t, url, "passwd")
}

func TestFilePhotoStore_CanceledContext(t *testing.T) {
	store, err := NewFilePhotoStore(afero.NewMemMapFs(), "uploads")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = store.Save(ctx, "a.png", bytes.NewBufferString("a"))
	require.ErrorIs(t, err, context.Canceled)
}
