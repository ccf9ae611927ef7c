package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/yukikurage/timeclock-api/internal/constants"
)

// PhotoStore persists report photos and returns the URL they are served under.
type PhotoStore interface {
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
}

// FilePhotoStore writes photos to a directory of an afero filesystem.
type FilePhotoStore struct {
	fs  afero.Fs
	dir string
	now func() time.Time
}

// NewFilePhotoStore creates the upload directory if needed.
func NewFilePhotoStore(fs afero.Fs, dir string) (*FilePhotoStore, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}
	return &FilePhotoStore{fs: fs, dir: dir, now: time.Now}, nil
}

// Save stores the content under a generated name and returns /uploads/<name>.
func (s *FilePhotoStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := s.generateName(originalName)
	f, err := s.fs.OpenFile(filepath.Join(s.dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create photo file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = s.fs.Remove(filepath.Join(s.dir, name))
		return "", fmt.Errorf("failed to write photo: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close photo file: %w", err)
	}

	return path.Join(constants.UploadsURLPrefix, name), nil
}

// FS exposes the upload directory for static serving.
func (s *FilePhotoStore) FS() afero.Fs {
	return afero.NewBasePathFs(s.fs, s.dir)
}

// generateName keeps the original extension only; the rest of the client
// supplied name never reaches the filesystem.
func (s *FilePhotoStore) generateName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	if len(ext) > 10 || strings.ContainsAny(ext, `/\`) {
		ext = ""
	}
	return fmt.Sprintf("%d-%s%s", s.now().UnixMilli(), uuid.NewString(), ext)
}
