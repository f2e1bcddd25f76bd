package filemgr

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const thumbWidth = 300

// LocalStore saves uploaded images under a static directory and serves
// them by URL. It satisfies ingest.Uploader.
type LocalStore struct {
	BaseDir string // e.g. ./static/eventpic
	BaseURL string // e.g. /static/eventpic
}

// NewLocalStore builds a store rooted at dir, served under urlPrefix.
func NewLocalStore(dir, urlPrefix string) *LocalStore {
	return &LocalStore{BaseDir: dir, BaseURL: urlPrefix}
}

// Upload decodes the image bytes (rejecting anything that is not a valid
// image), writes the original as JPEG plus a 300px-wide thumbnail, and
// returns the public URL of the original.
func (s *LocalStore) Upload(_ context.Context, data []byte, category string) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	name := uuid.New().String() + ".jpg"
	dir := filepath.Join(s.BaseDir, category)
	thumbDir := filepath.Join(dir, "thumb")

	if err := os.MkdirAll(thumbDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	if err := imaging.Save(img, filepath.Join(dir, name)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(thumbDir, name)); err != nil {
		return "", fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return s.BaseURL + "/" + category + "/" + name, nil
}
