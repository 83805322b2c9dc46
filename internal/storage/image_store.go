package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ImageStore writes uploaded post images to disk under a media root. Stored
// names are uuid-prefixed so concurrent uploads of equally-named files never
// collide.
type ImageStore struct {
	root string
}

// NewImageStore creates the media root if needed and returns a store over it.
func NewImageStore(root string) (*ImageStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrap(err, "create media root")
	}
	return &ImageStore{root: root}, nil
}

// Save persists the image bytes and returns the stored file name, which the
// post keeps as its image reference.
func (s *ImageStore) Save(filename string, r io.Reader) (string, error) {
	name := uuid.NewString() + sanitizeExt(filename)
	f, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		return "", errors.Wrap(err, "create image file")
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", errors.Wrap(err, "write image file")
	}
	return name, nil
}

// Path returns the on-disk location for a stored image name.
func (s *ImageStore) Path(name string) string {
	return filepath.Join(s.root, filepath.Base(name))
}

// sanitizeExt keeps a plain lowercase extension and drops anything else the
// client-supplied name carries.
func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return ext
	default:
		return ""
	}
}
