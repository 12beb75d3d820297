package storage

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidFileName is returned for names that would escape the upload directory.
var ErrInvalidFileName = errors.New("invalid file name")

// FileStore keeps uploaded screenshots on local disk and maps them to the
// public URL prefix they are served under.
type FileStore struct {
	dir    string
	prefix string
}

// NewFileStore creates dir if needed. prefix is the URL path the directory
// is mounted at, e.g. "/uploads".
func NewFileStore(dir, prefix string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &FileStore{dir: dir, prefix: "/" + strings.Trim(prefix, "/")}, nil
}

// Dir is the directory files are written to.
func (s *FileStore) Dir() string { return s.dir }

// Prefix is the public URL prefix.
func (s *FileStore) Prefix() string { return s.prefix }

// Save writes data under a fresh random name with the given extension and
// returns its public path.
func (s *FileStore) Save(data []byte, ext string) (string, error) {
	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return s.PublicPath(name), nil
}

// PublicPath maps a stored file name to its URL path.
func (s *FileStore) PublicPath(name string) string {
	return path.Join(s.prefix, name)
}

// Remove deletes a stored file. A missing file is not an error.
func (s *FileStore) Remove(name string) error {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
