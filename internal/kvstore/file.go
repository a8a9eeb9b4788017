package kvstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists each key as a file under a directory, the way the
// application's YAML databases are laid out on disk.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir, creating the directory when
// it does not exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("error creating store directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// keyPath maps a key to a file path. Path separators in keys are replaced
// so a key can never escape the store directory.
func (s *FileStore) keyPath(key string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(s.dir, safe+".yaml")
}

func (s *FileStore) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("error reading key %q: %w", key, err)
	}
	return string(data), true, nil
}

func (s *FileStore) Set(key, value string) error {
	if err := os.WriteFile(s.keyPath(key), []byte(value), 0600); err != nil {
		return fmt.Errorf("error writing key %q: %w", key, err)
	}
	return nil
}

func (s *FileStore) Delete(key string) error {
	if err := os.Remove(s.keyPath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing key %q: %w", key, err)
	}
	return nil
}
