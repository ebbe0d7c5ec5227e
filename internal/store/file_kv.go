package store

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"acctkeep/internal/domain"
)

const fileKVExt = ".json"

// FileKV stores each key as its own file under dir.
type FileKV struct {
	dir string
	mu  sync.Mutex
}

// NewFileKV returns a FileKV rooted at dir.
func NewFileKV(dir string) *FileKV {
	return &FileKV{dir: dir}
}

// Path returns the file backing key.
func (s *FileKV) Path(key string) string {
	return filepath.Join(s.dir, key+fileKVExt)
}

// Read returns the contents of the file for key; a missing file is an absent key.
func (s *FileKV) Read(key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.Path(key))
	if err != nil {
		return "", false, err
	}
	if b == nil {
		return "", false, nil
	}
	return string(b), true, nil
}

// Write replaces the file for key with value.
func (s *FileKV) Write(key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return writeFile(s.Path(key), []byte(value), 0o600)
}

// checkKey rejects keys that would escape the store directory.
func checkKey(key string) error {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("invalid key %q", key)
	}
	return nil
}

// Compile-time assertion that FileKV implements domain.KVStore.
var _ domain.KVStore = (*FileKV)(nil)
