package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStoreDir is the directory, relative to the project dir, holding one
// file per key
const FileStoreDir = "store"

// FileKV stores each key as <dir>/<key>.json
type FileKV struct {
	dir string
}

func NewFileKV(dir string) *FileKV {
	return &FileKV{dir: dir}
}

// Dir returns the directory values are written to
func (f *FileKV) Dir() string {
	return f.dir
}

func (f *FileKV) Get(key string) (string, error) {
	path, err := f.path(key)
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}

	return string(content), nil
}

func (f *FileKV) Set(key, value string) error {
	path, err := f.path(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	// Write to a temp file first so a crash never leaves a half written snapshot
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	return nil
}

func (f *FileKV) Close() error {
	return nil
}

func (f *FileKV) path(key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(f.dir, key+".json"), nil
}
