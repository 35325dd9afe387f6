// Package storage provides the local key-value text store snapshots are
// persisted to.
package storage

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/formcraft/formcraft-cli/pkg/models"
)

var (
	ErrNotFound       = errors.New("key not found")
	ErrEmptyKey       = errors.New("key cannot be empty")
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// KV is a flat string key-value store. Get returns ErrNotFound for keys
// that were never set.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Close() error
}

// Open returns the backend named by settings, rooted at projectDir
func Open(settings models.StorageSettings, projectDir string) (KV, error) {
	switch settings.Backend {
	case "", models.StorageBackendFile:
		return NewFileKV(filepath.Join(projectDir, FileStoreDir)), nil
	case models.StorageBackendBolt:
		return OpenBoltKV(filepath.Join(projectDir, BoltFileName))
	case models.StorageBackendMemory:
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, settings.Backend)
	}
}
