package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/formcraft/formcraft-cli/pkg/models"
	"github.com/formcraft/formcraft-cli/pkg/storage"
)

var (
	ErrSnapshotNotFound = errors.New("no saved form found")
	ErrSnapshotCorrupt  = errors.New("saved form could not be parsed")
	ErrNoStorage        = errors.New("store has no storage configured")
)

// SnapshotKey returns the key snapshots are read from and written to
func (s *Store) SnapshotKey() string {
	return s.snapshotKey
}

// SaveSnapshot writes the whole field sequence under the snapshot key,
// replacing any previous snapshot.
func (s *Store) SaveSnapshot() error {
	if s.kv == nil {
		return ErrNoStorage
	}

	text, err := EncodeFields(s.fields)
	if err != nil {
		return fmt.Errorf("failed to encode form: %w", err)
	}

	if err := s.kv.Set(s.snapshotKey, text); err != nil {
		s.logger.Error("snapshot save failed", zap.String("key", s.snapshotKey), zap.Error(err))
		return fmt.Errorf("failed to save form: %w", err)
	}

	s.logger.Info("snapshot saved", zap.String("key", s.snapshotKey), zap.Int("fields", len(s.fields)))
	s.notify(SnapshotSaved, "")
	return nil
}

// LoadSnapshot replaces the field sequence with the saved snapshot and
// clears the selection. On any error the current state is left untouched.
func (s *Store) LoadSnapshot() error {
	if s.kv == nil {
		return ErrNoStorage
	}

	text, err := s.kv.Get(s.snapshotKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrSnapshotNotFound
		}
		return fmt.Errorf("failed to read saved form: %w", err)
	}

	fields, err := DecodeFields(text)
	if err != nil {
		s.logger.Error("failed to parse saved form",
			zap.String("key", s.snapshotKey),
			zap.Int("bytes", len(text)),
			zap.Error(err))
		return err
	}

	s.Replace(fields)
	s.logger.Info("snapshot loaded", zap.String("key", s.snapshotKey), zap.Int("fields", len(fields)))
	return nil
}

// Replace swaps in a new field sequence wholesale and clears the selection.
// Callers are expected to pass validated fields, see DecodeFields.
func (s *Store) Replace(fields []models.Field) {
	next := make([]models.Field, len(fields))
	for i, f := range fields {
		next[i] = f.Clone()
	}
	s.fields = next
	s.selectedID = ""
	s.revision++
	s.notify(SnapshotLoaded, "")
}

// EncodeFields serialises fields to the snapshot text format
func EncodeFields(fields []models.Field) (string, error) {
	if fields == nil {
		fields = []models.Field{}
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeFields parses snapshot text. Anything that is not a JSON array of
// well formed fields yields an error wrapping ErrSnapshotCorrupt.
func DecodeFields(text string) ([]models.Field, error) {
	var fields []models.Field
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotCorrupt, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: expected a list of fields", ErrSnapshotCorrupt)
	}

	seen := make(map[string]bool, len(fields))
	for i := range fields {
		f := &fields[i]
		if f.ID == "" {
			return nil, fmt.Errorf("%w: field %d has no id", ErrSnapshotCorrupt, i)
		}
		if !f.Type.Valid() {
			return nil, fmt.Errorf("%w: field %s has unknown type %q", ErrSnapshotCorrupt, f.ID, f.Type)
		}
		if seen[f.ID] {
			return nil, fmt.Errorf("%w: duplicate field id %s", ErrSnapshotCorrupt, f.ID)
		}
		seen[f.ID] = true

		// An empty option list is dropped by omitempty on save
		if f.IsDropdown() && f.Options == nil {
			f.Options = []string{}
		}
		if !f.IsDropdown() {
			f.Options = nil
		}
	}

	return fields, nil
}
