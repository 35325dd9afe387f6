package store

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formcraft/formcraft-cli/pkg/models"
	"github.com/formcraft/formcraft-cli/pkg/storage"
)

type failingKV struct {
	storage.KV
	err error
}

func (f failingKV) Set(string, string) error { return f.err }

func populated(t *testing.T, s *Store) {
	t.Helper()
	text := s.AddField(models.FieldTypeText)
	num := s.AddField(models.FieldTypeNumber)
	drop := s.AddField(models.FieldTypeDropdown)

	s.UpdateField(text.ID, models.FieldPatch{
		Label:       strPtr("Full name"),
		Placeholder: strPtr("Jane Doe"),
		Validation:  &models.Validation{Required: true},
	})
	s.UpdateField(num.ID, models.ValidationPatch(models.Validation{Min: models.Float(-2.5)}))
	s.UpdateField(drop.ID, models.OptionsPatch([]string{"Red", "Red", "Blue"}))
}

func strPtr(s string) *string { return &s }

func TestSnapshot_RoundTrip(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := New(kv, WithIDGenerator(sequentialIDs()))
	populated(t, s)
	want := s.Fields()

	require.NoError(t, s.SaveSnapshot())

	// Mutate after saving so the load is observable
	s.AddField(models.FieldTypeText)
	s.ReorderFields(0, 2)
	s.SelectField("id-2")

	require.NoError(t, s.LoadSnapshot())

	if diff := cmp.Diff(want, s.Fields()); diff != "" {
		t.Errorf("LoadSnapshot() mismatch (-saved +loaded):\n%s", diff)
	}
	assert.Equal(t, "", s.SelectedID(), "load clears selection")
}

func TestSnapshot_RoundTripEmptyOptions(t *testing.T) {
	s := New(storage.NewMemoryKV(), WithIDGenerator(sequentialIDs()))
	f := s.AddField(models.FieldTypeDropdown)
	s.UpdateField(f.ID, models.OptionsPatch(nil))
	want := s.Fields()

	require.NoError(t, s.SaveSnapshot())
	require.NoError(t, s.LoadSnapshot())

	if diff := cmp.Diff(want, s.Fields()); diff != "" {
		t.Errorf("mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestLoadSnapshot_NotFound(t *testing.T) {
	s := newTestStore()
	s.AddField(models.FieldTypeText)

	err := s.LoadSnapshot()
	assert.True(t, errors.Is(err, ErrSnapshotNotFound))
	assert.Equal(t, 1, s.Len())
}

func TestLoadSnapshot_CorruptLeavesStateUnchanged(t *testing.T) {
	corrupt := []struct {
		name string
		text string
	}{
		{"not json", "{not json"},
		{"null", "null"},
		{"object", `{"id":"a"}`},
		{"missing id", `[{"type":"text","label":"x","validation":{}}]`},
		{"unknown type", `[{"id":"a","type":"checkbox","label":"x","validation":{}}]`},
		{"duplicate ids", `[{"id":"a","type":"text"},{"id":"a","type":"text"}]`},
		{"wrong value type", `[{"id":"a","type":"number","validation":{"min":"zero"}}]`},
	}

	for _, tt := range corrupt {
		t.Run(tt.name, func(t *testing.T) {
			kv := storage.NewMemoryKV()
			s := New(kv, WithIDGenerator(sequentialIDs()))
			populated(t, s)
			s.SelectField("id-2")
			before := s.State()

			require.NoError(t, kv.Set(s.SnapshotKey(), tt.text))

			loads := 0
			s.Subscribe(func(Change) { loads++ })

			err := s.LoadSnapshot()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSnapshotCorrupt), "got %v", err)

			if diff := cmp.Diff(before, s.State()); diff != "" {
				t.Errorf("state changed after corrupt load (-before +after):\n%s", diff)
			}
			assert.Zero(t, loads)
		})
	}
}

func TestLoadSnapshot_BumpsRevisionAndNotifies(t *testing.T) {
	s := newTestStore()
	s.AddField(models.FieldTypeText)
	require.NoError(t, s.SaveSnapshot())
	rev := s.Revision()

	var kinds []ChangeKind
	s.Subscribe(func(c Change) { kinds = append(kinds, c.Kind) })

	require.NoError(t, s.LoadSnapshot())
	assert.Greater(t, s.Revision(), rev)
	assert.Equal(t, []ChangeKind{SnapshotLoaded}, kinds)
}

func TestSaveSnapshot_Overwrites(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := New(kv, WithIDGenerator(sequentialIDs()))
	s.AddField(models.FieldTypeText)
	require.NoError(t, s.SaveSnapshot())

	s.AddField(models.FieldTypeNumber)
	require.NoError(t, s.SaveSnapshot())

	other := New(kv)
	require.NoError(t, other.LoadSnapshot())
	assert.Equal(t, 2, other.Len())
}

func TestSaveSnapshot_Failure(t *testing.T) {
	boom := errors.New("disk full")
	s := New(failingKV{KV: storage.NewMemoryKV(), err: boom})
	s.AddField(models.FieldTypeText)

	err := s.SaveSnapshot()
	assert.ErrorIs(t, err, boom)
}

func TestSnapshot_CustomKey(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := New(kv, WithSnapshotKey("contact-form"))
	s.AddField(models.FieldTypeText)
	require.NoError(t, s.SaveSnapshot())

	_, err := kv.Get("contact-form")
	assert.NoError(t, err)
	_, err = kv.Get(models.DefaultSnapshotKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSnapshot_NoStorage(t *testing.T) {
	s := New(nil)
	assert.ErrorIs(t, s.SaveSnapshot(), ErrNoStorage)
	assert.ErrorIs(t, s.LoadSnapshot(), ErrNoStorage)
}

func TestEncodeFields_Format(t *testing.T) {
	f := models.NewFieldWithID("a", models.FieldTypeNumber)
	text, err := EncodeFields([]models.Field{f})
	require.NoError(t, err)

	assert.JSONEq(t,
		`[{"id":"a","type":"number","label":"New Number Field","placeholder":"","validation":{"required":false,"min":0,"max":100}}]`,
		text)

	empty, err := EncodeFields(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", empty)
}

func TestDecodeFields_StripsOptionsFromNonDropdown(t *testing.T) {
	fields, err := DecodeFields(`[{"id":"a","type":"text","options":["x"]},{"id":"b","type":"dropdown"}]`)
	require.NoError(t, err)
	assert.Nil(t, fields[0].Options)
	assert.Equal(t, []string{}, fields[1].Options)
}
