// Package store holds the ordered field collection of the form being built
// together with the current selection.
//
// A Store is owned by the application root and injected into the views
// that need it. It is not safe for concurrent use: every operation runs to
// completion, subscribers included, before the next one starts, which is
// what the bubbletea event loop guarantees.
package store

import (
	"go.uber.org/zap"

	"github.com/formcraft/formcraft-cli/pkg/models"
	"github.com/formcraft/formcraft-cli/pkg/storage"
)

// ChangeKind identifies what a mutation did
type ChangeKind int

const (
	FieldAdded ChangeKind = iota
	FieldRemoved
	FieldUpdated
	FieldsReordered
	SelectionChanged
	SnapshotLoaded
	SnapshotSaved
)

func (k ChangeKind) String() string {
	switch k {
	case FieldAdded:
		return "field-added"
	case FieldRemoved:
		return "field-removed"
	case FieldUpdated:
		return "field-updated"
	case FieldsReordered:
		return "fields-reordered"
	case SelectionChanged:
		return "selection-changed"
	case SnapshotLoaded:
		return "snapshot-loaded"
	case SnapshotSaved:
		return "snapshot-saved"
	default:
		return "unknown"
	}
}

// State is a read-only copy of the store contents
type State struct {
	Fields     []models.Field
	SelectedID string
	// Revision changes whenever fields are added, removed, reordered or
	// replaced by a load. Label or validation edits leave it alone.
	Revision uint64
}

// Change is delivered to subscribers after every effective mutation
type Change struct {
	Kind    ChangeKind
	FieldID string
	State   State
}

// Listener receives store changes
type Listener func(Change)

type subscription struct {
	id       int
	listener Listener
}

// Store is the single source of truth for the form definition
type Store struct {
	fields      []models.Field
	selectedID  string
	revision    uint64
	snapshotKey string

	kv     storage.KV
	logger *zap.Logger
	newID  func() string

	subs    []subscription
	nextSub int
}

// Option configures a Store
type Option func(*Store)

// WithSnapshotKey overrides the key snapshots are stored under
func WithSnapshotKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.snapshotKey = key
		}
	}
}

// WithLogger sets the logger used for diagnostics
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIDGenerator replaces the UUID generator, mainly for tests
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// New creates an empty store persisting snapshots to kv
func New(kv storage.KV, opts ...Option) *Store {
	s := &Store{
		fields:      []models.Field{},
		snapshotKey: models.DefaultSnapshotKey,
		kv:          kv,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers l for change notifications. Listeners run in
// registration order. The returned func removes the subscription.
func (s *Store) Subscribe(l Listener) func() {
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscription{id: id, listener: l})

	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify(kind ChangeKind, fieldID string) {
	if len(s.subs) == 0 {
		return
	}
	change := Change{Kind: kind, FieldID: fieldID, State: s.State()}
	// Copy so listeners may unsubscribe while being notified
	subs := append([]subscription(nil), s.subs...)
	for _, sub := range subs {
		sub.listener(change)
	}
}

// Read access

// State returns a deep copy of the current contents
func (s *Store) State() State {
	return State{
		Fields:     s.Fields(),
		SelectedID: s.selectedID,
		Revision:   s.revision,
	}
}

// Fields returns a deep copy of the field sequence
func (s *Store) Fields() []models.Field {
	out := make([]models.Field, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Clone()
	}
	return out
}

// Len returns the number of fields
func (s *Store) Len() int {
	return len(s.fields)
}

// Revision returns the structural revision, see State.Revision
func (s *Store) Revision() uint64 {
	return s.revision
}

// IndexOf returns the position of id, or -1
func (s *Store) IndexOf(id string) int {
	for i, f := range s.fields {
		if f.ID == id {
			return i
		}
	}
	return -1
}

// Field returns a copy of the field with the given id
func (s *Store) Field(id string) (models.Field, bool) {
	if i := s.IndexOf(id); i >= 0 {
		return s.fields[i].Clone(), true
	}
	return models.Field{}, false
}

// At returns a copy of the field at index
func (s *Store) At(index int) (models.Field, bool) {
	if index < 0 || index >= len(s.fields) {
		return models.Field{}, false
	}
	return s.fields[index].Clone(), true
}

// SelectedID returns the selected id, "" when nothing is selected
func (s *Store) SelectedID() string {
	return s.selectedID
}

// Selected returns the selected field if the selection points at one
func (s *Store) Selected() (models.Field, bool) {
	if s.selectedID == "" {
		return models.Field{}, false
	}
	return s.Field(s.selectedID)
}

// Mutations

// AddField appends a new field of type t and selects it
func (s *Store) AddField(t models.FieldType) models.Field {
	var f models.Field
	if s.newID != nil {
		f = models.NewFieldWithID(s.newID(), t)
	} else {
		f = models.NewField(t)
	}

	s.fields = append(s.fields, f)
	s.selectedID = f.ID
	s.revision++
	s.logger.Debug("field added", zap.String("id", f.ID), zap.String("type", string(t)))
	s.notify(FieldAdded, f.ID)

	return f.Clone()
}

// RemoveField deletes the field with id. Unknown ids are ignored. The
// selection is cleared when it pointed at the removed field.
func (s *Store) RemoveField(id string) {
	i := s.IndexOf(id)
	if i < 0 {
		return
	}

	next := make([]models.Field, 0, len(s.fields)-1)
	next = append(next, s.fields[:i]...)
	s.fields = append(next, s.fields[i+1:]...)
	if s.selectedID == id {
		s.selectedID = ""
	}
	s.revision++
	s.logger.Debug("field removed", zap.String("id", id))
	s.notify(FieldRemoved, id)
}

// UpdateField applies patch to the field with id. Unknown ids and empty
// patches are ignored.
func (s *Store) UpdateField(id string, patch models.FieldPatch) {
	i := s.IndexOf(id)
	if i < 0 || patch.Empty() {
		return
	}

	s.fields[i] = models.Apply(s.fields[i], patch)
	s.logger.Debug("field updated", zap.String("id", id))
	s.notify(FieldUpdated, id)
}

// ReorderFields moves the field at src so that it ends up at dst.
// A src outside the sequence is a no-op; dst is clamped into range.
// It reports whether the order changed.
func (s *Store) ReorderFields(src, dst int) bool {
	n := len(s.fields)
	if src < 0 || src >= n {
		return false
	}
	if dst < 0 {
		dst = 0
	}
	if dst >= n {
		dst = n - 1
	}
	if src == dst {
		return false
	}

	next := make([]models.Field, 0, n)
	next = append(next, s.fields[:src]...)
	next = append(next, s.fields[src+1:]...)
	moved := s.fields[src]
	next = append(next[:dst], append([]models.Field{moved}, next[dst:]...)...)

	s.fields = next
	s.revision++
	s.logger.Debug("fields reordered", zap.Int("from", src), zap.Int("to", dst))
	s.notify(FieldsReordered, moved.ID)
	return true
}

// SelectField sets the selection. The id is not checked against the
// collection; "" clears the selection.
func (s *Store) SelectField(id string) {
	if s.selectedID == id {
		return
	}
	s.selectedID = id
	s.notify(SelectionChanged, id)
}
