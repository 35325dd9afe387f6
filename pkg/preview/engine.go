package preview

import (
	"errors"

	"github.com/formcraft/formcraft-cli/pkg/models"
	"github.com/formcraft/formcraft-cli/pkg/store"
)

var ErrInvalid = errors.New("form has validation errors")

// Engine holds the preview form's entered values and their errors
type Engine struct {
	fields   []models.Field
	revision uint64
	synced   bool

	values map[string]Value
	errors map[string]string
}

func NewEngine() *Engine {
	return &Engine{
		values: make(map[string]Value),
		errors: make(map[string]string),
	}
}

// Sync points the engine at a new store state. A structural change (add,
// remove, reorder, load) discards every entered value since positions and
// meaning may have shifted. Other edits keep the values and re-validate
// them against the updated definitions.
func (e *Engine) Sync(state store.State) {
	e.fields = state.Fields

	if !e.synced || state.Revision != e.revision {
		e.synced = true
		e.revision = state.Revision
		e.Reset()
		return
	}

	for id, v := range e.values {
		if f, ok := e.field(id); ok {
			e.errors[id] = Validate(f, v)
		}
	}
}

// Reset clears all values and errors
func (e *Engine) Reset() {
	e.values = make(map[string]Value)
	e.errors = make(map[string]string)
}

// HandleChange records v for id and recomputes its error. The value is kept
// even when id no longer names a field.
func (e *Engine) HandleChange(id string, v Value) {
	e.values[id] = v
	if f, ok := e.field(id); ok {
		e.errors[id] = Validate(f, v)
	}
}

// Value returns the entered value for id
func (e *Engine) Value(id string) (Value, bool) {
	v, ok := e.values[id]
	return v, ok
}

// Error returns the current message for id, "" when there is none
func (e *Engine) Error(id string) string {
	return e.errors[id]
}

// Errors returns a copy of the non-empty messages keyed by field id
func (e *Engine) Errors() map[string]string {
	out := make(map[string]string)
	for id, msg := range e.errors {
		if msg != "" {
			out[id] = msg
		}
	}
	return out
}

// Valid reports whether no field currently shows an error
func (e *Engine) Valid() bool {
	return len(e.Errors()) == 0
}

// Fields returns the definitions the engine validates against
func (e *Engine) Fields() []models.Field {
	return e.fields
}

// Submit intercepts the preview form submission. It has no side effects.
func (e *Engine) Submit() error {
	if !e.Valid() {
		return ErrInvalid
	}
	return nil
}

func (e *Engine) field(id string) (models.Field, bool) {
	for _, f := range e.fields {
		if f.ID == id {
			return f, true
		}
	}
	return models.Field{}, false
}
