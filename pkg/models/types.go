package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// FieldType is the closed set of field kinds a form can hold
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDropdown FieldType = "dropdown"
)

// FieldTypes lists every supported type in the order the builder offers them
var FieldTypes = []FieldType{FieldTypeText, FieldTypeNumber, FieldTypeDropdown}

var ErrUnknownFieldType = errors.New("unknown field type")

// Default bounds and options for freshly created fields
const (
	DefaultNumberMin = 0
	DefaultNumberMax = 100
)

var defaultDropdownOptions = []string{"Option 1", "Option 2", "Option 3"}

// Valid reports whether t is one of the supported field types
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeDropdown:
		return true
	}
	return false
}

// Title returns the type name with its first letter upper-cased
func (t FieldType) Title() string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseFieldType parses a user supplied type name, ignoring case
func ParseFieldType(s string) (FieldType, error) {
	t := FieldType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q (expected text, number or dropdown)", ErrUnknownFieldType, s)
	}
	return t, nil
}

// Validation holds the rules the preview form enforces for a field.
// Min and Max are only meaningful for number fields; nil means unset.
type Validation struct {
	Required bool     `json:"required" yaml:"required"`
	Min      *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max      *float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

// Field is a single form element definition
type Field struct {
	ID          string     `json:"id" yaml:"id"`
	Type        FieldType  `json:"type" yaml:"type"`
	Label       string     `json:"label" yaml:"label"`
	Placeholder string     `json:"placeholder" yaml:"placeholder"`
	Validation  Validation `json:"validation" yaml:"validation"`
	Options     []string   `json:"options,omitempty" yaml:"options,omitempty"`
}

// NewField builds a field of the given type with a fresh id and the
// type-specific defaults.
func NewField(t FieldType) Field {
	return NewFieldWithID(uuid.NewString(), t)
}

// NewFieldWithID is NewField with a caller supplied id
func NewFieldWithID(id string, t FieldType) Field {
	f := Field{
		ID:          id,
		Type:        t,
		Label:       fmt.Sprintf("New %s Field", t.Title()),
		Placeholder: "",
		Validation:  Validation{Required: false},
	}

	switch t {
	case FieldTypeNumber:
		f.Validation.Min = Float(DefaultNumberMin)
		f.Validation.Max = Float(DefaultNumberMax)
	case FieldTypeDropdown:
		f.Options = append([]string(nil), defaultDropdownOptions...)
	}

	return f
}

// Clone returns a deep copy so callers never share pointers or slices with
// the original.
func (f Field) Clone() Field {
	out := f
	out.Validation = f.Validation.Clone()
	if f.Options != nil {
		out.Options = append([]string{}, f.Options...)
	}
	return out
}

// IsDropdown reports whether the field carries options
func (f Field) IsDropdown() bool {
	return f.Type == FieldTypeDropdown
}

// Clone returns a copy of v with its own bound pointers
func (v Validation) Clone() Validation {
	out := v
	if v.Min != nil {
		out.Min = Float(*v.Min)
	}
	if v.Max != nil {
		out.Max = Float(*v.Max)
	}
	return out
}

// WithRequired returns a copy of v with Required set
func (v Validation) WithRequired(required bool) Validation {
	out := v.Clone()
	out.Required = required
	return out
}

// WithMin returns a copy of v with Min replaced; nil clears the bound
func (v Validation) WithMin(min *float64) Validation {
	out := v.Clone()
	out.Min = copyFloat(min)
	return out
}

// WithMax returns a copy of v with Max replaced; nil clears the bound
func (v Validation) WithMax(max *float64) Validation {
	out := v.Clone()
	out.Max = copyFloat(max)
	return out
}

// Float returns a pointer to n
func Float(n float64) *float64 {
	return &n
}

func copyFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	return Float(*p)
}
