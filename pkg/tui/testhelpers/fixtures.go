package testhelpers

import (
	"github.com/formcraft/formcraft-cli/pkg/models"
)

// FieldBuilder builds fields for tests without going through the store
type FieldBuilder struct {
	field models.Field
}

// NewFieldBuilder starts from the defaults a freshly added field gets
func NewFieldBuilder(id string, t models.FieldType) *FieldBuilder {
	return &FieldBuilder{field: models.NewFieldWithID(id, t)}
}

func (b *FieldBuilder) WithLabel(label string) *FieldBuilder {
	b.field.Label = label
	return b
}

func (b *FieldBuilder) WithPlaceholder(placeholder string) *FieldBuilder {
	b.field.Placeholder = placeholder
	return b
}

func (b *FieldBuilder) Required() *FieldBuilder {
	b.field.Validation.Required = true
	return b
}

// WithBounds sets min and max; nil clears a bound
func (b *FieldBuilder) WithBounds(min, max *float64) *FieldBuilder {
	b.field.Validation.Min = min
	b.field.Validation.Max = max
	return b
}

func (b *FieldBuilder) WithOptions(options ...string) *FieldBuilder {
	b.field.Options = append([]string{}, options...)
	return b
}

// Build returns a copy so the builder can be reused
func (b *FieldBuilder) Build() models.Field {
	return b.field.Clone()
}

// SampleFields is a small form with one field of every type
func SampleFields() []models.Field {
	return []models.Field{
		NewFieldBuilder("name", models.FieldTypeText).
			WithLabel("Full name").
			WithPlaceholder("Jane Doe").
			Required().
			Build(),
		NewFieldBuilder("age", models.FieldTypeNumber).
			WithLabel("Age").
			WithBounds(models.Float(18), models.Float(99)).
			Build(),
		NewFieldBuilder("color", models.FieldTypeDropdown).
			WithLabel("Favourite colour").
			WithOptions("Red", "Green", "Blue").
			Build(),
	}
}
