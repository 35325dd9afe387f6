package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/formcraft/formcraft-cli/pkg/models"
)

func numberField(min, max *float64) models.Field {
	f := models.NewFieldWithID("n", models.FieldTypeNumber)
	f.Validation.Min = min
	f.Validation.Max = max
	return f
}

func TestValidate(t *testing.T) {
	required := models.NewFieldWithID("t", models.FieldTypeText)
	required.Validation.Required = true

	requiredNumber := numberField(models.Float(0), models.Float(100))
	requiredNumber.Validation.Required = true

	requiredDropdown := models.NewFieldWithID("d", models.FieldTypeDropdown)
	requiredDropdown.Validation.Required = true

	// Inverted bounds make both checks fire; max is evaluated last
	inverted := numberField(models.Float(10), models.Float(5))

	tests := []struct {
		name  string
		field models.Field
		value Value
		want  string
	}{
		{"required empty string", required, "", MsgRequired},
		{"required nil", required, nil, MsgRequired},
		{"required filled", required, "x", ""},
		{"text not required", models.NewFieldWithID("t", models.FieldTypeText), "anything", ""},
		{"text not required empty", models.NewFieldWithID("t", models.FieldTypeText), "", ""},
		{"number above max", numberField(models.Float(0), models.Float(100)), 150, "Value must not exceed 100."},
		{"number below min", numberField(models.Float(0), models.Float(100)), -5, "Value must be at least 0."},
		{"number string above max", numberField(models.Float(0), models.Float(100)), "150", "Value must not exceed 100."},
		{"number string with spaces", numberField(models.Float(0), models.Float(100)), " -1 ", "Value must be at least 0."},
		{"number in range", numberField(models.Float(0), models.Float(100)), "42", ""},
		{"number at bounds", numberField(models.Float(0), models.Float(100)), 100, ""},
		{"number fractional bound", numberField(models.Float(2.5), nil), 1, "Value must be at least 2.5."},
		{"number no bounds", numberField(nil, nil), 1e9, ""},
		{"number not numeric", numberField(models.Float(0), models.Float(100)), "abc", ""},
		{"number empty not required", numberField(models.Float(0), models.Float(100)), "", ""},
		{"number required empty", requiredNumber, "", MsgRequired},
		{"number float value", numberField(models.Float(0), models.Float(1)), 1.5, "Value must not exceed 1."},
		{"both bounds fire, max wins", inverted, 7, "Value must not exceed 5."},
		{"dropdown required empty", requiredDropdown, "", MsgRequired},
		{"dropdown any value", requiredDropdown, "Option 2", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.field, tt.value))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "100", FormatNumber(100))
	assert.Equal(t, "2.5", FormatNumber(2.5))
	assert.Equal(t, "-3", FormatNumber(-3))
}
