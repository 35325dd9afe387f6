package examples

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formcraft/formcraft-cli/pkg/models"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"contact", "signup", "survey"}, Names())
	assert.Len(t, All(), 3)
}

func TestGet(t *testing.T) {
	tpl, err := Get(" Signup ")
	require.NoError(t, err)
	assert.Equal(t, "signup", tpl.Name)
	assert.Equal(t, 4, tpl.Len())

	_, err = Get("invoice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contact, signup, survey")
}

func TestTemplate_FieldsAreFresh(t *testing.T) {
	tpl, err := Get("contact")
	require.NoError(t, err)

	a, b := tpl.Fields(), tpl.Fields()
	require.Len(t, a, tpl.Len())

	seen := map[string]bool{}
	for i := range a {
		assert.NotEmpty(t, a[i].ID)
		assert.NotEqual(t, a[i].ID, b[i].ID)
		assert.False(t, seen[a[i].ID])
		seen[a[i].ID] = true
	}

	a[2].Options[0] = "changed"
	assert.Equal(t, "General question", tpl.Fields()[2].Options[0])
}

func TestTemplates_AreValidForms(t *testing.T) {
	for _, tpl := range All() {
		t.Run(tpl.Name, func(t *testing.T) {
			for _, f := range tpl.Fields() {
				assert.True(t, f.Type.Valid())
				assert.NotEmpty(t, f.Label)
				if f.Type == models.FieldTypeDropdown {
					assert.NotEmpty(t, f.Options)
				}
				if f.Validation.Min != nil && f.Validation.Max != nil {
					assert.LessOrEqual(t, *f.Validation.Min, *f.Validation.Max)
				}
			}
		})
	}
}
