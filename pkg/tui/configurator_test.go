package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formcraft/formcraft-cli/pkg/models"
	th "github.com/formcraft/formcraft-cli/pkg/tui/testhelpers"
)

func loadedConfigurator(f models.Field) *ConfiguratorModel {
	c := NewConfigurator()
	c.SetWidth(40)
	c.Load(f)
	c.SetFocused(true)
	return c
}

func focusRow(c *ConfiguratorModel, row int) {
	for c.focus != row {
		c.Update(th.Key("down"))
	}
}

func TestConfigurator_Empty(t *testing.T) {
	c := NewConfigurator()

	patch, cmd := c.Update(th.Key("a"))
	assert.True(t, patch.Empty())
	assert.Nil(t, cmd)
	assert.Equal(t, "", c.FieldID())
	th.AssertViewContains(t, c.View(), "Select a field")
}

func TestConfigurator_LabelAndPlaceholder(t *testing.T) {
	c := loadedConfigurator(models.NewFieldWithID("t", models.FieldTypeText))

	patch, _ := c.Update(th.Key("!"))
	require.NotNil(t, patch.Label)
	assert.Equal(t, "New Text Field!", *patch.Label)
	assert.Nil(t, patch.Validation)

	c.Update(th.Key("down"))
	patch, _ = c.Update(th.Key("x"))
	require.NotNil(t, patch.Placeholder)
	assert.Equal(t, "x", *patch.Placeholder)
	assert.Nil(t, patch.Label)
}

func TestConfigurator_NavigationKeysAreTyped(t *testing.T) {
	c := loadedConfigurator(models.NewFieldWithID("t", models.FieldTypeText))

	patch, _ := c.Update(th.Key("j"))
	require.NotNil(t, patch.Label, "j types instead of moving down")
	assert.Equal(t, rowLabel, c.focus)
}

func TestConfigurator_RequiredToggle(t *testing.T) {
	f := models.NewFieldWithID("n", models.FieldTypeNumber)
	c := loadedConfigurator(f)
	focusRow(c, rowRequired)

	patch, _ := c.Update(th.Key("space"))
	require.NotNil(t, patch.Validation)
	assert.True(t, patch.Validation.Required)
	assert.Equal(t, float64(0), *patch.Validation.Min)
	assert.Equal(t, float64(100), *patch.Validation.Max)

	patch, _ = c.Update(th.Key("x"))
	assert.True(t, patch.Empty(), "the toggle row takes no text")
}

func TestConfigurator_Bounds(t *testing.T) {
	tests := []struct {
		name    string
		row     int
		keys    []string
		wantMin *float64
		wantMax *float64
		wantErr string
	}{
		{"append to min", rowExtra, []string{"5"}, models.Float(5), models.Float(100), ""},
		{"fraction on max", rowExtra + 1, []string{".", "5"}, models.Float(0), models.Float(100.5), ""},
		{"blank clears min", rowExtra, []string{"backspace"}, nil, models.Float(100), ""},
		{"garbage is rejected", rowExtra, []string{"a"}, nil, nil, `"0a" is not a number`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := loadedConfigurator(models.NewFieldWithID("n", models.FieldTypeNumber))
			focusRow(c, tt.row)

			var patch models.FieldPatch
			for _, k := range tt.keys {
				patch, _ = c.Update(th.Key(k))
				// play the store's part so the next key sees the update
				if !patch.Empty() {
					c.Refresh(models.Apply(c.field, patch))
				}
			}

			if tt.wantErr != "" {
				assert.True(t, patch.Empty())
				th.AssertViewContains(t, c.View(), tt.wantErr)
				return
			}
			require.NotNil(t, patch.Validation)
			assert.Equal(t, tt.wantMin, patch.Validation.Min)
			assert.Equal(t, tt.wantMax, patch.Validation.Max)
		})
	}
}

func TestConfigurator_Options(t *testing.T) {
	c := loadedConfigurator(models.NewFieldWithID("d", models.FieldTypeDropdown))

	patch, _ := c.Update(th.Key("ctrl+n"))
	require.NotNil(t, patch.Options)
	assert.Equal(t, []string{"Option 1", "Option 2", "Option 3", "Option 4"}, *patch.Options)
	c.Refresh(models.Apply(c.field, patch))
	assert.Len(t, c.options, 4)

	// ctrl+d only acts on an option row
	patch, _ = c.Update(th.Key("ctrl+d"))
	assert.True(t, patch.Empty())

	focusRow(c, rowExtra+1)
	patch, _ = c.Update(th.Key("ctrl+d"))
	require.NotNil(t, patch.Options)
	assert.Equal(t, []string{"Option 1", "Option 3", "Option 4"}, *patch.Options)
	c.Refresh(models.Apply(c.field, patch))

	focusRow(c, rowExtra)
	patch, _ = c.Update(th.Key("!"))
	require.NotNil(t, patch.Options)
	assert.Equal(t, []string{"Option 1!", "Option 3", "Option 4"}, *patch.Options)
}

func TestConfigurator_NoOptionKeysOnText(t *testing.T) {
	c := loadedConfigurator(models.NewFieldWithID("t", models.FieldTypeText))

	patch, _ := c.Update(th.Key("ctrl+n"))
	assert.True(t, patch.Empty())
}

func TestConfigurator_View(t *testing.T) {
	c := loadedConfigurator(th.NewFieldBuilder("d", models.FieldTypeDropdown).
		WithLabel("Colour").
		Required().
		WithOptions().
		Build())

	view := c.View()
	th.AssertViewContains(t, view, "Dropdown field")
	th.AssertViewContains(t, view, "[x]")
	th.AssertViewContains(t, view, "no options")
}

func TestParseBound(t *testing.T) {
	tests := []struct {
		in      string
		want    *float64
		wantErr bool
	}{
		{"", nil, false},
		{"  ", nil, false},
		{"-", nil, false},
		{"42", models.Float(42), false},
		{"-3.5", models.Float(-3.5), false},
		{"abc", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseBound(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
