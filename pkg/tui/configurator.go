package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cast"

	"github.com/formcraft/formcraft-cli/pkg/models"
	"github.com/formcraft/formcraft-cli/pkg/preview"
)

// Configurator rows before the type specific ones
const (
	rowLabel = iota
	rowPlaceholder
	rowRequired
	rowExtra // first min/max or option row
)

// ConfiguratorModel edits the selected field. Every keystroke that changes
// a value produces a patch; the builder applies it to the store.
type ConfiguratorModel struct {
	keys keyMap

	field   models.Field
	loaded  bool
	focused bool
	focus   int

	label       textinput.Model
	placeholder textinput.Model
	min         textinput.Model
	max         textinput.Model
	options     []textinput.Model

	boundErr map[int]string
}

// NewConfigurator creates an empty configurator
func NewConfigurator() *ConfiguratorModel {
	return &ConfiguratorModel{
		keys:        defaultKeyMap(),
		label:       newInput("Label"),
		placeholder: newInput("Placeholder"),
		min:         newInput("none"),
		max:         newInput("none"),
		boundErr:    make(map[int]string),
	}
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 120
	return ti
}

// FieldID returns the id of the field being edited, "" when none
func (c *ConfiguratorModel) FieldID() string {
	if !c.loaded {
		return ""
	}
	return c.field.ID
}

// Load points the configurator at f, replacing all input contents
func (c *ConfiguratorModel) Load(f models.Field) {
	c.field = f.Clone()
	c.loaded = true
	c.boundErr = make(map[int]string)

	c.label.SetValue(f.Label)
	c.placeholder.SetValue(f.Placeholder)
	c.min.SetValue(formatBound(f.Validation.Min))
	c.max.SetValue(formatBound(f.Validation.Max))

	c.options = make([]textinput.Model, len(f.Options))
	for i, opt := range f.Options {
		c.options[i] = newInput(fmt.Sprintf("Option %d", i+1))
		c.options[i].SetValue(opt)
	}

	if c.focus >= c.rowCount() {
		c.focus = c.rowCount() - 1
	}
	c.applyFocus()
}

// Refresh takes in an updated definition of the same field without
// touching what is being typed.
func (c *ConfiguratorModel) Refresh(f models.Field) {
	c.field = f.Clone()
	if len(f.Options) != len(c.options) {
		c.Load(f)
	}
}

// Clear drops the current field
func (c *ConfiguratorModel) Clear() {
	c.loaded = false
	c.field = models.Field{}
	c.options = nil
	c.focus = 0
}

// SetFocused marks whether the configure column has keyboard focus
func (c *ConfiguratorModel) SetFocused(focused bool) {
	c.focused = focused
	c.applyFocus()
}

// SetWidth sizes the inputs to the column
func (c *ConfiguratorModel) SetWidth(width int) {
	w := width - 4
	if w < 5 {
		w = 5
	}
	c.label.Width = w
	c.placeholder.Width = w
	c.min.Width = w / 2
	c.max.Width = w / 2
	for i := range c.options {
		c.options[i].Width = w - 4
	}
}

func (c *ConfiguratorModel) rowCount() int {
	n := rowExtra
	switch c.field.Type {
	case models.FieldTypeNumber:
		n += 2
	case models.FieldTypeDropdown:
		n += len(c.options)
	}
	return n
}

func (c *ConfiguratorModel) applyFocus() {
	inputs := c.allInputs()
	for i, in := range inputs {
		if in == nil {
			continue
		}
		if c.focused && i == c.focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

// allInputs returns a slot per row, nil for non text rows
func (c *ConfiguratorModel) allInputs() []*textinput.Model {
	inputs := []*textinput.Model{&c.label, &c.placeholder, nil}
	switch c.field.Type {
	case models.FieldTypeNumber:
		inputs = append(inputs, &c.min, &c.max)
	case models.FieldTypeDropdown:
		for i := range c.options {
			inputs = append(inputs, &c.options[i])
		}
	}
	return inputs
}

// Update handles a key press and returns the resulting patch, if any
func (c *ConfiguratorModel) Update(msg tea.KeyMsg) (models.FieldPatch, tea.Cmd) {
	if !c.loaded {
		return models.FieldPatch{}, nil
	}

	switch {
	case key.Matches(msg, c.keys.Up):
		if msg.String() == "up" {
			c.moveFocus(-1)
			return models.FieldPatch{}, nil
		}
	case key.Matches(msg, c.keys.Down):
		if msg.String() == "down" {
			c.moveFocus(1)
			return models.FieldPatch{}, nil
		}
	case key.Matches(msg, c.keys.AddOption):
		if c.field.IsDropdown() {
			return models.OptionsPatch(models.AddOption(c.field.Options)), nil
		}
		return models.FieldPatch{}, nil
	case key.Matches(msg, c.keys.RemoveOption):
		if idx := c.focus - rowExtra; c.field.IsDropdown() && idx >= 0 && idx < len(c.options) {
			return models.OptionsPatch(models.RemoveOption(c.field.Options, idx)), nil
		}
		return models.FieldPatch{}, nil
	}

	if c.focus == rowRequired {
		if key.Matches(msg, c.keys.Toggle) {
			return models.ValidationPatch(c.field.Validation.WithRequired(!c.field.Validation.Required)), nil
		}
		return models.FieldPatch{}, nil
	}

	inputs := c.allInputs()
	if c.focus >= len(inputs) || inputs[c.focus] == nil {
		return models.FieldPatch{}, nil
	}
	in := inputs[c.focus]
	before := in.Value()
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	if in.Value() == before {
		return models.FieldPatch{}, cmd
	}

	return c.patchFor(c.focus, in.Value()), cmd
}

func (c *ConfiguratorModel) moveFocus(delta int) {
	n := c.rowCount()
	c.focus = (c.focus + delta + n) % n
	c.applyFocus()
}

func (c *ConfiguratorModel) patchFor(row int, value string) models.FieldPatch {
	switch {
	case row == rowLabel:
		return models.LabelPatch(value)
	case row == rowPlaceholder:
		return models.PlaceholderPatch(value)
	case c.field.Type == models.FieldTypeNumber:
		bound, err := parseBound(value)
		if err != nil {
			c.boundErr[row] = err.Error()
			return models.FieldPatch{}
		}
		delete(c.boundErr, row)
		if row == rowExtra {
			return models.ValidationPatch(c.field.Validation.WithMin(bound))
		}
		return models.ValidationPatch(c.field.Validation.WithMax(bound))
	case c.field.IsDropdown():
		return models.OptionsPatch(models.SetOption(c.field.Options, row-rowExtra, value))
	}
	return models.FieldPatch{}
}

// parseBound turns an input into a bound; blank clears it
func parseBound(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return nil, nil
	}
	n, err := cast.ToFloat64E(s)
	if err != nil {
		return nil, fmt.Errorf("%q is not a number", s)
	}
	return models.Float(n), nil
}

func formatBound(p *float64) string {
	if p == nil {
		return ""
	}
	return preview.FormatNumber(*p)
}

// View renders the configure column body
func (c *ConfiguratorModel) View() string {
	if !c.loaded {
		return EmptyInactiveStyle.Render("Select a field to configure it.")
	}

	var b strings.Builder
	b.WriteString(TypeBadgeStyle.Render(c.field.Type.Title()+" field") + "\n\n")

	c.writeRow(&b, rowLabel, "Label", c.label.View())
	c.writeRow(&b, rowPlaceholder, "Placeholder", c.placeholder.View())

	check := "[ ]"
	if c.field.Validation.Required {
		check = "[x]"
	}
	c.writeRow(&b, rowRequired, "Required", check)

	switch c.field.Type {
	case models.FieldTypeNumber:
		c.writeRow(&b, rowExtra, "Min", c.min.View())
		c.writeRow(&b, rowExtra+1, "Max", c.max.View())
	case models.FieldTypeDropdown:
		b.WriteString(LabelStyle.Render("Options") + "\n")
		if len(c.options) == 0 {
			b.WriteString(EmptyInactiveStyle.Render("  no options") + "\n")
		}
		for i := range c.options {
			marker := "  "
			if c.focused && c.focus == rowExtra+i {
				marker = CursorStyle.Render("▸ ")
			}
			b.WriteString(fmt.Sprintf("%s%d. %s\n", marker, i+1, c.options[i].View()))
		}
	}

	return b.String()
}

func (c *ConfiguratorModel) writeRow(b *strings.Builder, row int, label, value string) {
	style := LabelStyle
	marker := "  "
	if c.focused && c.focus == row {
		style = FocusedInputStyle.Bold(true)
		marker = CursorStyle.Render("▸ ")
	}
	b.WriteString(style.Render(label) + "\n")
	b.WriteString(marker + value + "\n")
	if msg := c.boundErr[row]; msg != "" {
		b.WriteString("  " + ErrorStyle.Render(msg) + "\n")
	}
}
