package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/formcraft/formcraft-cli/pkg/models"
	"github.com/formcraft/formcraft-cli/pkg/preview"
	"github.com/formcraft/formcraft-cli/pkg/store"
)

const emptyPreviewText = "Your form will appear here."

// PreviewPaneModel renders the live form and feeds what the user types into
// the validation engine. It never writes to the store.
type PreviewPaneModel struct {
	keys   keyMap
	engine *preview.Engine

	inputs map[string]*textinput.Model

	focus     int
	focused   bool
	submitted bool

	revision uint64
	synced   bool

	viewport viewport.Model
	width    int
}

// NewPreviewPane creates an empty preview
func NewPreviewPane() *PreviewPaneModel {
	return &PreviewPaneModel{
		keys:     defaultKeyMap(),
		engine:   preview.NewEngine(),
		inputs:   make(map[string]*textinput.Model),
		viewport: viewport.New(20, 10),
	}
}

// Engine exposes the validation engine
func (p *PreviewPaneModel) Engine() *preview.Engine {
	return p.engine
}

// Sync follows the store. Structural changes reset every entered value,
// mirroring the engine.
func (p *PreviewPaneModel) Sync(state store.State) {
	structural := !p.synced || state.Revision != p.revision
	p.synced = true
	p.revision = state.Revision

	p.engine.Sync(state)
	if structural {
		p.resetInputs(state.Fields)
		p.submitted = false
	} else {
		p.syncInputs(state.Fields)
	}

	if p.focus >= len(state.Fields) {
		p.focus = len(state.Fields) - 1
	}
	if p.focus < 0 {
		p.focus = 0
	}
	p.applyFocus()
}

func (p *PreviewPaneModel) resetInputs(fields []models.Field) {
	p.inputs = make(map[string]*textinput.Model)
	p.syncInputs(fields)
}

// syncInputs creates inputs for new fields and refreshes placeholders. A
// dropdown value that is no longer one of the options is cleared in the
// engine so it gets validated as unanswered.
func (p *PreviewPaneModel) syncInputs(fields []models.Field) {
	for _, f := range fields {
		if f.IsDropdown() {
			if v, ok := p.engine.Value(f.ID); ok && !preview.IsEmpty(v) && p.choice(f) < 0 {
				p.engine.HandleChange(f.ID, "")
			}
			continue
		}
		in, ok := p.inputs[f.ID]
		if !ok {
			ti := newInput("")
			in = &ti
			p.inputs[f.ID] = in
		}
		in.Placeholder = f.Placeholder
		in.Width = p.width - 4
	}
}

// SetFocused marks whether the preview column has keyboard focus
func (p *PreviewPaneModel) SetFocused(focused bool) {
	p.focused = focused
	p.applyFocus()
}

// SetSize sizes the viewport to the column body
func (p *PreviewPaneModel) SetSize(width, height int) {
	p.width = width
	p.viewport.Width = width
	p.viewport.Height = height
	for _, in := range p.inputs {
		in.Width = width - 4
	}
}

func (p *PreviewPaneModel) applyFocus() {
	fields := p.engine.Fields()
	for i, f := range fields {
		in, ok := p.inputs[f.ID]
		if !ok {
			continue
		}
		if p.focused && i == p.focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

// Update handles keys while the preview has focus
func (p *PreviewPaneModel) Update(msg tea.KeyMsg) tea.Cmd {
	fields := p.engine.Fields()
	if len(fields) == 0 {
		return nil
	}

	switch {
	case msg.String() == "up":
		p.focus = (p.focus - 1 + len(fields)) % len(fields)
		p.applyFocus()
		return nil
	case msg.String() == "down":
		p.focus = (p.focus + 1) % len(fields)
		p.applyFocus()
		return nil
	case key.Matches(msg, p.keys.Submit):
		return p.submit()
	}

	f := fields[p.focus]
	if f.IsDropdown() {
		switch {
		case key.Matches(msg, p.keys.PrevChoice):
			p.choose(f, p.choice(f)-1)
		case key.Matches(msg, p.keys.NextChoice), msg.String() == " ":
			p.choose(f, p.choice(f)+1)
		}
		return nil
	}

	in := p.inputs[f.ID]
	if in == nil {
		return nil
	}
	before := in.Value()
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	if in.Value() != before {
		p.submitted = false
		p.engine.HandleChange(f.ID, in.Value())
	}
	return cmd
}

// choice is the position of the engine's value among f's options, -1 when
// nothing valid is chosen
func (p *PreviewPaneModel) choice(f models.Field) int {
	v, ok := p.engine.Value(f.ID)
	if !ok {
		return -1
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return -1
	}
	for i, opt := range f.Options {
		if opt == s {
			return i
		}
	}
	return -1
}

// choose moves a dropdown's selection, wrapping through "no selection"
func (p *PreviewPaneModel) choose(f models.Field, idx int) {
	n := len(f.Options)
	if idx < -1 {
		idx = n - 1
	}
	if idx >= n {
		idx = -1
	}

	value := ""
	if idx >= 0 {
		value = f.Options[idx]
	}
	p.submitted = false
	p.engine.HandleChange(f.ID, value)
}

// submit validates every field, including ones never touched
func (p *PreviewPaneModel) submit() tea.Cmd {
	for _, f := range p.engine.Fields() {
		if _, ok := p.engine.Value(f.ID); !ok {
			p.engine.HandleChange(f.ID, "")
		}
	}
	p.submitted = true

	if err := p.engine.Submit(); err != nil {
		n := len(p.engine.Errors())
		return func() tea.Msg {
			return StatusMsg(fmt.Sprintf("× %d field(s) need attention", n))
		}
	}
	return func() tea.Msg {
		return StatusMsg("✓ Form is valid")
	}
}

// View renders the preview body into the viewport
func (p *PreviewPaneModel) View() string {
	fields := p.engine.Fields()
	if len(fields) == 0 {
		return EmptyInactiveStyle.Render(emptyPreviewText)
	}

	width := p.width
	if width < 10 {
		width = 10
	}

	var b strings.Builder
	for i, f := range fields {
		label := f.Label
		if f.Validation.Required {
			label += ErrorStyle.Render(" *")
		}
		labelStyle := LabelStyle
		marker := "  "
		if p.focused && i == p.focus {
			labelStyle = FocusedInputStyle.Bold(true)
			marker = CursorStyle.Render("▸ ")
		}
		b.WriteString(wordwrap.String(labelStyle.Render(label), width) + "\n")
		b.WriteString(marker + p.fieldControl(f) + "\n")
		if msg := p.engine.Error(f.ID); msg != "" {
			b.WriteString(wordwrap.String("  "+ErrorStyle.Render(msg), width) + "\n")
		}
		b.WriteString("\n")
	}

	button := "[ Submit ]"
	if p.submitted && p.engine.Valid() {
		button = SuccessStyle.Render("[ Submitted ✓ ]")
	}
	b.WriteString(button)

	p.viewport.SetContent(b.String())
	p.scrollToFocus()
	return p.viewport.View()
}

func (p *PreviewPaneModel) fieldControl(f models.Field) string {
	if f.IsDropdown() {
		idx := p.choice(f)
		text := f.Placeholder
		if text == "" {
			text = "Select an option"
		}
		if idx >= 0 && idx < len(f.Options) {
			return "‹ " + f.Options[idx] + " ›"
		}
		return "‹ " + PlaceholderStyle.Render(text) + " ›"
	}
	if in, ok := p.inputs[f.ID]; ok {
		return in.View()
	}
	return ""
}

// scrollToFocus keeps the focused control on screen. Each field takes
// about four rows.
func (p *PreviewPaneModel) scrollToFocus() {
	if !p.focused || p.viewport.Height <= 0 {
		return
	}
	row := p.focus * 4
	if row < p.viewport.YOffset {
		p.viewport.SetYOffset(row)
	} else if row+3 > p.viewport.YOffset+p.viewport.Height {
		p.viewport.SetYOffset(row + 3 - p.viewport.Height)
	}
}

// Scroll moves the preview by delta rows
func (p *PreviewPaneModel) Scroll(delta int) {
	p.viewport.SetYOffset(p.viewport.YOffset + delta)
}
