package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/formcraft/formcraft-cli/pkg/models"
	"github.com/formcraft/formcraft-cli/pkg/preview"
)

const emptyFieldsText = "No fields yet. Press 1, 2 or 3 to add one."

func (m *BuilderModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Notices sit on top of everything until dismissed
	if m.notice.Active() {
		return lipgloss.Place(m.width, m.height-1,
			lipgloss.Center, lipgloss.Center,
			m.notice.View(m.width-8))
	}
	if m.confirm.Active() && m.confirm.IsDialog() {
		return lipgloss.Place(m.width, m.height-1,
			lipgloss.Center, lipgloss.Center,
			m.confirm.View())
	}

	var b strings.Builder

	badge := ""
	if m.dirty {
		badge = DescriptionStyle.Render("● unsaved")
	}
	b.WriteString(m.layout.RenderTitle(strings.ToUpper(m.settings.UI.Title), badge))
	b.WriteString("\n")

	columns := []string{
		m.layout.RenderColumn(ColumnHeaderConfig{
			Heading: "FIELDS",
			Active:  m.active == fieldsColumn,
			Badge:   DescriptionStyle.Render(fmt.Sprintf("(%d)", m.store.Len())),
		}, m.fieldsView()),
		m.layout.RenderColumn(ColumnHeaderConfig{
			Heading: "CONFIGURE",
			Active:  m.active == configColumn,
		}, m.configurator.View()),
	}
	if m.layout.ShowPreview {
		columns = append(columns, m.layout.RenderColumn(ColumnHeaderConfig{
			Heading: "PREVIEW",
			Active:  m.active == previewColumn,
			Badge:   m.previewBadge(),
		}, m.preview.View()))
	}
	b.WriteString(m.layout.JoinColumns(columns...))
	b.WriteString("\n")

	if m.confirm.Active() {
		b.WriteString(ContentPaddingStyle.Render(m.confirm.ViewWithWidth(m.width - 2)))
		return b.String()
	}

	b.WriteString(m.layout.RenderHelpPane(m.helpRows()))
	return b.String()
}

// fieldsView renders the visible window of field cards
func (m *BuilderModel) fieldsView() string {
	fields := m.store.Fields()
	if len(fields) == 0 {
		style := EmptyInactiveStyle
		if m.active == fieldsColumn {
			style = EmptyActiveStyle
		}
		return style.Render(wordwrap.String(emptyFieldsText, m.layout.GetColumnWidth()-2))
	}

	selected := m.store.SelectedID()
	end := m.offset + m.layout.VisibleCards()
	if end > len(fields) {
		end = len(fields)
	}

	var b strings.Builder
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderCard(i, fields[i], fields[i].ID == selected))
	}
	return b.String()
}

// renderCard draws one field as exactly cardHeight rows
func (m *BuilderModel) renderCard(idx int, f models.Field, selected bool) string {
	label := displayLabel(f)
	if f.Validation.Required {
		label += " *"
	}

	style := NormalStyle
	switch {
	case m.dragging(idx):
		style = DraggingStyle
	case selected:
		style = SelectedStyle
	}

	title := HandleStyle.Render("⋮⋮") + " " + style.Render(label)
	detail := "   " + TypeBadgeStyle.Render(f.Type.Title()) + DescriptionStyle.Render("  "+cardRules(f))
	return title + "\n" + detail + "\n\n"
}

// cardRules summarizes the validation shown under a card
func cardRules(f models.Field) string {
	switch f.Type {
	case models.FieldTypeNumber:
		lo, hi := "-∞", "∞"
		if f.Validation.Min != nil {
			lo = preview.FormatNumber(*f.Validation.Min)
		}
		if f.Validation.Max != nil {
			hi = preview.FormatNumber(*f.Validation.Max)
		}
		return lo + ".." + hi
	case models.FieldTypeDropdown:
		if len(f.Options) == 1 {
			return "1 option"
		}
		return fmt.Sprintf("%d options", len(f.Options))
	}
	if f.Placeholder != "" {
		return fmt.Sprintf("%q", f.Placeholder)
	}
	return ""
}

func (m *BuilderModel) previewBadge() string {
	engine := m.preview.Engine()
	if len(engine.Fields()) == 0 {
		return ""
	}
	if n := len(engine.Errors()); n > 0 {
		return ErrorStyle.Render(fmt.Sprintf("%d error(s)", n))
	}
	return ""
}

// helpRows depends on which column owns the keyboard
func (m *BuilderModel) helpRows() [][]string {
	k := m.keys
	global := helpItems(k.NextColumn, k.Save, k.Load, k.Force)

	switch m.active {
	case configColumn:
		return [][]string{
			append(helpItems(k.Up, k.Toggle, k.AddOption, k.RemoveOption), "type to edit"),
			append(helpItems(k.Back), global...),
		}
	case previewColumn:
		return [][]string{
			append(helpItems(k.Up, k.PrevChoice, k.Submit), "type to fill"),
			append(helpItems(k.Back), global...),
		}
	}

	return [][]string{
		helpItems(k.AddText, k.AddNumber, k.AddDropdown, k.Up, k.MoveUp, k.Remove, k.Copy, k.Preview),
		append(global, helpItems(k.Quit)...),
	}
}
