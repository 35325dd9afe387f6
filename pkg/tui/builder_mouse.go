package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/formcraft/formcraft-cli/pkg/reorder"
)

// handleMouse turns press, motion and release into selection and drag
// reordering on the fields column.
func (m *BuilderModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	col := m.layout.ColumnAt(msg.X)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.wheel(col, -1)
			return nil
		case tea.MouseButtonWheelDown:
			m.wheel(col, 1)
			return nil
		case tea.MouseButtonLeft:
			return m.mousePress(col, msg.Y)
		}

	case tea.MouseActionMotion:
		m.mouseMotion(msg.Y)

	case tea.MouseActionRelease:
		return m.mouseRelease()
	}

	return nil
}

func (m *BuilderModel) wheel(col column, delta int) {
	switch col {
	case fieldsColumn:
		m.scroll(delta)
	case previewColumn:
		m.preview.Scroll(delta)
	}
}

// cardIndexAt maps a screen row to a field index, -1 when no card is there
func (m *BuilderModel) cardIndexAt(y int) (int, int) {
	slot := m.layout.CardSlotAt(y)
	if slot < 0 {
		return -1, -1
	}
	idx := m.offset + slot
	if idx >= m.store.Len() {
		return -1, -1
	}
	return idx, slot
}

func (m *BuilderModel) mousePress(col column, y int) tea.Cmd {
	if col < 0 {
		return nil
	}
	m.setActive(col)
	if col != fieldsColumn {
		return nil
	}

	idx, _ := m.cardIndexAt(y)
	if idx < 0 {
		return nil
	}

	if f, ok := m.store.At(idx); ok {
		m.store.SelectField(f.ID)
		m.gesture = reorder.Begin(m.store, idx)
		m.hover = idx
	}
	return nil
}

func (m *BuilderModel) mouseMotion(y int) {
	if !m.gesture.Active() {
		return
	}

	idx, slot := m.cardIndexAt(y)
	if idx < 0 {
		return
	}
	m.hover = idx

	// Sample the centre of the cell the pointer is in
	m.gesture.Hover(idx, float64(y)+0.5, m.layout.CardBox(slot))
}

func (m *BuilderModel) mouseRelease() tea.Cmd {
	if !m.gesture.Active() {
		return nil
	}

	g := m.gesture
	g.End()
	m.gesture = nil
	m.hover = -1

	if !g.Moved() {
		return nil
	}
	f, ok := m.store.At(g.Index())
	if !ok {
		return nil
	}
	return statusCmd("✓ Moved %q to position %d", displayLabel(f), g.Index()+1)
}

// dragging reports whether the field at idx is being dragged
func (m *BuilderModel) dragging(idx int) bool {
	return m.gesture.Active() && m.gesture.Index() == idx
}
