package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/formcraft/formcraft-cli/internal/logging"
	"github.com/formcraft/formcraft-cli/pkg/models"
	"github.com/formcraft/formcraft-cli/pkg/store"
)

// Notice texts for snapshot operations
const (
	noticeSaved       = "Form saved!"
	noticeLoaded      = "Form loaded!"
	noticeNotFound    = "No saved form found."
	noticeLoadFailed  = "Failed to load the saved form."
	noticeSaveFailedF = "Failed to save form: %v"
)

func statusCmd(format string, args ...interface{}) tea.Cmd {
	msg := StatusMsg(fmt.Sprintf(format, args...))
	return func() tea.Msg { return msg }
}

func noticeCmd(kind NoticeKind, message string) tea.Cmd {
	return func() tea.Msg {
		return NoticeMsg{Kind: kind, Message: message}
	}
}

func displayLabel(f models.Field) string {
	if f.Label == "" {
		return "(no label)"
	}
	return f.Label
}

func (m *BuilderModel) addField(t models.FieldType) tea.Cmd {
	f := m.store.AddField(t)
	return statusCmd("✓ Added %s field", f.Type)
}

func (m *BuilderModel) moveSelected(delta int) tea.Cmd {
	f, ok := m.store.Selected()
	if !ok {
		return nil
	}
	idx := m.store.IndexOf(f.ID)
	if !m.store.ReorderFields(idx, idx+delta) {
		return nil
	}
	return statusCmd("✓ Moved %q to position %d", displayLabel(f), m.store.IndexOf(f.ID)+1)
}

func (m *BuilderModel) requestRemove() tea.Cmd {
	f, ok := m.store.Selected()
	if !ok {
		return nil
	}

	m.confirm.ShowInline(fmt.Sprintf("Remove field %q?", displayLabel(f)), true,
		func() tea.Cmd {
			m.store.RemoveField(f.ID)
			return statusCmd("✓ Removed %q", displayLabel(f))
		},
		nil,
	)
	return nil
}

// saveForm writes the snapshot right away; only the notice travels as a
// message.
func (m *BuilderModel) saveForm() tea.Cmd {
	if err := m.store.SaveSnapshot(); err != nil {
		return noticeCmd(NoticeError, fmt.Sprintf(noticeSaveFailedF, err))
	}
	return noticeCmd(NoticeSuccess, noticeSaved)
}

// requestLoad asks before discarding a non-empty form
func (m *BuilderModel) requestLoad() tea.Cmd {
	if m.store.Len() == 0 {
		return m.loadForm()
	}

	cfg := ConfirmationConfig{
		Title:       "Load saved form",
		Message:     "Replace the current form with the saved one?",
		Details:     []string{fmt.Sprintf("%d field(s) will be replaced", m.store.Len())},
		Destructive: true,
		Type:        ConfirmTypeDialog,
		YesLabel:    "Load",
		NoLabel:     "Keep",
		Width:       max(20, min(60, m.width-4)),
	}
	if m.dirty {
		cfg.Warning = "Unsaved changes will be lost."
	}
	m.confirm.Show(cfg, m.loadForm, nil)
	return nil
}

func (m *BuilderModel) loadForm() tea.Cmd {
	err := m.store.LoadSnapshot()
	switch {
	case err == nil:
		m.setActive(fieldsColumn)
		return noticeCmd(NoticeSuccess, noticeLoaded)
	case errors.Is(err, store.ErrSnapshotNotFound):
		return noticeCmd(NoticeInfo, noticeNotFound)
	default:
		logging.Warn("load from builder failed", zap.Error(err))
		return noticeCmd(NoticeError, noticeLoadFailed)
	}
}

// copySnapshot puts the snapshot JSON on the clipboard
// togglePreview shows or hides the preview column and resizes the rest
func (m *BuilderModel) togglePreview() tea.Cmd {
	m.layout.SetShowPreview(!m.layout.ShowPreview)
	m.SetSize(m.width, m.height)
	if m.layout.ShowPreview {
		return statusCmd("✓ Preview shown")
	}
	return statusCmd("✓ Preview hidden")
}

func (m *BuilderModel) copySnapshot() tea.Cmd {
	text, err := store.EncodeFields(m.store.Fields())
	if err != nil {
		return statusCmd("× Failed to encode form: %v", err)
	}
	if err := m.clipboardWrite(text); err != nil {
		logging.Warn("clipboard write failed", zap.Error(err))
		return statusCmd("× Failed to copy to clipboard: %v", err)
	}
	return statusCmd("✓ Copied %d field(s) to clipboard", m.store.Len())
}
