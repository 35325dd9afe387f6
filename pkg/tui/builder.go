package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/formcraft/formcraft-cli/internal/logging"
	"github.com/formcraft/formcraft-cli/pkg/models"
	"github.com/formcraft/formcraft-cli/pkg/reorder"
	"github.com/formcraft/formcraft-cli/pkg/store"
)

type column int

const (
	fieldsColumn column = iota
	configColumn
	previewColumn
)

// BuilderModel is the three column form builder: the field list, the
// selected field's configuration and the live preview.
type BuilderModel struct {
	store    *store.Store
	settings *models.Settings
	keys     keyMap

	layout *SharedLayout
	width  int
	height int
	active column

	configurator *ConfiguratorModel
	preview      *PreviewPaneModel
	confirm      *ConfirmationModel
	notice       *NoticeModel

	// drag state
	gesture *reorder.Gesture
	hover   int

	// first visible card in the fields column
	offset int
	dirty  bool

	clipboardWrite func(string) error
	unsubscribe    func()
}

// NewBuilderModel creates a builder bound to s. The builder subscribes to
// the store for its whole lifetime; call Close to detach.
func NewBuilderModel(s *store.Store, settings *models.Settings) *BuilderModel {
	if settings == nil {
		settings = models.DefaultSettings()
	}

	m := &BuilderModel{
		store:          s,
		settings:       settings,
		keys:           defaultKeyMap(),
		layout:         NewSharedLayout(0, 0, settings.UI.ShowPreview),
		configurator:   NewConfigurator(),
		preview:        NewPreviewPane(),
		confirm:        NewConfirmation(),
		notice:         &NoticeModel{},
		hover:          -1,
		clipboardWrite: clipboard.WriteAll,
	}

	m.unsubscribe = s.Subscribe(m.onStoreChange)
	m.preview.Sync(s.State())
	if f, ok := s.Selected(); ok {
		m.configurator.Load(f)
	}
	m.setActive(fieldsColumn)
	return m
}

// Close detaches the builder from the store
func (m *BuilderModel) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *BuilderModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the layout and every sized sub-model
func (m *BuilderModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.layout.SetSize(width, height)

	inner := m.layout.GetColumnWidth() - 2
	m.configurator.SetWidth(inner)
	m.preview.SetSize(inner, m.layout.BodyHeight())
	m.ensureVisible()
}

// onStoreChange keeps the configurator and preview in step with the store
func (m *BuilderModel) onStoreChange(ch store.Change) {
	logging.Debug("store change",
		zap.Stringer("kind", ch.Kind),
		zap.String("field", ch.FieldID),
		zap.Uint64("revision", ch.State.Revision))

	switch ch.Kind {
	case store.SnapshotSaved, store.SnapshotLoaded:
		m.dirty = false
	case store.SelectionChanged:
	default:
		m.dirty = true
	}

	m.preview.Sync(ch.State)

	selected := ch.State.SelectedID
	switch {
	case selected == "":
		m.configurator.Clear()
	case selected != m.configurator.FieldID():
		if f, ok := m.store.Field(selected); ok {
			m.configurator.Load(f)
		}
	case ch.Kind == store.FieldUpdated && ch.FieldID == selected:
		if f, ok := m.store.Field(selected); ok {
			m.configurator.Refresh(f)
		}
	}
	m.configurator.SetFocused(m.active == configColumn)

	m.ensureVisible()
}

func (m *BuilderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case NoticeMsg:
		m.notice.Show(msg.Kind, msg.Message)
		return m, nil

	case tea.MouseMsg:
		if m.notice.Active() || m.confirm.Active() {
			return m, nil
		}
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *BuilderModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Force) {
		return tea.Quit
	}
	if m.notice.Active() {
		m.notice.Update(msg)
		return nil
	}
	if m.confirm.Active() {
		return m.confirm.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.NextColumn):
		m.cycleColumn(1)
		return nil
	case key.Matches(msg, m.keys.PrevColumn):
		m.cycleColumn(-1)
		return nil
	case key.Matches(msg, m.keys.Save):
		return m.saveForm()
	case key.Matches(msg, m.keys.Load):
		return m.requestLoad()
	case key.Matches(msg, m.keys.Back) && m.active != fieldsColumn:
		m.setActive(fieldsColumn)
		return nil
	}

	switch m.active {
	case configColumn:
		patch, cmd := m.configurator.Update(msg)
		if id := m.configurator.FieldID(); id != "" && !patch.Empty() {
			m.store.UpdateField(id, patch)
		}
		return cmd
	case previewColumn:
		return m.preview.Update(msg)
	}

	return m.handleFieldsKey(msg)
}

func (m *BuilderModel) handleFieldsKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.AddText):
		return m.addField(models.FieldTypeText)
	case key.Matches(msg, m.keys.AddNumber):
		return m.addField(models.FieldTypeNumber)
	case key.Matches(msg, m.keys.AddDropdown):
		return m.addField(models.FieldTypeDropdown)
	case key.Matches(msg, m.keys.MoveUp):
		return m.moveSelected(-1)
	case key.Matches(msg, m.keys.MoveDown):
		return m.moveSelected(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Remove):
		return m.requestRemove()
	case key.Matches(msg, m.keys.Copy):
		return m.copySnapshot()
	case key.Matches(msg, m.keys.Preview):
		return m.togglePreview()
	case key.Matches(msg, m.keys.Toggle):
		if m.store.SelectedID() != "" {
			m.setActive(configColumn)
		}
	}
	return nil
}

func (m *BuilderModel) cycleColumn(delta int) {
	n := m.layout.ColumnCount()
	m.setActive(column((int(m.active) + delta + n) % n))
}

func (m *BuilderModel) setActive(c column) {
	m.active = c
	m.configurator.SetFocused(c == configColumn)
	m.preview.SetFocused(c == previewColumn)
}

// moveCursor selects the field delta positions away from the selection
func (m *BuilderModel) moveCursor(delta int) {
	n := m.store.Len()
	if n == 0 {
		return
	}

	idx := m.store.IndexOf(m.store.SelectedID())
	switch {
	case idx < 0 && delta > 0:
		idx = 0
	case idx < 0:
		idx = n - 1
	default:
		idx += delta
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}

	if f, ok := m.store.At(idx); ok {
		m.store.SelectField(f.ID)
	}
}

// ensureVisible scrolls the fields column so the selection is on screen
func (m *BuilderModel) ensureVisible() {
	visible := m.layout.VisibleCards()
	n := m.store.Len()

	if idx := m.store.IndexOf(m.store.SelectedID()); idx >= 0 {
		if idx < m.offset {
			m.offset = idx
		}
		if idx >= m.offset+visible {
			m.offset = idx - visible + 1
		}
	}

	maxOffset := n - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// scroll moves the fields column without changing the selection
func (m *BuilderModel) scroll(delta int) {
	m.offset += delta
	maxOffset := m.store.Len() - m.layout.VisibleCards()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
