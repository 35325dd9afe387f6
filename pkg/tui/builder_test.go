package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formcraft/formcraft-cli/pkg/models"
	"github.com/formcraft/formcraft-cli/pkg/store"
	th "github.com/formcraft/formcraft-cli/pkg/tui/testhelpers"
)

// Helper to create a sized builder over a memory store
func makeTestBuilder(t *testing.T, fields ...models.Field) (*BuilderModel, *store.Store, *th.TestEnvironment) {
	t.Helper()
	env := th.NewTestEnvironment(t)
	s := env.NewStoreWith(fields...)
	m := NewBuilderModel(s, models.DefaultSettings())
	m.SetSize(120, 40)
	t.Cleanup(m.Close)
	return m, s, env
}

func fieldIDs(s *store.Store) []string {
	ids := []string{}
	for _, f := range s.Fields() {
		ids = append(ids, f.ID)
	}
	return ids
}

func TestBuilder_AddFieldKeys(t *testing.T) {
	m, s, _ := makeTestBuilder(t)

	msgs := th.SendKeys(m, th.Key("1"), th.Key("2"), th.Key("3"))

	require.Equal(t, 3, s.Len())
	types := []models.FieldType{}
	for _, f := range s.Fields() {
		types = append(types, f.Type)
	}
	assert.Equal(t, []models.FieldType{models.FieldTypeText, models.FieldTypeNumber, models.FieldTypeDropdown}, types)
	assert.Equal(t, "field-3", s.SelectedID(), "the new field is selected")
	assert.Equal(t, StatusMsg("✓ Added dropdown field"), msgs[len(msgs)-1])
	assert.Equal(t, "field-3", m.configurator.FieldID(), "configurator follows the selection")
}

func TestBuilder_AddOnlyFromFieldsColumn(t *testing.T) {
	m, s, _ := makeTestBuilder(t, th.SampleFields()...)
	s.SelectField("name")

	th.SendKeys(m, th.Key("tab"))
	require.Equal(t, configColumn, m.active)

	th.Feed(m, th.Key("1"))
	assert.Equal(t, 3, s.Len(), "digits are typed into the configurator")
	f, _ := s.Field("name")
	assert.Equal(t, "Full name1", f.Label)
}

func TestBuilder_CursorNavigation(t *testing.T) {
	m, s, _ := makeTestBuilder(t, th.SampleFields()...)

	tests := []struct {
		key  string
		want string
	}{
		{"down", "name"},
		{"j", "age"},
		{"down", "color"},
		{"down", "color"},
		{"k", "age"},
		{"up", "name"},
		{"up", "name"},
	}

	for _, tt := range tests {
		th.SendKeys(m, th.Key(tt.key))
		assert.Equal(t, tt.want, s.SelectedID(), "after %s", tt.key)
	}
}

func TestBuilder_MoveSelected(t *testing.T) {
	m, s, _ := makeTestBuilder(t, th.SampleFields()...)
	s.SelectField("age")

	msgs := th.SendKeys(m, th.Key("K"))
	assert.Equal(t, []string{"age", "name", "color"}, fieldIDs(s))
	assert.Equal(t, []interface{}{StatusMsg(`✓ Moved "Age" to position 1`)}, toInterfaces(msgs))

	// Already first: nothing happens
	msgs = th.SendKeys(m, th.Key("K"))
	assert.Empty(t, msgs)
	assert.Equal(t, []string{"age", "name", "color"}, fieldIDs(s))

	th.SendKeys(m, th.Key("J"), th.Key("J"))
	assert.Equal(t, []string{"name", "color", "age"}, fieldIDs(s))
	assert.Equal(t, "age", s.SelectedID())
}

func toInterfaces[T any](in []T) []interface{} {
	out := make([]interface{}, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}

func TestBuilder_RemoveAsksFirst(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		wantIDs []string
	}{
		{"confirm removes", "y", []string{"name", "color"}},
		{"decline keeps", "n", []string{"name", "age", "color"}},
		{"esc keeps", "esc", []string{"name", "age", "color"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, s, _ := makeTestBuilder(t, th.SampleFields()...)
			s.SelectField("age")

			th.SendKeys(m, th.Key("d"))
			require.True(t, m.confirm.Active())
			assert.True(t, m.confirm.Destructive())
			th.AssertViewContains(t, m.View(), `Remove field "Age"?`)
			assert.Equal(t, 3, s.Len(), "nothing removed before the answer")

			th.SendKeys(m, th.Key(tt.answer))
			assert.False(t, m.confirm.Active())
			assert.Equal(t, tt.wantIDs, fieldIDs(s))
		})
	}
}

func TestBuilder_RemoveClearsConfigurator(t *testing.T) {
	m, s, _ := makeTestBuilder(t, th.SampleFields()...)
	s.SelectField("age")
	require.Equal(t, "age", m.configurator.FieldID())

	msgs := th.SendKeys(m, th.Key("d"), th.Key("y"))

	assert.Equal(t, "", s.SelectedID())
	assert.Equal(t, "", m.configurator.FieldID())
	assert.Contains(t, toInterfaces(msgs), interface{}(StatusMsg(`✓ Removed "Age"`)))
}

func TestBuilder_RemoveWithoutSelection(t *testing.T) {
	m, _, _ := makeTestBuilder(t, th.SampleFields()...)

	th.SendKeys(m, th.Key("d"))
	assert.False(t, m.confirm.Active())
}

func TestBuilder_SaveShowsNotice(t *testing.T) {
	m, _, env := makeTestBuilder(t, th.SampleFields()...)

	msgs := th.SendKeys(m, th.Key("ctrl+s"))
	require.Len(t, msgs, 1)
	assert.Equal(t, NoticeMsg{Kind: NoticeSuccess, Message: "Form saved!"}, msgs[0])

	text, err := env.KV.Get(models.DefaultSnapshotKey)
	require.NoError(t, err)
	saved, err := store.DecodeFields(text)
	require.NoError(t, err)
	if diff := cmp.Diff(th.SampleFields(), saved); diff != "" {
		t.Errorf("saved snapshot mismatch (-want +got):\n%s", diff)
	}

	// The notice blocks input until dismissed
	th.Send(m, msgs[0])
	th.AssertViewContains(t, m.View(), "Form saved!")
	th.SendKeys(m, th.Key("1"))
	assert.Equal(t, 3, m.store.Len())

	th.SendKeys(m, th.Key("enter"))
	assert.False(t, m.notice.Active())
	th.AssertViewNotContains(t, m.View(), "Form saved!")
}

func TestBuilder_SaveClearsDirty(t *testing.T) {
	m, _, _ := makeTestBuilder(t)

	th.SendKeys(m, th.Key("1"))
	assert.True(t, m.dirty)
	th.AssertViewContains(t, m.View(), "unsaved")

	th.SendKeys(m, th.Key("ctrl+s"))
	assert.False(t, m.dirty)
}

func TestBuilder_Load(t *testing.T) {
	saved := []models.Field{
		th.NewFieldBuilder("email", models.FieldTypeText).WithLabel("Email").Required().Build(),
	}

	tests := []struct {
		name       string
		current    []models.Field
		seed       func(env *th.TestEnvironment)
		keys       []string
		wantNotice NoticeMsg
		wantIDs    []string
	}{
		{
			name:       "nothing saved",
			seed:       func(*th.TestEnvironment) {},
			keys:       []string{"ctrl+l"},
			wantNotice: NoticeMsg{Kind: NoticeInfo, Message: "No saved form found."},
			wantIDs:    []string{},
		},
		{
			name:       "empty form loads without asking",
			seed:       func(env *th.TestEnvironment) { env.SeedSnapshot(saved...) },
			keys:       []string{"ctrl+l"},
			wantNotice: NoticeMsg{Kind: NoticeSuccess, Message: "Form loaded!"},
			wantIDs:    []string{"email"},
		},
		{
			name:       "non-empty form asks and replaces",
			current:    th.SampleFields(),
			seed:       func(env *th.TestEnvironment) { env.SeedSnapshot(saved...) },
			keys:       []string{"ctrl+l", "y"},
			wantNotice: NoticeMsg{Kind: NoticeSuccess, Message: "Form loaded!"},
			wantIDs:    []string{"email"},
		},
		{
			name:    "corrupt snapshot leaves the form alone",
			current: th.SampleFields(),
			seed: func(env *th.TestEnvironment) {
				require.NoError(t, env.KV.Set(models.DefaultSnapshotKey, "{not json"))
			},
			keys:       []string{"ctrl+l", "y"},
			wantNotice: NoticeMsg{Kind: NoticeError, Message: "Failed to load the saved form."},
			wantIDs:    []string{"name", "age", "color"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, s, env := makeTestBuilder(t, tt.current...)
			tt.seed(env)

			keys := make([]interface{}, 0)
			var msgs []interface{}
			for _, k := range tt.keys {
				keys = append(keys, k)
				msgs = append(msgs, toInterfaces(th.SendKeys(m, th.Key(k)))...)
			}

			require.Len(t, msgs, 1, "keys %v", keys)
			assert.Equal(t, tt.wantNotice, msgs[0])
			assert.Equal(t, tt.wantIDs, fieldIDs(s))
		})
	}
}

func TestBuilder_LoadDeclined(t *testing.T) {
	m, s, env := makeTestBuilder(t, th.SampleFields()...)
	env.SeedSnapshot(th.NewFieldBuilder("x", models.FieldTypeText).Build())

	msgs := th.SendKeys(m, th.Key("ctrl+l"), th.Key("n"))

	assert.Empty(t, msgs)
	assert.Equal(t, []string{"name", "age", "color"}, fieldIDs(s))
}

func TestBuilder_LoadDialog(t *testing.T) {
	m, _, env := makeTestBuilder(t, th.SampleFields()...)
	env.SeedSnapshot(th.NewFieldBuilder("x", models.FieldTypeText).Build())

	th.SendKeys(m, th.Key("ctrl+l"))
	require.True(t, m.confirm.Active())
	assert.True(t, m.confirm.IsDialog())
	assert.True(t, m.confirm.Destructive())

	view := m.View()
	th.AssertViewContains(t, view, "Load saved form")
	th.AssertViewContains(t, view, "Replace the current form with the saved one?")
	th.AssertViewContains(t, view, "• 3 field(s) will be replaced")
	th.AssertViewContains(t, view, "(load / keep)")
	th.AssertViewNotContains(t, view, "Unsaved changes will be lost.")
	th.AssertViewNotContains(t, view, "FIELDS")

	th.SendKeys(m, th.Key("esc"))
	assert.False(t, m.confirm.Active())
	th.AssertViewContains(t, m.View(), "FIELDS")
}

func TestBuilder_LoadDialogWarnsWhenDirty(t *testing.T) {
	m, _, env := makeTestBuilder(t)
	env.SeedSnapshot(th.NewFieldBuilder("x", models.FieldTypeText).Build())

	th.SendKeys(m, th.Key("1"))
	require.True(t, m.dirty)

	th.SendKeys(m, th.Key("ctrl+l"))
	require.True(t, m.confirm.Active())
	th.AssertViewContains(t, m.View(), "Unsaved changes will be lost.")
	th.AssertViewContains(t, m.View(), "• 1 field(s) will be replaced")
}

func TestBuilder_CopySnapshot(t *testing.T) {
	m, _, _ := makeTestBuilder(t, th.SampleFields()...)

	var copied string
	m.clipboardWrite = func(text string) error {
		copied = text
		return nil
	}

	msgs := th.SendKeys(m, th.Key("y"))
	assert.Equal(t, []interface{}{StatusMsg("✓ Copied 3 field(s) to clipboard")}, toInterfaces(msgs))

	got, err := store.DecodeFields(copied)
	require.NoError(t, err)
	if diff := cmp.Diff(th.SampleFields(), got); diff != "" {
		t.Errorf("clipboard snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_ConfigureSelectedField(t *testing.T) {
	m, s, _ := makeTestBuilder(t, th.SampleFields()...)
	s.SelectField("age")

	// enter in the fields column hands the keyboard to the configurator
	th.SendKeys(m, th.Key("enter"))
	require.Equal(t, configColumn, m.active)

	th.Feed(m, th.Type("!")...)
	f, _ := s.Field("age")
	assert.Equal(t, "Age!", f.Label)

	// down twice reaches the required toggle
	th.Feed(m, th.Key("down"), th.Key("down"), th.Key("space"))
	f, _ = s.Field("age")
	assert.True(t, f.Validation.Required)
	assert.Equal(t, float64(18), *f.Validation.Min, "toggling required keeps the bounds")

	th.SendKeys(m, th.Key("esc"))
	assert.Equal(t, fieldsColumn, m.active)
}

func TestBuilder_ColumnCycling(t *testing.T) {
	m, _, _ := makeTestBuilder(t)

	th.SendKeys(m, th.Key("tab"))
	assert.Equal(t, configColumn, m.active)
	th.SendKeys(m, th.Key("tab"))
	assert.Equal(t, previewColumn, m.active)
	th.SendKeys(m, th.Key("tab"))
	assert.Equal(t, fieldsColumn, m.active)
	th.SendKeys(m, th.Key("shift+tab"))
	assert.Equal(t, previewColumn, m.active)
}

func TestBuilder_PreviewResetsOnStructuralChange(t *testing.T) {
	m, s, _ := makeTestBuilder(t, th.SampleFields()...)

	th.SendKeys(m, th.Key("tab"), th.Key("tab"))
	require.Equal(t, previewColumn, m.active)
	th.Feed(m, th.Type("Bob")...)

	v, ok := m.preview.Engine().Value("name")
	require.True(t, ok)
	assert.Equal(t, "Bob", v)

	// A label edit is not structural
	s.UpdateField("age", models.LabelPatch("Years"))
	v, ok = m.preview.Engine().Value("name")
	require.True(t, ok)
	assert.Equal(t, "Bob", v)

	s.AddField(models.FieldTypeText)
	_, ok = m.preview.Engine().Value("name")
	assert.False(t, ok, "adding a field resets entered values")
}

func TestBuilder_QuitKeys(t *testing.T) {
	m, _, _ := makeTestBuilder(t)

	_, cmd := m.Update(th.Key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	// q is typed, not quit, while the configurator is focused
	m2, s, _ := makeTestBuilder(t, th.SampleFields()...)
	s.SelectField("name")
	th.Feed(m2, th.Key("tab"), th.Key("q"))
	f, _ := s.Field("name")
	assert.Equal(t, "Full nameq", f.Label)

	_, cmd = m2.Update(th.Key("ctrl+c"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestBuilder_TogglePreview(t *testing.T) {
	m, _, _ := makeTestBuilder(t, th.SampleFields()...)
	wide := m.layout.GetColumnWidth()

	msgs := th.SendKeys(m, th.Key("p"))
	assert.Equal(t, []interface{}{StatusMsg("✓ Preview hidden")}, toInterfaces(msgs))
	assert.False(t, m.layout.ShowPreview)
	assert.Greater(t, m.layout.GetColumnWidth(), wide, "two columns share the width")
	th.AssertViewNotContains(t, m.View(), "PREVIEW")

	th.SendKeys(m, th.Key("tab"), th.Key("tab"))
	assert.Equal(t, fieldsColumn, m.active)

	msgs = th.SendKeys(m, th.Key("p"))
	assert.Equal(t, []interface{}{StatusMsg("✓ Preview shown")}, toInterfaces(msgs))
	assert.Equal(t, wide, m.layout.GetColumnWidth())
	th.AssertViewContains(t, m.View(), "PREVIEW")
}

func TestBuilder_View(t *testing.T) {
	t.Run("empty form", func(t *testing.T) {
		m, _, _ := makeTestBuilder(t)
		view := m.View()

		th.AssertViewContains(t, view, "FORM BUILDER")
		th.AssertViewContains(t, view, "FIELDS")
		th.AssertViewContains(t, view, "CONFIGURE")
		th.AssertViewContains(t, view, "PREVIEW")
		th.AssertViewContains(t, view, "No fields yet.")
		th.AssertViewContains(t, view, emptyPreviewText)
		th.AssertViewContains(t, view, "1 +text")
	})

	t.Run("cards and preview", func(t *testing.T) {
		m, _, _ := makeTestBuilder(t, th.SampleFields()...)
		view := m.View()

		th.AssertViewContains(t, view, "(3)")
		th.AssertViewContains(t, view, "⋮⋮ Full name *")
		th.AssertViewContains(t, view, "18..99")
		th.AssertViewContains(t, view, "3 options")
		th.AssertViewContains(t, view, "Favourite colour")
		th.AssertViewContains(t, view, "[ Submit ]")
		th.AssertViewNotContains(t, view, "No fields yet.")
	})

	t.Run("without preview", func(t *testing.T) {
		env := th.NewTestEnvironment(t)
		settings := models.DefaultSettings()
		settings.UI.ShowPreview = false
		m := NewBuilderModel(env.NewStore(), settings)
		defer m.Close()
		m.SetSize(120, 40)

		th.AssertViewNotContains(t, m.View(), "PREVIEW")
		th.SendKeys(m, th.Key("tab"), th.Key("tab"))
		assert.Equal(t, fieldsColumn, m.active, "only two columns to cycle")
	})
}
