package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/formcraft/formcraft-cli/pkg/models"
	"github.com/formcraft/formcraft-cli/pkg/store"
)

// StatusMsg replaces the text in the status bar
type StatusMsg string

// App is the root model. It owns the status bar and hands everything else
// to the builder.
type App struct {
	builder   *BuilderModel
	width     int
	height    int
	statusMsg string
}

func NewApp(s *store.Store, settings *models.Settings) *App {
	return &App{
		builder: NewBuilderModel(s, settings),
	}
}

// Close releases the builder's store subscription
func (a *App) Close() {
	a.builder.Close()
}

// Builder returns the builder model
func (a *App) Builder() *BuilderModel {
	return a.builder
}

// Status returns the current status bar text
func (a *App) Status() string {
	return a.statusMsg
}

func (a *App) Init() tea.Cmd {
	return a.builder.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// One row stays free for the status bar
		a.builder.SetSize(msg.Width, msg.Height-1)
		return a, nil

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil
	}

	_, cmd := a.builder.Update(msg)
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	content := a.builder.View()

	if a.statusMsg != "" {
		statusBar := StatusBarStyle.Render(a.statusMsg)
		content = lipgloss.JoinVertical(lipgloss.Top, content, statusBar)
	}

	return content
}
