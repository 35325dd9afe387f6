package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationType defines the visual style of the confirmation
type ConfirmationType int

const (
	ConfirmTypeInline ConfirmationType = iota // Simple inline message
	ConfirmTypeDialog                         // Full dialog with border
)

// ConfirmationConfig holds the configuration for a confirmation prompt
type ConfirmationConfig struct {
	Title       string           // Title for dialog type (optional)
	Message     string           // Main confirmation message
	Warning     string           // Optional warning text (shown in orange)
	Details     []string         // Optional detail lines
	Destructive bool             // If true, Yes is red, No is green
	Type        ConfirmationType // Visual style
	YesLabel    string           // Custom label for Yes (default: "Yes")
	NoLabel     string           // Custom label for No (default: "No")
	Width       int              // Width for dialog type
}

// ConfirmationModel handles y/n prompts
type ConfirmationModel struct {
	active    bool
	config    ConfirmationConfig
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
	viewWidth int
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel

	if m.config.YesLabel == "" {
		m.config.YesLabel = "Yes"
	}
	if m.config.NoLabel == "" {
		m.config.NoLabel = "No"
	}
}

// ShowInline is Show for a one line prompt
func (m *ConfirmationModel) ShowInline(message string, destructive bool, onConfirm, onCancel func() tea.Cmd) {
	m.Show(ConfirmationConfig{
		Message:     message,
		Destructive: destructive,
		Type:        ConfirmTypeInline,
	}, onConfirm, onCancel)
}

// Hide deactivates the confirmation
func (m *ConfirmationModel) Hide() {
	m.active = false
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// IsDialog reports whether the active prompt renders as a bordered dialog
func (m *ConfirmationModel) IsDialog() bool {
	return m.config.Type == ConfirmTypeDialog
}

// Destructive reports whether the active prompt guards a destructive action
func (m *ConfirmationModel) Destructive() bool {
	return m.config.Destructive
}

// Update handles key events for the confirmation
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
		return nil

	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
		return nil
	}

	return nil
}

// View renders the confirmation based on its type
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	if m.IsDialog() {
		return m.renderDialog()
	}
	return m.renderInline()
}

// ViewWithWidth renders the confirmation with a specific width for centering
func (m *ConfirmationModel) ViewWithWidth(width int) string {
	m.viewWidth = width
	return m.View()
}

func (m *ConfirmationModel) renderInline() string {
	options := formatConfirmOptions(m.config.Destructive)
	message := fmt.Sprintf("%s %s", m.config.Message, options)

	if m.viewWidth > 0 && lipgloss.Width(message) < m.viewWidth {
		return lipgloss.NewStyle().
			Width(m.viewWidth).
			Align(lipgloss.Center).
			Render(message)
	}

	return message
}

func (m *ConfirmationModel) renderDialog() string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWarning))

	warningStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning))

	width := m.config.Width
	if width == 0 {
		width = 60
	}
	center := lipgloss.NewStyle().Width(width - 4).Align(lipgloss.Center)

	var content strings.Builder
	if m.config.Title != "" {
		content.WriteString(center.Render(headerStyle.Render(m.config.Title)))
		content.WriteString("\n\n")
	}
	if m.config.Message != "" {
		content.WriteString(center.Render(m.config.Message))
		content.WriteString("\n")
	}
	if m.config.Warning != "" {
		content.WriteString("\n")
		content.WriteString(center.Render(warningStyle.Render(m.config.Warning)))
		content.WriteString("\n")
	}
	for _, detail := range m.config.Details {
		content.WriteString(DescriptionStyle.Render("  • " + detail))
		content.WriteString("\n")
	}

	labels := fmt.Sprintf("(%s / %s)",
		strings.ToLower(m.config.YesLabel),
		strings.ToLower(m.config.NoLabel))
	content.WriteString("\n")
	content.WriteString(center.Render(formatConfirmOptions(m.config.Destructive) + "  " + labels))

	return ActiveBorderStyle.
		Width(width).
		Padding(0, 1).
		Render(content.String())
}

// formatConfirmOptions renders the [y]/[n] hint, red/green when destructive
func formatConfirmOptions(destructive bool) string {
	yes := lipgloss.NewStyle().Bold(true)
	no := lipgloss.NewStyle().Bold(true)
	if destructive {
		yes = yes.Foreground(lipgloss.Color(ColorDanger))
		no = no.Foreground(lipgloss.Color(ColorSuccess))
	}
	return yes.Render("[y]") + "/" + no.Render("[n]")
}
