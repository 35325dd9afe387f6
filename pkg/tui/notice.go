package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NoticeKind picks the notice colour
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeSuccess
	NoticeError
)

// NoticeMsg asks the root model to show a blocking notice
type NoticeMsg struct {
	Kind    NoticeKind
	Message string
}

// NoticeModel is a modal message that swallows input until dismissed with
// enter or esc.
type NoticeModel struct {
	active  bool
	kind    NoticeKind
	message string
}

// Show displays message until dismissed
func (n *NoticeModel) Show(kind NoticeKind, message string) {
	n.active = true
	n.kind = kind
	n.message = message
}

// Active reports whether a notice is shown
func (n *NoticeModel) Active() bool {
	return n.active
}

// Message returns the text of the current notice
func (n *NoticeModel) Message() string {
	return n.message
}

// Update dismisses the notice on enter or esc. Every other key is ignored.
func (n *NoticeModel) Update(msg tea.KeyMsg) {
	switch msg.String() {
	case "enter", "esc", " ":
		n.active = false
	}
}

// View renders the notice box
func (n *NoticeModel) View(width int) string {
	if !n.active {
		return ""
	}

	color := ColorPrimary
	switch n.kind {
	case NoticeSuccess:
		color = ColorSuccess
	case NoticeError:
		color = ColorError
	}

	if width > 60 {
		width = 60
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(color)).
		Width(width).
		Padding(1, 2).
		Align(lipgloss.Center)

	hint := DescriptionStyle.Render("enter to dismiss")
	return box.Render(n.message + "\n\n" + hint)
}
