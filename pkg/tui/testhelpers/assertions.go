package testhelpers

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// PlainView strips styling so views can be matched as text
func PlainView(view string) string {
	return ansi.Strip(view)
}

// AssertViewContains checks if a view contains expected text
func AssertViewContains(t *testing.T, view, expected string) {
	t.Helper()
	if !strings.Contains(PlainView(view), expected) {
		t.Errorf("View does not contain expected text %q\nView:\n%s", expected, PlainView(view))
	}
}

// AssertViewNotContains checks that a view does not contain text
func AssertViewNotContains(t *testing.T, view, unexpected string) {
	t.Helper()
	if strings.Contains(PlainView(view), unexpected) {
		t.Errorf("View contains unexpected text %q\nView:\n%s", unexpected, PlainView(view))
	}
}

// RunCmd executes cmd and returns its message, nil for a nil cmd
func RunCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// Send feeds every message to model in order and collects the messages
// their commands produce.
func Send(model tea.Model, msgs ...tea.Msg) []tea.Msg {
	var out []tea.Msg
	for _, msg := range msgs {
		var cmd tea.Cmd
		_, cmd = model.Update(msg)
		if got := RunCmd(cmd); got != nil {
			out = append(out, got)
		}
	}
	return out
}

// SendKeys is Send for key messages
func SendKeys(model tea.Model, keys ...tea.KeyMsg) []tea.Msg {
	msgs := make([]tea.Msg, len(keys))
	for i, k := range keys {
		msgs[i] = k
	}
	return Send(model, msgs...)
}

// Feed delivers key messages without running the commands they return.
// Use it for typing, where textinput answers with cursor blink timers.
func Feed(model tea.Model, keys ...tea.KeyMsg) {
	for _, k := range keys {
		model.Update(k)
	}
}
