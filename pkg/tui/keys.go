package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the builder reacts to. Letter keys only fire
// in the fields column; the other columns own the keyboard for typing.
type keyMap struct {
	AddText     key.Binding
	AddNumber   key.Binding
	AddDropdown key.Binding

	NextColumn key.Binding
	PrevColumn key.Binding
	Up         key.Binding
	Down       key.Binding
	MoveUp     key.Binding
	MoveDown   key.Binding
	Remove     key.Binding
	Preview    key.Binding

	Toggle       key.Binding
	AddOption    key.Binding
	RemoveOption key.Binding
	PrevChoice   key.Binding
	NextChoice   key.Binding
	Submit       key.Binding

	Save  key.Binding
	Load  key.Binding
	Copy  key.Binding
	Back  key.Binding
	Quit  key.Binding
	Force key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		AddText:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "+text")),
		AddNumber:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "+number")),
		AddDropdown: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "+dropdown")),

		NextColumn: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		PrevColumn: key.NewBinding(key.WithKeys("shift+tab")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "nav")),
		Down:       key.NewBinding(key.WithKeys("down", "j")),
		MoveUp:     key.NewBinding(key.WithKeys("K"), key.WithHelp("K/J", "reorder")),
		MoveDown:   key.NewBinding(key.WithKeys("J")),
		Remove:     key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove")),
		Preview:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preview")),

		Toggle:       key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle required")),
		AddOption:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("^n", "add option")),
		RemoveOption: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("^d", "remove option")),
		PrevChoice:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←→", "choose")),
		NextChoice:   key.NewBinding(key.WithKeys("right")),
		Submit:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),

		Save:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("^s", "save")),
		Load:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("^l", "load")),
		Copy:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy json")),
		Back:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "fields")),
		Quit:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Force: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("^c", "quit")),
	}
}

// helpItems renders bindings as "key desc" entries for the help pane
func helpItems(bindings ...key.Binding) []string {
	items := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		items = append(items, h.Key+" "+h.Desc)
	}
	return items
}
