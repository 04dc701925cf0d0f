package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings used across the application.
type KeyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Refresh  key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Enter    key.Binding
	Back     key.Binding

	Toggle       key.Binding // stage/unstage the selected file
	StageAll     key.Binding
	Patch        key.Binding // interactive hunk staging
	Discard      key.Binding
	Commit       key.Binding
	CommitEditor key.Binding
	Diff         key.Binding
	SideBySide   key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Refresh:  key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "refresh")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/↓", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "diff")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),

		Toggle:       key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "stage/unstage")),
		StageAll:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "stage all modified")),
		Patch:        key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "stage hunks")),
		Discard:      key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "discard")),
		Commit:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "commit")),
		CommitEditor: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "commit in $EDITOR")),
		Diff:         key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "diff")),
		SideBySide:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "side-by-side")),
	}
}
