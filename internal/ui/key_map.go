package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up       key.Binding
	down     key.Binding
	moveUp   key.Binding
	moveDown key.Binding
	enter    key.Binding
	back     key.Binding
	edit     key.Binding
	delete   key.Binding
	add      key.Binding
	submit   key.Binding
	reload   key.Binding
	theme    key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		moveUp:   key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move up")),
		moveDown: key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move down")),
		enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit title")),
		delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add file")),
		submit:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "submit batch")),
		reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		theme:    key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "theme")),
		quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.moveUp, k.moveDown, k.edit, k.delete},
		{k.add, k.submit, k.reload},
		{k.back, k.theme, k.quit},
	}
}
