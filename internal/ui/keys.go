package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap names every binding the state machine routes. Which bindings are
// live depends on the current mode; in AddingFile everything not matched
// here falls through to the text input's own editing keys.
type keyMap struct {
	Quit  key.Binding
	Add   key.Binding
	Raw   key.Binding
	Help  key.Binding
	Clear key.Binding
	Next  key.Binding
	Prev  key.Binding
	Tab   key.Binding

	Confirm key.Binding
	Cancel  key.Binding

	ScrollUp   key.Binding
	ScrollDown key.Binding

	// Filters tab only.
	OptNext key.Binding
	OptPrev key.Binding
	Toggle  key.Binding
}

var keys = keyMap{
	Quit:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	Add:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add file")),
	Raw:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "raw output")),
	Help:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "help")),
	Clear: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear all")),
	Next:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next file")),
	Prev:  key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous file")),
	Tab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch tab")),

	Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),

	ScrollUp:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "scroll up")),
	ScrollDown: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "scroll down")),

	OptNext: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next filter")),
	OptPrev: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous filter")),
	Toggle:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "toggle filter")),
}
