package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	tab     key.Binding
	backtab key.Binding
	copy    key.Binding
	info    key.Binding
	esc     key.Binding
	quit    key.Binding
}

var keys = keyMap{
	tab:     key.NewBinding(key.WithKeys("tab", "right", "l")),
	backtab: key.NewBinding(key.WithKeys("shift+tab", "left", "h")),
	copy:    key.NewBinding(key.WithKeys("c")),
	info:    key.NewBinding(key.WithKeys("v")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
