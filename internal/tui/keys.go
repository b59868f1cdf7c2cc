package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	quit     key.Binding
	search   key.Binding
	lookup   key.Binding
	journal  key.Binding
	favorite key.Binding
	settings key.Binding
	edit     key.Binding
	delete   key.Binding
	copy     key.Binding
	theme    key.Binding
	save     key.Binding
	export   key.Binding
	restore  key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up")),
	down:     key.NewBinding(key.WithKeys("down")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	search:   key.NewBinding(key.WithKeys("s")),
	lookup:   key.NewBinding(key.WithKeys("v")),
	journal:  key.NewBinding(key.WithKeys("j")),
	favorite: key.NewBinding(key.WithKeys("f")),
	settings: key.NewBinding(key.WithKeys("g")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("ctrl+d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	theme:    key.NewBinding(key.WithKeys("t")),
	save:     key.NewBinding(key.WithKeys("ctrl+s")),
	export:   key.NewBinding(key.WithKeys("x")),
	restore:  key.NewBinding(key.WithKeys("i")),
}
