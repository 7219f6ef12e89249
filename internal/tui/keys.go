package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding

	add     key.Binding
	edit    key.Binding
	remove  key.Binding
	reload  key.Binding
	logout  key.Binding
	reveal  key.Binding
	copyPwd key.Binding
	copyUsr key.Binding

	yes key.Binding
	no  key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up")),
	down:    key.NewBinding(key.WithKeys("down")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),

	add:     key.NewBinding(key.WithKeys("a")),
	edit:    key.NewBinding(key.WithKeys("e")),
	remove:  key.NewBinding(key.WithKeys("d")),
	reload:  key.NewBinding(key.WithKeys("s")),
	logout:  key.NewBinding(key.WithKeys("l")),
	reveal:  key.NewBinding(key.WithKeys(" ")),
	copyPwd: key.NewBinding(key.WithKeys("c")),
	copyUsr: key.NewBinding(key.WithKeys("u")),

	yes: key.NewBinding(key.WithKeys("y")),
	no:  key.NewBinding(key.WithKeys("n")),
}
