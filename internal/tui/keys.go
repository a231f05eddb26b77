// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	refresh  key.Binding
	sync     key.Binding
	upload   key.Binding
	download key.Binding
	cancel   key.Binding
	copyID   key.Binding
	info     key.Binding
	enter    key.Binding
	esc      key.Binding
	quit     key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	sync:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sync")),
	upload:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "keep local")),
	download: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "keep server")),
	cancel:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cancel")),
	copyID:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy data id")),
	info:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "about")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}

// helpLine renders the help of the given bindings separated by spaces.
func helpLine(bindings ...key.Binding) string {
	var out string
	for i, b := range bindings {
		if i > 0 {
			out += "  "
		}
		h := b.Help()
		out += h.Key + ": " + h.Desc
	}
	return out
}
