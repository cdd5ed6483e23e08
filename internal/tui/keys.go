// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	enter       key.Binding
	esc         key.Binding
	tab         key.Binding
	backtab     key.Binding
	quit        key.Binding
	forceQuit   key.Binding
	join        key.Binding
	leave       key.Binding
	chat        key.Binding
	copy        key.Binding
	newItem     key.Binding
	filter      key.Binding
	communities key.Binding
	goals       key.Binding
	profile     key.Binding
	reload      key.Binding
	delete      key.Binding
	info        key.Binding
	yes         key.Binding
	no          key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab")),
	backtab:     key.NewBinding(key.WithKeys("shift+tab")),
	quit:        key.NewBinding(key.WithKeys("q")),
	forceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
	join:        key.NewBinding(key.WithKeys("a")),
	leave:       key.NewBinding(key.WithKeys("x")),
	chat:        key.NewBinding(key.WithKeys("m")),
	copy:        key.NewBinding(key.WithKeys("c")),
	newItem:     key.NewBinding(key.WithKeys("n")),
	filter:      key.NewBinding(key.WithKeys("f")),
	communities: key.NewBinding(key.WithKeys("t")),
	goals:       key.NewBinding(key.WithKeys("g")),
	profile:     key.NewBinding(key.WithKeys("p")),
	reload:      key.NewBinding(key.WithKeys("r")),
	delete:      key.NewBinding(key.WithKeys("ctrl+d")),
	info:        key.NewBinding(key.WithKeys("v")),
	yes:         key.NewBinding(key.WithKeys("y")),
	no:          key.NewBinding(key.WithKeys("n")),
}
