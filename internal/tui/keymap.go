// Copyright (c) 2026 Quadsolver Team
// Quadsolver - quadratic equation solver
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/quadsolver/internal/i18n"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Backspace key.Binding
	Submit    key.Binding
	Quit      key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Backspace, km.Submit, km.Quit}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Up, km.Down}, {km.Backspace, km.Submit, km.Quit}}
}

// keyMap implements help.KeyMap
var _ help.KeyMap = keyMap{}

// newKeyMap builds the bindings with help text in the active language.
func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp(i18n.T("tui.key.up"), i18n.T("tui.key.up_help")),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp(i18n.T("tui.key.down"), i18n.T("tui.key.down_help")),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp(i18n.T("tui.key.backspace"), i18n.T("tui.key.backspace_help")),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp(i18n.T("tui.key.enter"), i18n.T("tui.key.enter_help")),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp(i18n.T("tui.key.quit"), i18n.T("tui.key.quit_help")),
		),
	}
}
