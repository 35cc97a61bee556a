// Copyright (c) 2026 Shelfmaster Team
// Shelfmaster - library catalog and borrower tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/shelfmaster/internal/i18n"
)

// keyMap holds every binding; the help footer shows the subset relevant to
// the active view.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Copy   key.Binding
	Quit   key.Binding
	view   viewState
}

func (km keyMap) ShortHelp() []key.Binding {
	switch km.view {
	case formView:
		return []key.Binding{km.Next, km.Submit, km.Back}
	case resultView:
		return []key.Binding{km.Copy, km.Back, km.Quit}
	default:
		return []key.Binding{km.Up, km.Down, km.Select, km.Quit}
	}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp()}
}

// *keyMap implements help.KeyMap
var _ help.KeyMap = (*keyMap)(nil)

// newKeyMap builds the bindings with help text in the active language.
func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", i18n.T("tui.key_up")),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", i18n.T("tui.key_down")),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter/1-9", i18n.T("tui.key_select")),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", i18n.T("tui.key_back")),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", i18n.T("tui.key_next")),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", i18n.T("tui.key_submit")),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", i18n.T("tui.key_copy")),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", i18n.T("tui.key_quit")),
		),
	}
}
