// Copyright (c) 2026 Shelfmaster Team
// Shelfmaster - library catalog and borrower tracker
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the full-screen terminal interface for Shelfmaster.
// This file, tui.go, contains the top-level model that routes between the
// menu, the operation forms and the result view.
package tui // import "github.com/toeirei/shelfmaster/internal/tui"

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/shelfmaster/internal/i18n"
	"github.com/toeirei/shelfmaster/internal/library"
	"github.com/toeirei/shelfmaster/internal/logging"
	"golang.org/x/term"
)

// ErrNotATerminal is returned by Run when the input is not an interactive terminal.
var ErrNotATerminal = errors.New("not a terminal")

// viewState represents which part of the UI is currently active.
type viewState int

const (
	menuView viewState = iota
	formView
	resultView
)

// Swappable for tests.
var (
	copyToClipboard = clipboard.WriteAll
	isTerminal      = term.IsTerminal
)

// mainModel is the top-level model. It owns the menu cursor and at most one
// open form; all operations go straight to the shared Library.
type mainModel struct {
	lib    *library.Library
	state  viewState
	ops    []operation
	cursor int
	form   *formModel
	result string
	status string
	isErr  bool
	keys   keyMap
	help   help.Model
	width  int
	height int
}

func newModel(lib *library.Library) mainModel {
	return mainModel{
		lib:  lib,
		ops:  operations(),
		keys: newKeyMap(),
		help: help.New(),
	}
}

// Init implements tea.Model.
func (m mainModel) Init() tea.Cmd {
	return nil
}

// Update is the main message loop. Global keys are handled first, then the
// message is delegated to the active view.
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.state {
		case menuView:
			return m.updateMenu(msg)
		case formView:
			return m.updateForm(msg)
		case resultView:
			return m.updateResult(msg)
		}
	}
	if m.state == formView && m.form != nil {
		return m, m.form.update(msg)
	}
	return m, nil
}

func (m mainModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.ops)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		return m.selectOperation(m.cursor)
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] >= '1' && msg.Runes[0] <= '9':
		idx := int(msg.Runes[0] - '1')
		if idx < len(m.ops) {
			m.cursor = idx
			return m.selectOperation(idx)
		}
	}
	return m, nil
}

// selectOperation opens the form for an operation, or runs it directly when
// it takes no input.
func (m mainModel) selectOperation(idx int) (tea.Model, tea.Cmd) {
	op := m.ops[idx]
	m.status = ""
	if op.exit {
		return m, tea.Quit
	}
	if len(op.fields) == 0 {
		return m.finish(op.run(m.lib, nil))
	}
	m.form = newFormModel(op, m.keys)
	m.state = formView
	return m, textinput.Blink
}

func (m mainModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.form = nil
		m.state = menuView
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		out, err := m.form.op.run(m.lib, m.form.values())
		if err != nil {
			logging.Debugf("tui: %s rejected: %v", m.form.op.label, err)
			m.form.err = err.Error()
			return m, nil
		}
		return m.finish(out, nil)
	}
	return m, m.form.update(msg)
}

// finish switches to the result view.
func (m mainModel) finish(out string, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		out = err.Error()
	}
	m.form = nil
	m.result = out
	m.state = resultView
	return m, nil
}

func (m mainModel) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Copy):
		if err := copyToClipboard(m.result); err != nil {
			logging.Warnf("clipboard copy failed: %v", err)
			m.status = i18n.T("tui.copy_failed", err)
			m.isErr = true
		} else {
			m.status = i18n.T("tui.copied")
			m.isErr = false
		}
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Select):
		m.state = menuView
		m.status = ""
	}
	return m, nil
}

// View renders the active view with the shared header and help footer.
func (m mainModel) View() string {
	var b strings.Builder
	b.WriteString(mainTitleStyle.Render(i18n.T("tui.title")))
	b.WriteString(" ")
	b.WriteString(summaryStyle.Render(i18n.T("tui.summary", m.lib.Catalog.Len(), m.lib.Borrowers.Len())))
	b.WriteString("\n\n")

	switch m.state {
	case formView:
		b.WriteString(m.form.view())
	case resultView:
		b.WriteString(resultBoxStyle.Render(m.result))
		b.WriteString("\n")
	default:
		for i, op := range m.ops {
			line := fmt.Sprintf("%d. %s", i+1, i18n.T(op.label))
			if i == m.cursor {
				b.WriteString(selectedItemStyle.Render("▸ " + line))
			} else {
				b.WriteString(itemStyle.Render(line))
			}
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		style := statusMessageStyle
		if m.isErr {
			style = errorStyle
		}
		b.WriteString("\n" + style.Render(m.status) + "\n")
	}

	keys := m.keys
	keys.view = m.state
	b.WriteString("\n" + m.help.View(keys))
	return docStyle.Render(lipgloss.NewStyle().MaxWidth(maxWidth(m.width)).Render(b.String()))
}

func maxWidth(w int) int {
	if w <= 4 {
		return 0
	}
	return w - 4
}

// Run starts the TUI on the process terminal. lib is shared with the caller,
// so anything added in the TUI is visible afterwards.
func Run(lib *library.Library) error {
	if !isTerminal(int(os.Stdin.Fd())) {
		return ErrNotATerminal
	}
	// Log lines written to stderr would tear the alternate screen.
	logging.SetOutput(io.Discard)
	defer logging.SetOutput(os.Stderr)

	_, err := tea.NewProgram(newModel(lib), tea.WithAltScreen()).Run()
	return err
}
