// Copyright (c) 2026 Shelfmaster Team
// Shelfmaster - library catalog and borrower tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/shelfmaster/internal/i18n"
)

// formModel collects the inputs of one operation.
type formModel struct {
	op     operation
	inputs []textinput.Model
	labels []string
	focus  int
	err    string
	keys   keyMap
}

func newFormModel(op operation, keys keyMap) *formModel {
	f := &formModel{op: op, keys: keys}
	for _, labelKey := range op.fields {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.CharLimit = 256
		f.inputs = append(f.inputs, ti)
		f.labels = append(f.labels, i18n.T(labelKey))
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

// values returns the current contents of every field in order.
func (f *formModel) values() []string {
	out := make([]string, len(f.inputs))
	for i := range f.inputs {
		out[i] = f.inputs[i].Value()
	}
	return out
}

func (f *formModel) setFocus(i int) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	f.inputs[f.focus].Blur()
	f.focus = (i + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

// update handles navigation and forwards everything else to the focused
// input. Submission is handled by the caller.
func (f *formModel) update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, f.keys.Next):
			return f.setFocus(f.focus + 1)
		case key.Matches(km, f.keys.Prev):
			return f.setFocus(f.focus - 1)
		}
	}
	if len(f.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *formModel) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T(f.op.label)))
	b.WriteString("\n")
	for i := range f.inputs {
		label := formLabelStyle.Render(f.labels[i])
		if i == f.focus {
			label = formSelectedLabelStyle.Render(f.labels[i])
		}
		b.WriteString(label + "\n")
		b.WriteString(f.inputs[i].View() + "\n\n")
	}
	if f.err != "" {
		b.WriteString(errorStyle.Render(f.err) + "\n")
	}
	return b.String()
}
