// Copyright (c) 2026 Quadsolver Team
// Quadsolver - quadratic equation solver
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/quadsolver/internal/equation"
)

var lineBreaks = strings.NewReplacer("\r\n", "", "\r", "", "\n", "")

const (
	activeMarker   = "> "
	inactiveMarker = "  "
)

// fieldsModel edits the raw text of a, b and c. The cursor selects the active
// field and never wraps around. Only Enter finishes; Ctrl+C aborts.
type fieldsModel struct {
	fields  equation.RawInputs
	cursor  int
	keys    keyMap
	help    help.Model
	done    bool
	aborted bool
}

func newFieldsModel() fieldsModel {
	return fieldsModel{
		keys: newKeyMap(),
		help: help.New(),
	}
}

func (m fieldsModel) Init() tea.Cmd {
	return nil
}

func (m fieldsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.aborted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.fields)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Backspace):
			m.fields[m.cursor] = dropLastRune(m.fields[m.cursor])
		case msg.Type == tea.KeySpace:
			m.fields[m.cursor] += " "
		case msg.Type == tea.KeyTab:
			m.fields[m.cursor] += "\t"
		case msg.Type == tea.KeyRunes:
			// Pasted text may carry line breaks; a field is a single line.
			m.fields[m.cursor] += lineBreaks.Replace(string(msg.Runes))
		}
	}
	return m, nil
}

func (m fieldsModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(equation.Preview(m.fields)))
	b.WriteString("\n")

	for i, l := range equation.Labels {
		marker, style := inactiveMarker, formItemStyle
		if i == m.cursor {
			marker, style = activeMarker, formSelectedItemStyle
		}
		line := fmt.Sprintf("%s%s %s", marker, labelStyle.Render(string(l)+":"), m.fields[i])
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return docStyle.Render(b.String())
}

// Values returns the buffers as they currently stand.
func (m fieldsModel) Values() equation.RawInputs {
	return m.fields
}

func dropLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}

// fieldsModel implements tea.Model
var _ tea.Model = fieldsModel{}
