// Copyright (c) 2026 Quadsolver Team
// Quadsolver - quadratic equation solver
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the interactive coefficient editor. This file defines
// the lipgloss styles shared by its views.
package tui // import "github.com/toeirei/quadsolver/internal/tui"

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // A nice teal/cyan
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	// Equation preview
	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			MarginBottom(1)

	// Form elements
	formItemStyle         = lipgloss.NewStyle()
	formSelectedItemStyle = lipgloss.NewStyle().Foreground(colorHighlight)
	labelStyle            = lipgloss.NewStyle().Foreground(colorSubtle)

	helpStyle = lipgloss.NewStyle().MarginTop(1)
)
