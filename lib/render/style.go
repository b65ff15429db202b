// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode selects when status lines are colored.
type ColorMode string

const (
	// ColorAuto colors only when the output is a terminal.
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Styles decorates the one-line status messages printed around the
// tables. The tables themselves are never styled.
type Styles struct {
	Success lipgloss.Style
	Notice  lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles binds styles to w. In [ColorAuto] mode the color profile is
// detected from w, so a pipe or buffer gets plain text.
func NewStyles(w io.Writer, mode ColorMode) Styles {
	renderer := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		renderer.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		renderer.SetColorProfile(termenv.Ascii)
	}
	return Styles{
		Success: renderer.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Notice:  renderer.NewStyle().Foreground(lipgloss.Color("3")),
		Error:   renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

// Plain returns styles that never emit escape sequences.
func Plain() Styles {
	return NewStyles(io.Discard, ColorNever)
}
