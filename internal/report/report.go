// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package report renders a short human readable summary of a trim run.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/trimlog/internal/linerange"
)

const unsetText = "not found"

// Summary is the outcome of one trim run.
type Summary struct {
	Input  string
	Output string
	Range  linerange.Range
	Stats  linerange.Stats
}

// Styles contains the styling for the summary.
type Styles struct {
	Title   lipgloss.Style
	Key     lipgloss.Style
	Value   lipgloss.Style
	Dropped lipgloss.Style
	Warning lipgloss.Style
}

// NewStyles creates the default styling.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1),
		Key: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Width(10),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")),
		Dropped: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Italic(true).
			MarginTop(1),
	}
}

// Warning describes a range whose effect is probably not what the user wanted,
// or returns the empty string.
func (s Summary) Warning() string {
	switch {
	case s.Range.Start == linerange.Unset && s.Range.End != linerange.Unset:
		return "no open marker found: every line up to the close marker was removed"
	case s.Range.End == linerange.Unset && s.Range.Start != linerange.Unset:
		return "no close marker found: nothing was removed"
	case s.Range.End != linerange.Unset && s.Range.Start > s.Range.End:
		return "open marker is after the close marker: nothing was removed"
	default:
		return ""
	}
}

// Render returns the styled summary.
func (s Summary) Render(st *Styles) string {
	if st == nil {
		st = NewStyles()
	}

	row := func(key, value string, vs lipgloss.Style) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, st.Key.Render(key), vs.Render(value))
	}

	dropped := st.Value
	if s.Stats.Dropped > 0 {
		dropped = st.Dropped
	}

	rows := []string{
		st.Title.Render("trimlog summary"),
		row("input", s.Input, st.Value),
		row("output", s.Output, st.Value),
		row("open", ordinal(s.Range.Start), st.Value),
		row("close", ordinal(s.Range.End), st.Value),
		row("lines", strconv.Itoa(s.Stats.Lines), st.Value),
		row("kept", strconv.Itoa(s.Stats.Kept), st.Value),
		row("dropped", strconv.Itoa(s.Stats.Dropped), dropped),
	}

	if w := s.Warning(); w != "" {
		rows = append(rows, st.Warning.Render(w))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Write renders the summary to w followed by a newline.
func (s Summary) Write(w io.Writer, st *Styles) error {
	_, err := io.WriteString(w, strings.TrimRight(s.Render(st), " \n")+"\n")
	if err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	return nil
}

// ordinal prints a zero-based line ordinal as a one-based line number.
func ordinal(i int) string {
	if i == linerange.Unset {
		return unsetText
	}

	return fmt.Sprintf("line %d", i+1)
}
