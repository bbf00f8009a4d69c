package ui

import "github.com/charmbracelet/lipgloss"

// Hangman theme for the console.
// Small on purpose: a handful of colors and the style functions built on them.

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
)

// Theme maps each kind of text to a render function.
type Theme struct {
	Title func(string) string
	Word  func(string) string
	Good  func(string) string
	Warn  func(string) string
	Bad   func(string) string
	Muted func(string) string
}

// Color is the default styled theme.
func Color() Theme {
	return Theme{
		Title: render(lipgloss.NewStyle().Bold(true).Foreground(cAccent)),
		Word:  render(lipgloss.NewStyle().Bold(true).Foreground(cPrimary)),
		Good:  render(lipgloss.NewStyle().Foreground(cGood)),
		Warn:  render(lipgloss.NewStyle().Foreground(cWarn)),
		Bad:   render(lipgloss.NewStyle().Bold(true).Foreground(cBad)),
		Muted: render(lipgloss.NewStyle().Foreground(cMuted)),
	}
}

func render(st lipgloss.Style) func(string) string {
	return func(s string) string { return st.Render(s) }
}

// Plain renders text unchanged (no-color terminals, tests, pipes).
func Plain() Theme {
	id := func(s string) string { return s }
	return Theme{Title: id, Word: id, Good: id, Warn: id, Bad: id, Muted: id}
}
