package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the TUI.
type Styles struct {
	Title      lipgloss.Style
	Prompt     lipgloss.Style
	TopicName  lipgloss.Style
	Concept    lipgloss.Style
	Definition lipgloss.Style
	Faint      lipgloss.Style
	Error      lipgloss.Style
}

// DefaultStyles returns the default colour scheme.
func DefaultStyles() *Styles {
	return &Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Prompt:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		TopicName:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Concept:    lipgloss.NewStyle().Bold(true),
		Definition: lipgloss.NewStyle().PaddingLeft(2),
		Faint:      lipgloss.NewStyle().Faint(true),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
