package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	InputActive  lipgloss.Style
	Icon         lipgloss.Style
	ClearButton  lipgloss.Style
	Options      lipgloss.Style
	Item         lipgloss.Style
	ItemFocused  lipgloss.Style
	NotFound     lipgloss.Style
	Suggestion   lipgloss.Style
	Selected     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")). // blue
			Padding(0, 1),
		InputActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Icon:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ClearButton: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // red
		Options: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		Item:        lipgloss.NewStyle(),
		ItemFocused: lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(lipgloss.Color("226")).Bold(true),
		NotFound:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Suggestion:  lipgloss.NewStyle().Faint(true).Italic(true),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
	}
}
