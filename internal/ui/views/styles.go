package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Dim          lipgloss.Style
	Input        lipgloss.Style
	ModeCopy     lipgloss.Style
	ModeExport   lipgloss.Style
	Cell         lipgloss.Style
	SelectedCell lipgloss.Style
	Name         lipgloss.Style
	Match        lipgloss.Style
	Empty        lipgloss.Style
	Toast        lipgloss.Style
	Help         lipgloss.Style
	Popup        lipgloss.Style
	Main         lipgloss.Style
	Scroll       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		ModeCopy:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),  // green
		ModeExport:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // yellow
		Cell:         lipgloss.NewStyle(),
		SelectedCell: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Name:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Match:        lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Empty:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Italic(true), // red
		Toast: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Faint(true),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2).
			Width(48),
		Main:   lipgloss.NewStyle().Padding(1, 2),
		Scroll: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}

// ModeStyle returns the label style for the activation mode
func (s *Styles) ModeStyle(export bool) lipgloss.Style {
	if export {
		return s.ModeExport
	}
	return s.ModeCopy
}
