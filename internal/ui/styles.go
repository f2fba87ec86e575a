// Package ui renders engine output for the terminal.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Semantic styles for CLI output.
var (
	styleName     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06b6d4"))
	styleID       = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	styleScore    = lipgloss.NewStyle().Foreground(lipgloss.Color("#eab308"))
	styleCategory = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b5cf6"))
	styleFeatured = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	styleMuted    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
)

const (
	symbolBullet   = "•"
	symbolFeatured = "★"
)

func init() {
	// Respect the NO_COLOR standard (https://no-color.org/)
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
