// Package tui provides an interactive terminal UI for the fingerspelling
// converter.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - titles
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - subtitles, kinds
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - signs
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - resolved videos
	ColorText      = lipgloss.Color("#f1faee") // Light text
	ColorBg        = lipgloss.Color("#1a1a2e") // Dark background
	ColorBgAlt     = lipgloss.Color("#2d3436") // Alt background
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	SignLargeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Background(ColorBgAlt).
			Padding(1, 4).
			Margin(1, 0).
			Align(lipgloss.Center)

	SignRowStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	SignRowActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent).
				Background(ColorBgAlt)

	KindStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	VideoFoundStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	VideoMissingStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	FlagStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	SearchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
