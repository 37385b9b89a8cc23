package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorSuccess   = lipgloss.Color("78")  // Green
	colorGold      = lipgloss.Color("220") // Yellow
)

// SelectedItem style for the currently highlighted fish.
var SelectedItem = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary)

// NormalItem style for unselected, uncaught fish.
var NormalItem = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255"))

// CaughtItem style for fish already logged as caught.
var CaughtItem = lipgloss.NewStyle().
	Foreground(colorSecondary)

// MetaItem style for dot leaders and countdown columns.
var MetaItem = lipgloss.NewStyle().
	Foreground(colorMuted)

// OpenCountdown style for windows that are in progress right now.
var OpenCountdown = lipgloss.NewStyle().
	Foreground(colorSuccess).
	Bold(true)

// PinnedMarker style for the pin star.
var PinnedMarker = lipgloss.NewStyle().
	Foreground(colorGold)

// CaughtMarker style for the caught check.
var CaughtMarker = lipgloss.NewStyle().
	Foreground(colorSuccess)

// BandHeader style for window proximity group labels (e.g. "Open
// Now", "Today").
var BandHeader = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight).
	MarginTop(1).
	Padding(0, 1)

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusBarKey style for key hints in the status bar.
var StatusBarKey = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)

// StatusBarText style for descriptive text in the status bar.
var StatusBarText = lipgloss.NewStyle().
	Foreground(colorSecondary)

// ErrorStyle for displaying errors.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true).
	Padding(0, 1)

// HelpStyle for help and empty-list text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(1, 2)

// FilterBar style for the fish-name filter bar.
var FilterBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("238")).
	Padding(0, 1)

// FilterBarCount style for the filtered count.
var FilterBarCount = lipgloss.NewStyle().
	Foreground(colorSecondary)

// DetailTitle style for the fish name heading in the detail pane.
var DetailTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight)

// DetailLabel style for field names in the detail pane.
var DetailLabel = lipgloss.NewStyle().
	Foreground(colorSecondary)

// DetailValue style for field values in the detail pane.
var DetailValue = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255"))

// DetailPane frames the detail pane to the right of the list.
var DetailPane = lipgloss.NewStyle().
	BorderLeft(true).
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(colorMuted).
	PaddingLeft(1)
