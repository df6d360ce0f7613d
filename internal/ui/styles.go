package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for device listings
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, selection
	SuccessColor = lipgloss.Color("#43BF6D") // Green - success
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

// Shared styles for device output
var (
	// DeviceNameStyle is for the device name line
	DeviceNameStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// DeviceKeyStyle is for detail keys (e.g., "UDID:")
	DeviceKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(12)

	// DeviceValueStyle is for detail values
	DeviceValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// ErrorTitleStyle is for the top-level error message
	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// ErrorDetailStyle is for the error cause text
	ErrorDetailStyle = lipgloss.NewStyle().
				Foreground(MutedColor)
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}
