// Package ui renders device listings and errors for the terminal.
//
// Three formats are supported: "detailed" (human-readable, styled),
// "compact" (one tab-separated line per device, for shell pipelines),
// and "json" (a stable array shape for scripting). Styling degrades
// gracefully on non-color terminals via lipgloss.
package ui
