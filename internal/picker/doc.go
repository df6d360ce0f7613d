// Package picker implements the interactive device selection screen.
//
// It presents detected devices in a filterable list; selecting one
// returns its record to the caller, which prints the identifier for use
// with other tooling. Built on bubbletea with the bubbles list component.
package picker
