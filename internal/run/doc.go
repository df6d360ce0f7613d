// Package run is the process-execution primitive for external tooling.
//
// It runs a command to completion with an explicitly constructed
// environment, captures stdout and stderr separately, and surfaces
// non-zero exits as an ExitError that still carries the captured
// output. The Runner interface exists so callers can inject a fake for
// tests instead of spawning real processes.
package run
