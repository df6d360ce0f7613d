package iosdeploy

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/harwell/idev/internal/env"
	"github.com/harwell/idev/internal/logging"
	"github.com/harwell/idev/internal/run"
	"github.com/harwell/idev/internal/target"
)

// Fixed ios-deploy invocation: single-shot detection, one second bound,
// machine-readable output, wireless discovery disabled. Not configurable.
const commandName = "ios-deploy"

var commandArgs = []string{"--detect", "--timeout", "1", "--json", "--no-wifi"}

// DetectionFailedError means ios-deploy exited non-zero and produced
// diagnostic output.
type DetectionFailedError struct {
	// Err is the underlying process error
	Err error

	// Stderr is the diagnostic output captured from ios-deploy
	Stderr []byte
}

func (e *DetectionFailedError) Error() string {
	return fmt.Sprintf("failed to request device list from `ios-deploy`: %v", e.Err)
}

func (e *DetectionFailedError) Unwrap() error {
	return e.Err
}

// InvalidUTF8Error means captured output could not be decoded as text.
type InvalidUTF8Error struct {
	// Offset is the byte offset of the first invalid sequence
	Offset int
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("device info contained invalid UTF-8 at byte %d", e.Offset)
}

// ArchInvalidError means a device announcement referenced an
// architecture absent from the target registry.
type ArchInvalidError struct {
	// Arch is the offending raw architecture string
	Arch string
}

func (e *ArchInvalidError) Error() string {
	return fmt.Sprintf("%q isn't a valid target arch", e.Arch)
}

// parseDeviceList converts captured stdout into a validated device set.
// Any announcement whose architecture does not resolve fails the whole
// call: an unmappable arch means the output cannot be trusted to
// represent only known device classes, and a partial set would silently
// under-report devices.
func parseDeviceList(output *run.Output) (*DeviceSet, error) {
	if i := firstInvalidUTF8(output.Stdout); i >= 0 {
		return nil, &InvalidUTF8Error{Offset: i}
	}

	devices := NewDeviceSet()
	for _, event := range ParseEvents(string(output.Stdout)) {
		info := event.DeviceInfo()
		if info == nil {
			continue
		}
		tgt := target.ForArch(info.ModelArch)
		if tgt == nil {
			return nil, &ArchInvalidError{Arch: info.ModelArch}
		}
		devices.Insert(NewDevice(info.DeviceIdentifier, info.DeviceName, info.ModelName, tgt))
	}
	return devices, nil
}

// firstInvalidUTF8 returns the byte offset of the first invalid UTF-8
// sequence in b, or -1 if b is valid.
func firstInvalidUTF8(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// List detects connected iOS devices by running ios-deploy once and
// parsing its output. It blocks until the child process exits.
//
// A non-zero exit with empty stdout and stderr is ios-deploy's shape
// for "no devices attached" and yields an empty set, not an error.
func List(ctx context.Context, e *env.Env) (*DeviceSet, error) {
	return list(ctx, run.NewRunner(), e)
}

func list(ctx context.Context, runner run.Runner, e *env.Env) (*DeviceSet, error) {
	output, err := runner.Run(ctx, commandName, e.ExplicitEnv(), commandArgs...)
	if err == nil {
		return parseDeviceList(output)
	}

	var exitErr *run.ExitError
	if !errors.As(err, &exitErr) {
		// The process never ran (binary missing, context cancelled).
		return nil, &DetectionFailedError{Err: err}
	}
	if exitErr.Output == nil {
		// The runner contract guarantees captured output on exit
		// failure; a nil here is a wiring bug, not a domain failure.
		panic("developer error: `ios-deploy --detect` output wasn't collected")
	}
	if exitErr.Output.Empty() {
		logging.Info("device detection returned a non-zero exit code, but stdout and stderr are both empty; interpreting as a successful run with no devices connected",
			zap.Error(exitErr),
		)
		return NewDeviceSet(), nil
	}
	return nil, &DetectionFailedError{Err: exitErr, Stderr: exitErr.Output.Stderr}
}
