// Package iosdeploy detects connected iOS devices via the ios-deploy tool.
//
// Detection is a two-stage pipeline. The invoker runs
//
//	ios-deploy --detect --timeout 1 --json --no-wifi
//
// exactly once with an explicitly constructed environment and
// classifies the outcome. The parser then decodes the captured stdout
// into discrete JSON events, keeps the device announcements, resolves
// each announced architecture against the target registry, and
// collects the results into an ordered, deduplicated DeviceSet.
//
// # Failure classification
//
// Three error kinds are surfaced, each as its own type so callers can
// branch with errors.As instead of string matching:
//
//   - DetectionFailedError: ios-deploy exited non-zero with diagnostic
//     output attached
//   - InvalidUTF8Error: captured output was not valid text
//   - ArchInvalidError: an announcement referenced an unknown
//     architecture
//
// All three abort the whole call; no partial device set is ever
// returned. The one absorbed condition is a non-zero exit with both
// streams empty, which is ios-deploy's documented shape for "no
// devices attached" and yields an empty set.
//
// # Concurrency
//
// List is synchronous and blocking. It holds no shared state, so
// concurrent calls are safe; each spawns its own child process.
package iosdeploy
