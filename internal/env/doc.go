// Package env resolves the explicit environment passed to child processes.
//
// Child processes never inherit the full ambient environment. Instead, a
// fixed allow-list of variables (HOME, PATH, DEVELOPER_DIR, and a few
// others) is resolved fresh for every invocation, optionally extended by
// names from the user's configuration file. This keeps device detection
// reproducible across shells and avoids leaking unrelated variables into
// external tooling.
package env
