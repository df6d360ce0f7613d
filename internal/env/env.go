package env

import (
	"os"
	"sort"
)

// baseVars is the allow-list of host environment variables forwarded to
// child processes. Anything outside this list (plus configured extras)
// is withheld so that detection behaves the same regardless of what the
// calling shell happens to export.
var baseVars = []string{
	"HOME",
	"PATH",
	"USER",
	"LOGNAME",
	"SHELL",
	"TMPDIR",
	"SSH_AUTH_SOCK",
	"DEVELOPER_DIR",
}

// Env is a read-only handle over the resolved host environment.
type Env struct {
	extras []string
}

// New resolves the default allow-listed environment.
func New() *Env {
	return &Env{}
}

// NewWithExtras resolves the allow-listed environment plus additional
// variable names the user has configured to be forwarded.
func NewWithExtras(extras []string) *Env {
	return &Env{extras: extras}
}

// ExplicitEnv computes the variable mapping to pass to a child process.
// The mapping is computed fresh on every call; variables that are unset
// on the host are omitted rather than forwarded empty.
func (e *Env) ExplicitEnv() map[string]string {
	vars := make(map[string]string, len(baseVars)+len(e.extras))
	for _, name := range baseVars {
		if value, ok := os.LookupEnv(name); ok {
			vars[name] = value
		}
	}
	for _, name := range e.extras {
		if value, ok := os.LookupEnv(name); ok {
			vars[name] = value
		}
	}
	return vars
}

// Names returns the full allow-list (base plus extras) in sorted order.
func (e *Env) Names() []string {
	names := make([]string, 0, len(baseVars)+len(e.extras))
	names = append(names, baseVars...)
	names = append(names, e.extras...)
	sort.Strings(names)
	return names
}
