// Package target holds the static registry of iOS target platforms.
//
// The registry maps architecture strings as reported by ios-deploy
// (the "modelArch" field of a device detection event) to target
// descriptors carrying the LLVM triple used by build tooling. The
// table is closed: an architecture that does not resolve indicates a
// version skew between this tool and the ios-deploy output format,
// never a new device class to be accepted silently.
package target
