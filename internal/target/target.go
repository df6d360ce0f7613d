package target

// Target describes one supported iOS build target platform.
type Target struct {
	// Arch is the architecture name as reported by ios-deploy
	// (e.g., "arm64")
	Arch string

	// Triple is the LLVM target triple for the architecture
	// (e.g., "aarch64-apple-ios")
	Triple string
}

// targets is the closed table of supported architectures, keyed by the
// modelArch string ios-deploy reports for a connected device.
var targets = map[string]*Target{
	"armv7":  {Arch: "armv7", Triple: "armv7-apple-ios"},
	"armv7s": {Arch: "armv7s", Triple: "armv7s-apple-ios"},
	"arm64":  {Arch: "arm64", Triple: "aarch64-apple-ios"},
	"arm64e": {Arch: "arm64e", Triple: "aarch64-apple-ios"},
	"i386":   {Arch: "i386", Triple: "i386-apple-ios"},
	"x86_64": {Arch: "x86_64", Triple: "x86_64-apple-ios"},
}

// archOrder fixes the iteration order for All.
var archOrder = []string{"armv7", "armv7s", "arm64", "arm64e", "i386", "x86_64"}

// ForArch resolves a raw architecture string against the registry.
// Returns nil if the architecture is not a supported target.
func ForArch(arch string) *Target {
	return targets[arch]
}

// All returns every supported target in a stable order.
func All() []*Target {
	all := make([]*Target, 0, len(archOrder))
	for _, arch := range archOrder {
		all = append(all, targets[arch])
	}
	return all
}
