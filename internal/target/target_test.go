package target

import "testing"

func TestForArch(t *testing.T) {
	tests := []struct {
		name       string
		arch       string
		wantNil    bool
		wantTriple string
	}{
		{
			name:       "arm64",
			arch:       "arm64",
			wantTriple: "aarch64-apple-ios",
		},
		{
			name:       "arm64e maps to the aarch64 triple",
			arch:       "arm64e",
			wantTriple: "aarch64-apple-ios",
		},
		{
			name:       "armv7",
			arch:       "armv7",
			wantTriple: "armv7-apple-ios",
		},
		{
			name:       "simulator x86_64",
			arch:       "x86_64",
			wantTriple: "x86_64-apple-ios",
		},
		{
			name:    "unknown arch",
			arch:    "mips-unsupported",
			wantNil: true,
		},
		{
			name:    "empty string",
			arch:    "",
			wantNil: true,
		},
		{
			name:    "case sensitive",
			arch:    "ARM64",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForArch(tt.arch)
			if tt.wantNil {
				if got != nil {
					t.Errorf("ForArch(%q) = %+v, want nil", tt.arch, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ForArch(%q) = nil, want target", tt.arch)
			}
			if got.Arch != tt.arch {
				t.Errorf("ForArch(%q).Arch = %q, want %q", tt.arch, got.Arch, tt.arch)
			}
			if got.Triple != tt.wantTriple {
				t.Errorf("ForArch(%q).Triple = %q, want %q", tt.arch, got.Triple, tt.wantTriple)
			}
		})
	}
}

func TestAll_StableOrder(t *testing.T) {
	first := All()
	second := All()

	if len(first) != len(second) {
		t.Fatalf("All() returned %d then %d targets", len(first), len(second))
	}
	for i := range first {
		if first[i].Arch != second[i].Arch {
			t.Errorf("All() order unstable at %d: %q vs %q", i, first[i].Arch, second[i].Arch)
		}
	}
}

func TestAll_EveryEntryResolvable(t *testing.T) {
	for _, tgt := range All() {
		if ForArch(tgt.Arch) != tgt {
			t.Errorf("ForArch(%q) does not round-trip through All()", tgt.Arch)
		}
	}
}
