package iosdeploy

import (
	"testing"

	"github.com/harwell/idev/internal/target"
)

func device(id, name, model, arch string) Device {
	tgt := target.ForArch(arch)
	if tgt == nil {
		panic("test device uses unknown arch " + arch)
	}
	return NewDevice(id, name, model, tgt)
}

func TestDeviceSet_InsertDeduplicates(t *testing.T) {
	s := NewDeviceSet()
	d := device("A1", "Kate's iPhone", "iPhone 13 Pro", "arm64")

	s.Insert(d)
	s.Insert(d)
	s.Insert(d)

	if s.Len() != 1 {
		t.Errorf("Len() = %d after inserting the same device three times, want 1", s.Len())
	}
}

func TestDeviceSet_DistinctFieldsStayDistinct(t *testing.T) {
	tests := []struct {
		name  string
		other Device
	}{
		{"different identifier", device("B2", "Kate's iPhone", "iPhone 13 Pro", "arm64")},
		{"different name", device("A1", "Work iPhone", "iPhone 13 Pro", "arm64")},
		{"different model", device("A1", "Kate's iPhone", "iPhone 13 mini", "arm64")},
		{"different arch", device("A1", "Kate's iPhone", "iPhone 13 Pro", "arm64e")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewDeviceSet()
			s.Insert(device("A1", "Kate's iPhone", "iPhone 13 Pro", "arm64"))
			s.Insert(tt.other)
			if s.Len() != 2 {
				t.Errorf("Len() = %d, want 2", s.Len())
			}
		})
	}
}

func TestDeviceSet_OrderedByIdentifier(t *testing.T) {
	s := NewDeviceSet()
	s.Insert(device("C3", "c", "iPhone X", "arm64"))
	s.Insert(device("A1", "a", "iPhone X", "arm64"))
	s.Insert(device("B2", "b", "iPhone X", "arm64"))

	got := s.Devices()
	want := []string{"A1", "B2", "C3"}
	for i, id := range want {
		if got[i].Identifier != id {
			t.Errorf("Devices()[%d].Identifier = %q, want %q", i, got[i].Identifier, id)
		}
	}
}

func TestDeviceSet_OrderStableAcrossInsertionOrder(t *testing.T) {
	devices := []Device{
		device("A1", "a", "iPhone 13 Pro", "arm64"),
		device("A1", "a", "iPhone 13 Pro", "arm64e"),
		device("A1", "b", "iPhone 13 Pro", "arm64"),
		device("B2", "a", "iPhone 13 Pro", "arm64"),
	}

	forward := NewDeviceSet()
	for _, d := range devices {
		forward.Insert(d)
	}
	backward := NewDeviceSet()
	for i := len(devices) - 1; i >= 0; i-- {
		backward.Insert(devices[i])
	}

	a, b := forward.Devices(), backward.Devices()
	if len(a) != len(b) {
		t.Fatalf("set sizes differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("order differs at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestDeviceSet_DevicesReturnsCopy(t *testing.T) {
	s := NewDeviceSet()
	s.Insert(device("A1", "a", "iPhone X", "arm64"))

	got := s.Devices()
	got[0].Identifier = "mutated"

	if s.Devices()[0].Identifier != "A1" {
		t.Error("mutating the returned slice changed the set")
	}
}

func TestDevice_String(t *testing.T) {
	d := device("00008110-000A512E3A88801E", "Kate's iPhone", "iPhone 13 Pro", "arm64")
	want := "Kate's iPhone (iPhone 13 Pro, arm64) [00008110-000A512E3A88801E]"
	if got := d.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
