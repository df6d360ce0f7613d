package iosdeploy

import (
	"fmt"
	"sort"

	"github.com/harwell/idev/internal/target"
)

// Device represents one connected iOS device with a validated target
// platform. Immutable once constructed.
type Device struct {
	// Identifier is the device UDID (e.g., "00008110-000A512E3A88801E")
	Identifier string

	// Name is the user-assigned device name (e.g., "Kate's iPhone")
	Name string

	// ModelName is the marketing model name (e.g., "iPhone 13 Pro")
	ModelName string

	// Target is the registry-backed platform descriptor for the
	// device's architecture
	Target *target.Target
}

// NewDevice constructs a device record.
func NewDevice(identifier, name, modelName string, tgt *target.Target) Device {
	return Device{
		Identifier: identifier,
		Name:       name,
		ModelName:  modelName,
		Target:     tgt,
	}
}

// String returns a human-readable representation of the device.
func (d Device) String() string {
	return fmt.Sprintf("%s (%s, %s) [%s]", d.Name, d.ModelName, d.Target.Arch, d.Identifier)
}

// key is the total ordering key: identifier first, then the remaining
// fields as tie-breakers so records differing in any field stay distinct.
func (d Device) key() [4]string {
	return [4]string{d.Identifier, d.Name, d.ModelName, d.Target.Arch}
}

// less reports whether d orders before other.
func (d Device) less(other Device) bool {
	a, b := d.key(), other.key()
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// equal reports full-field equality, the same relation the ordering
// key induces.
func (d Device) equal(other Device) bool {
	return d.key() == other.key()
}

// DeviceSet is an ordered set of devices, unique by the full ordering
// key. The zero value is an empty, usable set.
type DeviceSet struct {
	devices []Device
}

// NewDeviceSet returns an empty set.
func NewDeviceSet() *DeviceSet {
	return &DeviceSet{}
}

// Insert adds a device, keeping the set sorted. Inserting a device
// equal to an existing member is a no-op.
func (s *DeviceSet) Insert(d Device) {
	i := sort.Search(len(s.devices), func(i int) bool {
		return !s.devices[i].less(d)
	})
	if i < len(s.devices) && s.devices[i].equal(d) {
		return
	}
	s.devices = append(s.devices, Device{})
	copy(s.devices[i+1:], s.devices[i:])
	s.devices[i] = d
}

// Devices returns the members in ascending order. The returned slice
// is a copy; mutating it does not affect the set.
func (s *DeviceSet) Devices() []Device {
	out := make([]Device, len(s.devices))
	copy(out, s.devices)
	return out
}

// Len returns the number of members.
func (s *DeviceSet) Len() int {
	return len(s.devices)
}
