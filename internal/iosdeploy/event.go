package iosdeploy

import (
	"encoding/json"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/harwell/idev/internal/logging"
)

// eventDeviceDetected is the event kind announcing a connected device.
// Other kinds (progress, status) exist in the stream but are opaque here.
const eventDeviceDetected = "DeviceDetected"

// DeviceInfo is the raw device announcement payload embedded in a
// detection event, field names as ios-deploy emits them.
type DeviceInfo struct {
	DeviceIdentifier string `json:"DeviceIdentifier"`
	DeviceName       string `json:"DeviceName"`
	ModelArch        string `json:"modelArch"`
	ModelName        string `json:"modelName"`
}

// Event is one structured record from the ios-deploy JSON stream.
type Event struct {
	Event     string      `json:"Event"`
	Interface string      `json:"Interface"`
	Device    *DeviceInfo `json:"Device"`
}

// DeviceInfo returns the announcement payload if this event announces a
// device, or nil for any other event kind.
func (e *Event) DeviceInfo() *DeviceInfo {
	if e.Event != eventDeviceDetected {
		return nil
	}
	return e.Device
}

// ParseEvents splits ios-deploy output into its discrete events.
//
// ios-deploy writes a stream of concatenated JSON objects rather than a
// single document, so the text is decoded value by value until the
// stream ends. A malformed value terminates decoding; events decoded up
// to that point are kept, since ios-deploy truncates its output when
// interrupted mid-write.
func ParseEvents(text string) []Event {
	dec := json.NewDecoder(strings.NewReader(text))

	var events []Event
	for {
		var event Event
		if err := dec.Decode(&event); err != nil {
			if err != io.EOF {
				logging.Debug("stopping event decode on malformed value",
					zap.Error(err),
					zap.Int("events_decoded", len(events)),
				)
			}
			return events
		}
		events = append(events, event)
	}
}
