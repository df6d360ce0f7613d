package ui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/harwell/idev/internal/iosdeploy"
)

// Output formats accepted by RenderDevices.
const (
	FormatDetailed = "detailed"
	FormatCompact  = "compact"
	FormatJSON     = "json"
)

// deviceJSON is the stable wire shape for --format json.
type deviceJSON struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
	ModelName  string `json:"model_name"`
	Arch       string `json:"arch"`
	Triple     string `json:"triple"`
}

// RenderDevices renders a device listing in the requested format.
func RenderDevices(devices []iosdeploy.Device, format string) (string, error) {
	switch format {
	case FormatDetailed:
		return renderDetailed(devices), nil
	case FormatCompact:
		return renderCompact(devices), nil
	case FormatJSON:
		return renderJSON(devices)
	default:
		return "", fmt.Errorf("unsupported format: %q", format)
	}
}

func renderDetailed(devices []iosdeploy.Device) string {
	var b strings.Builder
	for i, d := range devices {
		fmt.Fprintf(&b, "%d. %s\n", i+1, DeviceNameStyle.Render(d.Name))
		fmt.Fprintf(&b, "   %s %s\n", DeviceKeyStyle.Render("UDID:"), DeviceValueStyle.Render(d.Identifier))
		fmt.Fprintf(&b, "   %s %s\n", DeviceKeyStyle.Render("Model:"), DeviceValueStyle.Render(d.ModelName))
		fmt.Fprintf(&b, "   %s %s (%s)\n", DeviceKeyStyle.Render("Arch:"), DeviceValueStyle.Render(d.Target.Arch), d.Target.Triple)
		b.WriteString("\n")
	}
	return b.String()
}

func renderCompact(devices []iosdeploy.Device) string {
	var b strings.Builder
	for _, d := range devices {
		fmt.Fprintf(&b, "%s\t%s\t%s\t%s\n", d.Identifier, d.Name, d.ModelName, d.Target.Arch)
	}
	return b.String()
}

func renderJSON(devices []iosdeploy.Device) (string, error) {
	// Always emit an array, never null, so consumers can iterate
	// unconditionally.
	out := make([]deviceJSON, 0, len(devices))
	for _, d := range devices {
		out = append(out, deviceJSON{
			Identifier: d.Identifier,
			Name:       d.Name,
			ModelName:  d.ModelName,
			Arch:       d.Target.Arch,
			Triple:     d.Target.Triple,
		})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal devices: %w", err)
	}
	return string(data) + "\n", nil
}

// RenderError renders a detection failure with its cause, matching the
// message users of the original tooling expect.
func RenderError(err error) string {
	var b strings.Builder
	b.WriteString(ErrorTitleStyle.Render("Failed to detect connected iOS devices"))
	b.WriteString("\n")
	b.WriteString(ErrorDetailStyle.Render(err.Error()))
	b.WriteString("\n")
	return b.String()
}
