package render

import (
	"fmt"
	"strings"

	"github.com/kevmo314/go-wincamcfg/pkg/capture"
	"github.com/kevmo314/go-wincamcfg/pkg/manager"
)

func (r *Renderer) textDevices(devices []capture.Device, includePath bool) error {
	var b strings.Builder
	if len(devices) == 0 {
		b.WriteString("No video capture devices found.\n")
	}
	for _, dev := range devices {
		fmt.Fprintf(&b, "[%d] %s", dev.Index, r.styles.device.Render(dev.DisplayName()))
		if includePath && dev.Path != "" {
			fmt.Fprintf(&b, " (%s)", dev.Path)
		}
		b.WriteByte('\n')
	}
	_, err := fmt.Fprint(r.w, b.String())
	return err
}

func (r *Renderer) textGet(report *manager.Report) error {
	var b strings.Builder
	for _, dev := range report.Devices {
		fmt.Fprintf(&b, "[%d] %s\n", dev.Index, r.styles.device.Render(dev.DisplayName()))

		b.WriteString("  " + r.styles.section.Render("Device Info:") + "\n")
		infoLine(&b, "Device Path", dev.Path)
		infoLine(&b, "Manufacturer", dev.Info.Manufacturer)
		infoLine(&b, "Description", dev.Info.Description)
		infoLine(&b, "Driver Version", dev.Info.DriverVersion)
		infoLine(&b, "Driver Date", dev.Info.DriverDate)
		infoLine(&b, "Driver Path", dev.Info.DriverPath)

		b.WriteString("  " + r.styles.section.Render("Properties:") + "\n")
		results := report.ResultsFor(dev.Index)
		if len(results) == 0 {
			b.WriteString("    No properties available\n")
		}
		for _, res := range results {
			fmt.Fprintf(&b, "    %s: %s\n", r.styles.label.Render(res.Property.String()), r.propertyValue(res))
		}
		b.WriteByte('\n')
	}
	_, err := fmt.Fprint(r.w, b.String())
	return err
}

func infoLine(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "    %s: %s\n", label, value)
}

func (r *Renderer) propertyValue(res manager.Result) string {
	switch {
	case res.Outcome == manager.Unsupported:
		return r.styles.unsupported.Render("<unsupported>")
	case !res.OK():
		return r.styles.failure.Render(fmt.Sprintf("<error: %s>", res.Detail))
	}

	s := res.Value.Text
	var meta []string
	if res.Supported != "" {
		meta = append(meta, "Supported: "+res.Supported)
	}
	if res.Default != nil {
		meta = append(meta, "Default: "+res.Default.Text)
	}
	if len(meta) > 0 {
		s += " (" + strings.Join(meta, ", ") + ")"
	}
	return s
}

func (r *Renderer) textSet(report *manager.Report) error {
	var b strings.Builder
	for _, res := range report.Results {
		fmt.Fprintf(&b, "[%d] %s: ", res.DeviceIndex, r.styles.device.Render(res.DeviceName))
		switch {
		case res.OK():
			applied := res.Value.Text
			if res.Requested == "default" {
				applied += " (default)"
			}
			b.WriteString(r.styles.success.Render(fmt.Sprintf("%s set to %s", res.Property, applied)))
		case res.Outcome == manager.Unsupported && !report.Failed(res):
			b.WriteString(r.styles.unsupported.Render(fmt.Sprintf("%s not supported, skipped", res.Property)))
		default:
			b.WriteString(r.styles.failure.Render(fmt.Sprintf("Failed to set %s - %s", res.Property, res.Detail)))
		}
		b.WriteByte('\n')
	}
	_, err := fmt.Fprint(r.w, b.String())
	return err
}
