// Package capture defines the primitives a capture framework backend provides.
//
// A Device is only meaningful to the Framework that enumerated it, and only
// for the lifetime of that Framework. Handles are never persisted or compared
// across process runs.
package capture

//go:generate mockgen -destination=mock_capture.go -package=capture github.com/kevmo314/go-wincamcfg/pkg/capture Framework

import "github.com/kevmo314/go-wincamcfg/pkg/properties"

// Device is an enumerated video capture device.
type Device struct {
	Index int
	Name  string
	// Path is the framework's symbolic link for the device.
	Path string
	Info DeviceInfo
}

// DeviceInfo holds driver metadata. Every field is optional.
type DeviceInfo struct {
	Description   string `json:"device_description,omitempty"`
	Manufacturer  string `json:"manufacturer,omitempty"`
	DriverVersion string `json:"driver_version,omitempty"`
	DriverDate    string `json:"driver_date,omitempty"`
	DriverPath    string `json:"driver_path,omitempty"`
}

// DisplayName returns the friendly name, or "Unknown" when the driver did not
// provide one.
func (d Device) DisplayName() string {
	if d.Name == "" {
		return "Unknown"
	}
	return d.Name
}

// Range is the raw answer to a range query.
type Range struct {
	Min     int32
	Max     int32
	Step    int32
	Default int32
	Flags   properties.FlagSet
}

// Framework is the capture framework a backend exposes. All calls are
// synchronous and may block while the driver serializes access.
type Framework interface {
	EnumerateDevices() ([]Device, error)
	// GetRange returns ErrNotSupported when the driver does not implement prop.
	GetRange(dev Device, prop properties.ID) (Range, error)
	GetValue(dev Device, prop properties.ID) (int32, properties.FlagSet, error)
	SetValue(dev Device, prop properties.ID, value int32, flag properties.ControlFlag) error
	Close() error
}
