package capture

import "errors"

var (
	// ErrNotSupported is returned when a driver does not implement a property.
	ErrNotSupported = errors.New("property not supported by device")
	// ErrDeviceBusy is returned when another process holds the device.
	ErrDeviceBusy = errors.New("device is busy")
	ErrNoDevice   = errors.New("device not enumerated in this session")
)
