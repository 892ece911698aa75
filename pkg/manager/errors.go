package manager

import "errors"

var (
	ErrInvalidDeviceSelector = errors.New("invalid camera selection")
	ErrDeviceNotFound        = errors.New("camera not found")
	// ErrDefaultRequired is returned when every property is selected for a
	// set without asking for defaults.
	ErrDefaultRequired = errors.New("setting all properties requires --default")
)
