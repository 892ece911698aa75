package manager

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kevmo314/go-wincamcfg/pkg/capture"
	"github.com/kevmo314/go-wincamcfg/pkg/properties"
)

const maxDeviceSelectorLength = 16

// DeviceSelector chooses one enumerated device by index, or all of them.
type DeviceSelector struct {
	all   bool
	index int
}

func AllDevices() DeviceSelector { return DeviceSelector{all: true} }

func DeviceIndex(i int) DeviceSelector { return DeviceSelector{index: i} }

// ParseDeviceSelector accepts "all" (any case) or a decimal index. The index
// is only checked against the device count by Resolve.
func ParseDeviceSelector(s string) (DeviceSelector, error) {
	if s == "" || len(s) > maxDeviceSelectorLength {
		return DeviceSelector{}, fmt.Errorf("%w: must be 1-%d characters", ErrInvalidDeviceSelector, maxDeviceSelectorLength)
	}
	if strings.EqualFold(s, "all") {
		return AllDevices(), nil
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return DeviceSelector{}, fmt.Errorf("%w: %q must be a number or 'all'", ErrInvalidDeviceSelector, s)
		}
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return DeviceSelector{}, fmt.Errorf("%w: %q: %w", ErrInvalidDeviceSelector, s, err)
	}
	return DeviceIndex(i), nil
}

func (s DeviceSelector) All() bool { return s.all }

func (s DeviceSelector) String() string {
	if s.all {
		return "all"
	}
	return strconv.Itoa(s.index)
}

// Resolve picks the selected devices out of an enumeration, preserving order.
func (s DeviceSelector) Resolve(devices []capture.Device) ([]capture.Device, error) {
	if s.all {
		return devices, nil
	}
	if s.index < 0 || s.index >= len(devices) {
		return nil, fmt.Errorf("%w: index %d (only %d devices available)", ErrDeviceNotFound, s.index, len(devices))
	}
	return []capture.Device{devices[s.index]}, nil
}

// PropertySelector chooses one catalog property, or all of them.
type PropertySelector struct {
	all bool
	id  properties.ID
}

func AllProperties() PropertySelector { return PropertySelector{all: true} }

func Property(id properties.ID) PropertySelector { return PropertySelector{id: id} }

// ParsePropertySelector accepts "all" or a catalog property name. Unknown
// names fail with properties.ErrUnknownProperty.
func ParsePropertySelector(s string) (PropertySelector, error) {
	if strings.EqualFold(s, "all") {
		return AllProperties(), nil
	}
	id, err := properties.ByName(s)
	if err != nil {
		return PropertySelector{}, err
	}
	return Property(id), nil
}

func (s PropertySelector) All() bool { return s.all }

// IDs expands the selector in catalog order.
func (s PropertySelector) IDs() []properties.ID {
	if s.all {
		return properties.All()
	}
	return []properties.ID{s.id}
}

func (s PropertySelector) String() string {
	if s.all {
		return "all"
	}
	return s.id.String()
}
