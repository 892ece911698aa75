//go:build !windows

package wincamcfg

import (
	"github.com/rs/zerolog"

	"github.com/kevmo314/go-wincamcfg/pkg/capture"
	"github.com/kevmo314/go-wincamcfg/pkg/properties"
)

// MediaFoundation is only functional on Windows.
type MediaFoundation struct{}

func New(zerolog.Logger) (*MediaFoundation, error) {
	return nil, ErrUnsupportedPlatform
}

func (*MediaFoundation) EnumerateDevices() ([]capture.Device, error) {
	return nil, ErrUnsupportedPlatform
}

func (*MediaFoundation) GetRange(capture.Device, properties.ID) (capture.Range, error) {
	return capture.Range{}, ErrUnsupportedPlatform
}

func (*MediaFoundation) GetValue(capture.Device, properties.ID) (int32, properties.FlagSet, error) {
	return 0, 0, ErrUnsupportedPlatform
}

func (*MediaFoundation) SetValue(capture.Device, properties.ID, int32, properties.ControlFlag) error {
	return ErrUnsupportedPlatform
}

func (*MediaFoundation) Close() error { return nil }

var _ capture.Framework = (*MediaFoundation)(nil)
