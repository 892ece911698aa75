package probe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kevmo314/go-wincamcfg/pkg/capture"
	"github.com/kevmo314/go-wincamcfg/pkg/logger"
	"github.com/kevmo314/go-wincamcfg/pkg/properties"
)

var cam = capture.Device{Index: 0, Name: "HD Pro Webcam C920"}

func newProber(t *testing.T) (*Prober, *capture.MockFramework) {
	ctrl := gomock.NewController(t)
	fw := capture.NewMockFramework(ctrl)
	return New(fw, logger.NewTestLogger().With().Logger()), fw
}

func TestProbe_Supported(t *testing.T) {
	p, fw := newProber(t)

	fw.EXPECT().GetRange(cam, properties.Brightness).Return(capture.Range{
		Min: 0, Max: 255, Step: 1, Default: 128, Flags: properties.Flags(properties.FlagManual),
	}, nil)

	c, err := p.Probe(cam, properties.Brightness)
	require.NoError(t, err)
	assert.Equal(t, properties.Capability{
		Supported: true, Min: 0, Max: 255, Step: 1, Default: 128, Flags: properties.Flags(properties.FlagManual),
	}, c)
}

func TestProbe_NotSupportedIsNotAnError(t *testing.T) {
	p, fw := newProber(t)

	fw.EXPECT().GetRange(cam, properties.Iris).Return(capture.Range{}, capture.ErrNotSupported)

	c, err := p.Probe(cam, properties.Iris)
	require.NoError(t, err)
	assert.False(t, c.Supported)
}

func TestProbe_DeviceErrorPropagates(t *testing.T) {
	p, fw := newProber(t)

	fw.EXPECT().GetRange(cam, properties.Gain).Return(capture.Range{}, capture.ErrDeviceBusy)

	_, err := p.Probe(cam, properties.Gain)
	require.ErrorIs(t, err, capture.ErrDeviceBusy)
}

func TestProbeAll_CatalogOrder(t *testing.T) {
	p, fw := newProber(t)

	boom := errors.New("boom")
	fw.EXPECT().GetRange(cam, gomock.Any()).DoAndReturn(func(_ capture.Device, id properties.ID) (capture.Range, error) {
		switch id {
		case properties.PowerlineFrequency:
			return capture.Range{Min: 0, Max: 2, Step: 1, Default: 2, Flags: properties.Flags(properties.FlagManual)}, nil
		case properties.Zoom:
			return capture.Range{}, boom
		}
		return capture.Range{}, capture.ErrNotSupported
	}).Times(len(properties.All()))

	got := p.ProbeAll(cam)
	require.Len(t, got, len(properties.All()))

	for i, probed := range got {
		assert.Equal(t, properties.ID(i), probed.Property)
		switch probed.Property {
		case properties.PowerlineFrequency:
			assert.True(t, probed.Capability.Supported)
			assert.NoError(t, probed.Err)
		case properties.Zoom:
			assert.ErrorIs(t, probed.Err, boom)
		default:
			assert.False(t, probed.Capability.Supported)
			assert.NoError(t, probed.Err)
		}
	}
}

func TestProbeAll_Selected(t *testing.T) {
	p, fw := newProber(t)

	gomock.InOrder(
		fw.EXPECT().GetRange(cam, properties.Focus).Return(capture.Range{Min: 0, Max: 250, Step: 5, Flags: properties.Flags(properties.FlagManual)}, nil),
		fw.EXPECT().GetRange(cam, properties.Brightness).Return(capture.Range{}, capture.ErrNotSupported),
	)

	got := p.ProbeAll(cam, properties.Focus, properties.Brightness)
	require.Len(t, got, 2)
	assert.Equal(t, properties.Focus, got[0].Property)
	assert.True(t, got[0].Capability.Supported)
	assert.Equal(t, properties.Brightness, got[1].Property)
	assert.False(t, got[1].Capability.Supported)
}
