package wincamcfg

import (
	"fmt"
	"unsafe"

	"github.com/rs/zerolog"

	"github.com/kevmo314/go-wincamcfg/pkg/capture"
	"github.com/kevmo314/go-wincamcfg/pkg/properties"
)

// MediaFoundation implements capture.Framework on top of Media Foundation
// device sources and their IAMVideoProcAmp / IAMCameraControl interfaces.
//
// It must be used from a single OS thread: COM is initialized on the thread
// that calls New.
type MediaFoundation struct {
	log     zerolog.Logger
	devices []*mfDevice
}

// mfDevice holds the COM objects of one enumerated camera. The media source
// is only activated on first property access.
type mfDevice struct {
	camera      *mfCamera
	source      *IMFMediaSource
	procAmp     *amControl
	cameraCtrl  *amControl
	activated   bool
	activateErr error
}

func New(log zerolog.Logger) (*MediaFoundation, error) {
	if err := mfStartup(); err != nil {
		return nil, err
	}
	return &MediaFoundation{log: log}, nil
}

func (m *MediaFoundation) EnumerateDevices() ([]capture.Device, error) {
	m.releaseDevices()

	cameras, err := enumerateMFCameras()
	if err != nil {
		return nil, err
	}

	out := make([]capture.Device, 0, len(cameras))
	for i, cam := range cameras {
		m.devices = append(m.devices, &mfDevice{camera: cam})

		dev := capture.Device{Index: i, Name: cam.FriendlyName, Path: cam.SymbolicLink}
		info, err := driverInfo(cam.SymbolicLink)
		if err != nil {
			m.log.Debug().Err(err).Int("device", i).Msg("driver info unavailable")
		}
		dev.Info = info

		m.log.Debug().Int("device", i).Str("name", dev.Name).Str("path", dev.Path).Msg("found camera")
		out = append(out, dev)
	}
	return out, nil
}

func (d *mfDevice) activate() error {
	if d.activated {
		return d.activateErr
	}
	d.activated = true

	ptr, err := d.camera.Activate.ActivateObject(&IID_IMFMediaSource)
	if err != nil {
		d.activateErr = fmt.Errorf("activate media source: %w", err)
		return d.activateErr
	}
	d.source = (*IMFMediaSource)(unsafe.Pointer(ptr))

	if ptr, err := d.source.QueryInterface(&IID_IAMVideoProcAmp); err == nil {
		d.procAmp = (*amControl)(unsafe.Pointer(ptr))
	}
	if ptr, err := d.source.QueryInterface(&IID_IAMCameraControl); err == nil {
		d.cameraCtrl = (*amControl)(unsafe.Pointer(ptr))
	}
	return nil
}

func (d *mfDevice) release() {
	d.procAmp.Release()
	d.procAmp = nil
	d.cameraCtrl.Release()
	d.cameraCtrl = nil
	if d.source != nil {
		d.source.Shutdown()
		d.source.Release()
		d.source = nil
		d.camera.Activate.ShutdownObject()
	}
	d.camera.Activate.Release()
}

// control resolves the interface and native index serving prop on dev.
func (m *MediaFoundation) control(dev capture.Device, prop properties.ID) (*amControl, int32, error) {
	if dev.Index < 0 || dev.Index >= len(m.devices) || m.devices[dev.Index].camera.SymbolicLink != dev.Path {
		return nil, 0, capture.ErrNoDevice
	}

	d := m.devices[dev.Index]
	if err := d.activate(); err != nil {
		return nil, 0, err
	}

	spec := properties.Lookup(prop)
	c := d.procAmp
	if spec.Group == properties.GroupCameraControl {
		c = d.cameraCtrl
	}
	if c == nil {
		return nil, 0, fmt.Errorf("%s interface: %w", spec.Group, capture.ErrNotSupported)
	}
	return c, spec.Native, nil
}

func (m *MediaFoundation) GetRange(dev capture.Device, prop properties.ID) (capture.Range, error) {
	c, native, err := m.control(dev, prop)
	if err != nil {
		return capture.Range{}, err
	}

	min, max, step, def, flags, err := c.GetRange(native)
	if err != nil {
		return capture.Range{}, err
	}
	return capture.Range{
		Min:     min,
		Max:     max,
		Step:    step,
		Default: def,
		Flags:   properties.FlagSet(flags),
	}, nil
}

func (m *MediaFoundation) GetValue(dev capture.Device, prop properties.ID) (int32, properties.FlagSet, error) {
	c, native, err := m.control(dev, prop)
	if err != nil {
		return 0, 0, err
	}

	value, flags, err := c.Get(native)
	if err != nil {
		return 0, 0, err
	}
	return value, properties.FlagSet(flags), nil
}

func (m *MediaFoundation) SetValue(dev capture.Device, prop properties.ID, value int32, flag properties.ControlFlag) error {
	c, native, err := m.control(dev, prop)
	if err != nil {
		return err
	}

	m.log.Debug().
		Int("device", dev.Index).
		Stringer("property", prop).
		Int32("value", value).
		Stringer("flag", flag).
		Msg("set")

	return c.Set(native, value, int32(flag))
}

func (m *MediaFoundation) releaseDevices() {
	for _, d := range m.devices {
		d.release()
	}
	m.devices = nil
}

// Close releases every device and shuts Media Foundation down. The framework
// cannot be used afterwards.
func (m *MediaFoundation) Close() error {
	m.releaseDevices()
	mfShutdown()
	return nil
}

var _ capture.Framework = (*MediaFoundation)(nil)

