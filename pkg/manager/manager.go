// Package manager runs list, get and set operations across selected devices
// and properties, turning per-item failures into report entries.
package manager

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kevmo314/go-wincamcfg/pkg/capture"
	"github.com/kevmo314/go-wincamcfg/pkg/probe"
	"github.com/kevmo314/go-wincamcfg/pkg/properties"
	"github.com/kevmo314/go-wincamcfg/pkg/translate"
)

type Manager struct {
	fw     capture.Framework
	prober *probe.Prober
	log    zerolog.Logger
}

func New(fw capture.Framework, log zerolog.Logger) *Manager {
	return &Manager{
		fw:     fw,
		prober: probe.New(fw, log),
		log:    log.With().Str("component", "manager").Logger(),
	}
}

// List enumerates the attached devices.
func (m *Manager) List() ([]capture.Device, error) {
	devices, err := m.fw.EnumerateDevices()
	if err != nil {
		return nil, fmt.Errorf("enumerate devices: %w", err)
	}
	m.log.Info().Int("count", len(devices)).Msg("enumerated devices")
	return devices, nil
}

func (m *Manager) resolve(sel DeviceSelector) ([]capture.Device, error) {
	devices, err := m.List()
	if err != nil {
		return nil, err
	}
	return sel.Resolve(devices)
}

// Get reads the current value of every selected property on every selected
// device. Properties a device does not implement are reported as Unsupported.
func (m *Manager) Get(devs DeviceSelector, props PropertySelector) (*Report, error) {
	devices, err := m.resolve(devs)
	if err != nil {
		return nil, err
	}

	report := newReport(OperationGet, props, devices)
	log := m.log.With().Stringer("run_id", report.RunID).Logger()

	for _, dev := range devices {
		for _, probed := range m.prober.ProbeAll(dev, props.IDs()...) {
			res := m.get(dev, probed)
			log.Debug().
				Int("device", dev.Index).
				Stringer("property", probed.Property).
				Stringer("outcome", res.Outcome).
				Msg("get")
			report.Results = append(report.Results, res)
		}
	}

	return report, nil
}

func (m *Manager) get(dev capture.Device, probed probe.Probed) Result {
	id := probed.Property
	spec := properties.Lookup(id)
	res := Result{DeviceIndex: dev.Index, DeviceName: dev.DisplayName(), Property: id}

	if probed.Err != nil {
		return failed(res, probed.Err)
	}
	c := probed.Capability
	if !c.Supported {
		res.Outcome = Unsupported
		return res
	}

	def := translate.DecodeDefault(spec, c)
	res.Default = &def
	res.Supported = translate.SupportedValues(spec, c)

	v, flags, err := m.fw.GetValue(dev, id)
	if err != nil {
		return failed(res, fmt.Errorf("get %s: %w", spec.Name, err))
	}

	cur := translate.Decode(spec, c, translate.Raw{Value: v, Flag: flags.Current()})
	res.Value = &cur
	return res
}

// Assignment is the value a set writes: either user input to be parsed per
// property or the device default.
type Assignment struct {
	Input   string
	Default bool
}

// DefaultAssignment restores device defaults.
func DefaultAssignment() Assignment { return Assignment{Default: true} }

func (a Assignment) String() string {
	if a.Default {
		return "default"
	}
	return a.Input
}

func (a Assignment) parse(spec properties.Spec) (translate.Value, error) {
	if a.Default {
		return translate.Default(), nil
	}
	return translate.Parse(spec, a.Input)
}

type parsedValue struct {
	value translate.Value
	err   error
}

// Set writes a to every selected property on every selected device. Input
// that cannot be parsed for a property is reported on each of its pairs
// without touching any device.
func (m *Manager) Set(devs DeviceSelector, props PropertySelector, a Assignment) (*Report, error) {
	if props.All() && !a.Default {
		return nil, ErrDefaultRequired
	}

	devices, err := m.resolve(devs)
	if err != nil {
		return nil, err
	}

	ids := props.IDs()
	values := make([]parsedValue, len(ids))
	for i, id := range ids {
		v, err := a.parse(properties.Lookup(id))
		values[i] = parsedValue{value: v, err: err}
	}

	report := newReport(OperationSet, props, devices)
	log := m.log.With().Stringer("run_id", report.RunID).Logger()

	for _, dev := range devices {
		for i, id := range ids {
			res := Result{
				DeviceIndex: dev.Index,
				DeviceName:  dev.DisplayName(),
				Property:    id,
				Requested:   a.String(),
			}
			if values[i].err != nil {
				res = failed(res, values[i].err)
			} else {
				res = m.set(res, dev, values[i].value)
			}

			ev := log.Debug()
			if res.OK() {
				ev = log.Info()
			}
			ev.Int("device", dev.Index).
				Stringer("property", id).
				Str("value", res.Requested).
				Stringer("outcome", res.Outcome).
				Str("detail", res.Detail).
				Msg("set")

			report.Results = append(report.Results, res)
		}
	}

	return report, nil
}

func (m *Manager) set(res Result, dev capture.Device, v translate.Value) Result {
	spec := properties.Lookup(res.Property)

	c, err := m.prober.Probe(dev, res.Property)
	if err != nil {
		return failed(res, err)
	}
	if !c.Supported {
		res.Outcome = Unsupported
		res.Detail = capture.ErrNotSupported.Error()
		return res
	}

	def := translate.DecodeDefault(spec, c)
	res.Default = &def
	res.Supported = translate.SupportedValues(spec, c)

	raw, err := translate.Encode(spec, c, v)
	if err != nil {
		return failed(res, err)
	}

	if err := m.fw.SetValue(dev, res.Property, raw.Value, raw.Flag); err != nil {
		return failed(res, fmt.Errorf("set %s: %w", spec.Name, err))
	}

	written := translate.Decode(spec, c, raw)
	res.Value = &written
	return res
}

func failed(res Result, err error) Result {
	res.Outcome = classify(err)
	res.Detail = err.Error()
	return res
}
