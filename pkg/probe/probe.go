// Package probe queries devices for the range and flag support of properties.
package probe

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kevmo314/go-wincamcfg/pkg/capture"
	"github.com/kevmo314/go-wincamcfg/pkg/properties"
)

type Prober struct {
	fw  capture.Framework
	log zerolog.Logger
}

func New(fw capture.Framework, log zerolog.Logger) *Prober {
	return &Prober{fw: fw, log: log.With().Str("component", "probe").Logger()}
}

// Probe queries the live capability of prop on dev. A property the driver does
// not implement yields an unsupported capability and no error; any other
// failure is returned for the caller to classify.
func (p *Prober) Probe(dev capture.Device, prop properties.ID) (properties.Capability, error) {
	r, err := p.fw.GetRange(dev, prop)
	if errors.Is(err, capture.ErrNotSupported) {
		p.log.Trace().Int("device", dev.Index).Stringer("property", prop).Msg("property not supported")
		return properties.Capability{}, nil
	}
	if err != nil {
		return properties.Capability{}, fmt.Errorf("get range of %s: %w", prop, err)
	}

	p.log.Trace().
		Int("device", dev.Index).
		Stringer("property", prop).
		Int32("min", r.Min).
		Int32("max", r.Max).
		Int32("step", r.Step).
		Int32("default", r.Default).
		Stringer("flags", r.Flags).
		Msg("range")

	return properties.Capability{
		Supported: true,
		Min:       r.Min,
		Max:       r.Max,
		Step:      r.Step,
		Default:   r.Default,
		Flags:     r.Flags,
	}, nil
}

// Probed is the outcome of probing a single property.
type Probed struct {
	Property   properties.ID
	Capability properties.Capability
	Err        error
}

// ProbeAll probes ids in order, or every catalog property in declaration
// order when ids is empty. Failures are kept per property so one bad query
// does not hide the rest.
func (p *Prober) ProbeAll(dev capture.Device, ids ...properties.ID) []Probed {
	if len(ids) == 0 {
		ids = properties.All()
	}
	out := make([]Probed, 0, len(ids))
	for _, id := range ids {
		c, err := p.Probe(dev, id)
		out = append(out, Probed{Property: id, Capability: c, Err: err})
	}
	return out
}
