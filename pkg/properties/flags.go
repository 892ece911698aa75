package properties

import "strings"

// ControlFlag selects automatic or manual control of a property value. The
// values are the capture framework's Flags_Auto and Flags_Manual bits.
type ControlFlag int32

const (
	FlagAuto   ControlFlag = 0x0001
	FlagManual ControlFlag = 0x0002
)

func (f ControlFlag) String() string {
	switch f {
	case FlagAuto:
		return "Auto"
	case FlagManual:
		return "Manual"
	}
	return "Unknown"
}

func (f ControlFlag) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// FlagSet is a bit set of control flags as reported by the framework.
type FlagSet int32

func (s FlagSet) Has(f ControlFlag) bool {
	return int32(s)&int32(f) != 0
}

// Flags builds a FlagSet from individual flags.
func Flags(flags ...ControlFlag) FlagSet {
	var s FlagSet
	for _, f := range flags {
		s |= FlagSet(f)
	}
	return s
}

// Current reduces a flag set read back from a device to the single flag in
// effect. Auto wins when a driver reports both bits.
func (s FlagSet) Current() ControlFlag {
	if s.Has(FlagAuto) {
		return FlagAuto
	}
	return FlagManual
}

func (s FlagSet) String() string {
	var names []string
	if s.Has(FlagManual) {
		names = append(names, "Manual")
	}
	if s.Has(FlagAuto) {
		names = append(names, "Auto")
	}
	return strings.Join(names, ", ")
}

// Capability is a device's live range and flag support for one property.
type Capability struct {
	Supported bool
	Min       int32
	Max       int32
	Step      int32
	Default   int32
	Flags     FlagSet
}

// InRange reports whether v lies within [Min, Max].
func (c Capability) InRange(v int32) bool {
	return v >= c.Min && v <= c.Max
}

// AllowsManual reports whether manual values can be written. Drivers that
// report no flags at all are treated as manual-only.
func (c Capability) AllowsManual() bool {
	return c.Flags == 0 || c.Flags.Has(FlagManual)
}
