// Package translate converts between symbolic property values and the raw
// (value, flag) pairs the capture framework reads and writes.
//
// Translation is pure: it validates against a capability obtained elsewhere
// and never talks to a device.
package translate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kevmo314/go-wincamcfg/pkg/properties"
)

// Raw is a framework-level property value.
type Raw struct {
	Value int32                  `json:"value"`
	Flag  properties.ControlFlag `json:"flag"`
}

// Encode resolves v against the device capability into the raw pair to write.
func Encode(spec properties.Spec, c properties.Capability, v Value) (Raw, error) {
	if !c.Supported {
		return Raw{}, fmt.Errorf("%w: %s is not supported by the device", ErrUnsupportedValue, spec.Name)
	}

	switch v.kind {
	case valueDefault:
		if spec.DefaultAuto && c.Flags.Has(properties.FlagAuto) {
			return Raw{Value: c.Default, Flag: properties.FlagAuto}, nil
		}
		return Raw{Value: c.Default, Flag: properties.FlagManual}, nil
	case valueToken:
		return encodeToken(spec, c, v.token)
	default:
		return encodeInt(spec, c, v.n)
	}
}

func encodeToken(spec properties.Spec, c properties.Capability, t properties.Token) (Raw, error) {
	if t.Flag == properties.FlagAuto {
		if c.Flags.Has(properties.FlagAuto) {
			value := c.Default
			if !t.DeviceValue && c.InRange(t.Value) {
				value = t.Value
			}
			return Raw{Value: value, Flag: properties.FlagAuto}, nil
		}
		// Some drivers model the automatic mode as a plain value.
		if !t.DeviceValue && c.AllowsManual() && c.InRange(t.Value) {
			return Raw{Value: t.Value, Flag: properties.FlagManual}, nil
		}
		return Raw{}, fmt.Errorf("%w: device does not support automatic %s", ErrUnsupportedValue, spec.Name)
	}

	value := t.Value
	if t.DeviceValue {
		value = c.Default
	}
	if !c.AllowsManual() {
		return Raw{}, fmt.Errorf("%w: device does not support manual %s", ErrUnsupportedValue, spec.Name)
	}
	if !c.InRange(value) {
		return Raw{}, fmt.Errorf("%w: %s is not supported by the device (supported: %s)", ErrUnsupportedValue, t.Name, SupportedValues(spec, c))
	}
	return Raw{Value: value, Flag: properties.FlagManual}, nil
}

func encodeInt(spec properties.Spec, c properties.Capability, n int64) (Raw, error) {
	if !spec.AcceptsIntegers() {
		return Raw{}, fmt.Errorf("%w: %s is %s-valued, expected %s", ErrInvalidForPropertyKind, spec.Name, spec.Kind, expected(spec))
	}
	if !c.AllowsManual() {
		return Raw{}, fmt.Errorf("%w: device does not support manual %s", ErrUnsupportedValue, spec.Name)
	}
	if n < int64(c.Min) || n > int64(c.Max) {
		return Raw{}, &OutOfRangeError{Value: n, Min: c.Min, Max: c.Max}
	}
	v := int32(n)
	if c.Step > 1 && (n-int64(c.Min))%int64(c.Step) != 0 {
		return Raw{}, &StepError{Value: v, Step: c.Step}
	}
	return Raw{Value: v, Flag: properties.FlagManual}, nil
}

// Display is a raw value mapped back to its symbolic form.
type Display struct {
	Text  string                 `json:"text"`
	Value int32                  `json:"value"`
	Flag  properties.ControlFlag `json:"flag"`
}

func (d Display) String() string { return d.Text }

// Decode maps a raw pair read from a device to the closest symbolic form.
// Values without a vocabulary token fall back to the integer.
func Decode(spec properties.Spec, c properties.Capability, raw Raw) Display {
	d := Display{Value: raw.Value, Flag: raw.Flag}
	if raw.Flag == properties.FlagAuto && c.Flags.Has(properties.FlagAuto) {
		d.Text = "Auto"
		return d
	}
	if t, ok := spec.TokenForValue(raw.Value); ok {
		d.Text = t.Name
		return d
	}
	d.Text = strconv.FormatInt(int64(raw.Value), 10)
	return d
}

// DecodeDefault renders the capability default the way a current value would
// be rendered under manual control.
func DecodeDefault(spec properties.Spec, c properties.Capability) Display {
	return Decode(spec, c, Raw{Value: c.Default, Flag: properties.FlagManual})
}

// SupportedValues describes the inputs the device accepts for spec, e.g.
// "0-255", "-10-10 step 2, Auto" or "Disabled, 50Hz, 60Hz".
func SupportedValues(spec properties.Spec, c properties.Capability) string {
	if !c.Supported {
		return ""
	}

	var parts []string
	if spec.AcceptsIntegers() && c.AllowsManual() {
		r := fmt.Sprintf("%d-%d", c.Min, c.Max)
		if c.Step > 1 {
			r += fmt.Sprintf(" step %d", c.Step)
		}
		parts = append(parts, r)
	}

	for _, t := range spec.Tokens {
		if _, err := encodeToken(spec, c, t); err != nil {
			continue
		}
		// Range-valued tokens are already covered by the numeric range.
		if spec.AcceptsIntegers() && t.Flag == properties.FlagManual {
			continue
		}
		parts = append(parts, t.Name)
	}

	if _, ok := spec.Token(properties.AutoToken.Name); !ok && c.Flags.Has(properties.FlagAuto) {
		parts = append(parts, properties.AutoToken.Name)
	}

	return strings.Join(parts, ", ")
}
