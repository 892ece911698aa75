package manager

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kevmo314/go-wincamcfg/pkg/capture"
	"github.com/kevmo314/go-wincamcfg/pkg/properties"
	"github.com/kevmo314/go-wincamcfg/pkg/translate"
)

// Outcome classifies the result of one (device, property) operation.
type Outcome int

const (
	Success Outcome = iota
	// Unsupported means the device does not implement the property.
	Unsupported
	UnsupportedValue
	InvalidForPropertyKind
	OutOfRange
	NotStepAligned
	DeviceBusy
	DeviceError
)

var outcomeNames = [...]string{
	Success:                "Success",
	Unsupported:            "Unsupported",
	UnsupportedValue:       "UnsupportedValue",
	InvalidForPropertyKind: "InvalidForPropertyKind",
	OutOfRange:             "OutOfRange",
	NotStepAligned:         "NotStepAligned",
	DeviceBusy:             "DeviceBusy",
	DeviceError:            "DeviceError",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
	return outcomeNames[o]
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// classify maps an error from probing, translation or the framework onto an
// outcome. Anything unrecognised is an opaque device error.
func classify(err error) Outcome {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, capture.ErrNotSupported):
		return Unsupported
	case errors.Is(err, capture.ErrDeviceBusy):
		return DeviceBusy
	case errors.Is(err, translate.ErrUnsupportedValue):
		return UnsupportedValue
	case errors.Is(err, translate.ErrInvalidForPropertyKind):
		return InvalidForPropertyKind
	case errors.Is(err, translate.ErrOutOfRange):
		return OutOfRange
	case errors.Is(err, translate.ErrNotStepAligned):
		return NotStepAligned
	}
	return DeviceError
}

// Result is the outcome of one (device, property) pair.
type Result struct {
	DeviceIndex int
	DeviceName  string
	Property    properties.ID
	Outcome     Outcome
	// Requested is the user input of a set, or "default".
	Requested string
	// Value is the current value for a get and the written value for a set.
	Value     *translate.Display
	Default   *translate.Display
	Supported string
	Detail    string
}

func (r Result) OK() bool { return r.Outcome == Success }

type Operation string

const (
	OperationGet Operation = "get"
	OperationSet Operation = "set"
)

// Report collects the results of one get or set, devices in enumeration order
// and properties in catalog order within each device.
type Report struct {
	RunID     uuid.UUID
	Operation Operation
	// Explicit is true when a single property was named rather than "all".
	Explicit bool
	Devices  []capture.Device
	Results  []Result
}

func newReport(op Operation, props PropertySelector, devices []capture.Device) *Report {
	return &Report{
		RunID:     uuid.New(),
		Operation: op,
		Explicit:  !props.All(),
		Devices:   devices,
	}
}

// Failed reports whether res makes the run unsuccessful. An unsupported
// property is only a failure when a set named it explicitly.
func (r *Report) Failed(res Result) bool {
	switch res.Outcome {
	case Success:
		return false
	case Unsupported:
		return r.Operation == OperationSet && r.Explicit
	}
	return true
}

// ResultsFor returns the results of the device with the given index.
func (r *Report) ResultsFor(deviceIndex int) []Result {
	var out []Result
	for _, res := range r.Results {
		if res.DeviceIndex == deviceIndex {
			out = append(out, res)
		}
	}
	return out
}

// ExitCode is 0 when no result failed and 1 otherwise.
func (r *Report) ExitCode() int {
	for _, res := range r.Results {
		if r.Failed(res) {
			return 1
		}
	}
	return 0
}
