package properties

import (
	"fmt"
	"strings"
)

// ID identifies a device property. The numeric order of the constants is the
// catalog declaration order, which is also the order properties are reported in.
type ID int

const (
	Brightness ID = iota
	Contrast
	Hue
	Saturation
	Sharpness
	Gamma
	Gain
	WhiteBalance
	BacklightCompensation
	ColorEnable
	PowerlineFrequency
	Pan
	Tilt
	Roll
	Zoom
	Exposure
	Iris
	Focus

	numProperties
)

// Group is the control interface a property is exposed through.
type Group int

const (
	GroupVideoProcAmp Group = iota
	GroupCameraControl
)

func (g Group) String() string {
	switch g {
	case GroupVideoProcAmp:
		return "VideoProcAmp"
	case GroupCameraControl:
		return "CameraControl"
	}
	return fmt.Sprintf("Group(%d)", int(g))
}

// Kind describes which value forms a property accepts.
type Kind int

const (
	// KindRange accepts integers within the device range only.
	KindRange Kind = iota
	// KindFlag accepts vocabulary tokens only.
	KindFlag
	// KindHybrid accepts integers (manual) and vocabulary tokens.
	KindHybrid
)

func (k Kind) String() string {
	switch k {
	case KindRange:
		return "Range"
	case KindFlag:
		return "Flag"
	case KindHybrid:
		return "Hybrid"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a named value in a property's vocabulary along with its raw encoding.
type Token struct {
	Name    string
	Aliases []string
	Value   int32
	Flag    ControlFlag
	// DeviceValue tokens carry no raw value of their own; the device default is
	// sent alongside the flag.
	DeviceValue bool
}

func (t Token) matches(s string) bool {
	if strings.EqualFold(t.Name, s) {
		return true
	}
	for _, alias := range t.Aliases {
		if strings.EqualFold(alias, s) {
			return true
		}
	}
	return false
}

// Spec is the static description of a property.
type Spec struct {
	ID     ID
	Name   string
	Group  Group
	Native int32 // property index within the group's control interface
	Kind   Kind
	Tokens []Token
	// DefaultAuto marks properties whose factory default is automatic control.
	DefaultAuto bool
}

// Token resolves a vocabulary token by name or alias, case-insensitively.
func (s Spec) Token(name string) (Token, bool) {
	for _, t := range s.Tokens {
		if t.matches(name) {
			return t, true
		}
	}
	return Token{}, false
}

// TokenForValue returns the token whose fixed raw value equals v.
func (s Spec) TokenForValue(v int32) (Token, bool) {
	for _, t := range s.Tokens {
		if !t.DeviceValue && t.Value == v {
			return t, true
		}
	}
	return Token{}, false
}

// AcceptsIntegers reports whether bare integers are valid for the property.
func (s Spec) AcceptsIntegers() bool {
	return s.Kind != KindFlag
}

// AutoToken switches a property to automatic control, keeping the device
// default as its value. Any property whose device advertises the Auto flag
// accepts it.
var AutoToken = Token{Name: "Auto", Flag: FlagAuto, DeviceValue: true}

var onOff = []Token{
	{Name: "Off", Value: 0, Flag: FlagManual},
	{Name: "On", Value: 1, Flag: FlagManual},
}

var catalog = [numProperties]Spec{
	Brightness:            {Name: "Brightness", Group: GroupVideoProcAmp, Native: 0, Kind: KindRange},
	Contrast:              {Name: "Contrast", Group: GroupVideoProcAmp, Native: 1, Kind: KindHybrid, Tokens: []Token{AutoToken}},
	Hue:                   {Name: "Hue", Group: GroupVideoProcAmp, Native: 2, Kind: KindHybrid, Tokens: []Token{AutoToken}},
	Saturation:            {Name: "Saturation", Group: GroupVideoProcAmp, Native: 3, Kind: KindRange},
	Sharpness:             {Name: "Sharpness", Group: GroupVideoProcAmp, Native: 4, Kind: KindRange},
	Gamma:                 {Name: "Gamma", Group: GroupVideoProcAmp, Native: 5, Kind: KindRange},
	Gain:                  {Name: "Gain", Group: GroupVideoProcAmp, Native: 9, Kind: KindHybrid, Tokens: []Token{AutoToken}},
	WhiteBalance:          {Name: "WhiteBalance", Group: GroupVideoProcAmp, Native: 7, Kind: KindHybrid, Tokens: []Token{AutoToken}, DefaultAuto: true},
	BacklightCompensation: {Name: "BacklightCompensation", Group: GroupVideoProcAmp, Native: 8, Kind: KindHybrid, Tokens: onOff},
	ColorEnable:           {Name: "ColorEnable", Group: GroupVideoProcAmp, Native: 6, Kind: KindFlag, Tokens: onOff},
	PowerlineFrequency: {
		Name: "PowerlineFrequency", Group: GroupVideoProcAmp, Native: 13, Kind: KindFlag, DefaultAuto: true,
		Tokens: []Token{
			{Name: "Disabled", Value: 0, Flag: FlagManual},
			{Name: "50Hz", Aliases: []string{"50"}, Value: 1, Flag: FlagManual},
			{Name: "60Hz", Aliases: []string{"60"}, Value: 2, Flag: FlagManual},
			{Name: "Auto", Value: 3, Flag: FlagAuto},
		},
	},
	Pan:      {Name: "Pan", Group: GroupCameraControl, Native: 0, Kind: KindRange},
	Tilt:     {Name: "Tilt", Group: GroupCameraControl, Native: 1, Kind: KindRange},
	Roll:     {Name: "Roll", Group: GroupCameraControl, Native: 2, Kind: KindRange},
	Zoom:     {Name: "Zoom", Group: GroupCameraControl, Native: 3, Kind: KindRange},
	Exposure: {Name: "Exposure", Group: GroupCameraControl, Native: 4, Kind: KindHybrid, Tokens: []Token{AutoToken}, DefaultAuto: true},
	Iris:     {Name: "Iris", Group: GroupCameraControl, Native: 5, Kind: KindHybrid, Tokens: []Token{AutoToken}},
	Focus:    {Name: "Focus", Group: GroupCameraControl, Native: 6, Kind: KindHybrid, Tokens: []Token{AutoToken}, DefaultAuto: true},
}

func init() {
	for id := range catalog {
		catalog[id].ID = ID(id)
	}
}

// Lookup returns the catalog entry for id. It panics for identifiers outside
// the catalog, which can only be produced by converting arbitrary integers.
func Lookup(id ID) Spec {
	if !id.Valid() {
		panic(fmt.Sprintf("properties: unknown property id %d", int(id)))
	}
	return catalog[id]
}

// All returns every catalog property in declaration order.
func All() []ID {
	ids := make([]ID, numProperties)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// ByName resolves a user-supplied property name, case-insensitively.
func ByName(name string) (ID, error) {
	if err := ValidateName(name); err != nil {
		return 0, err
	}
	for _, spec := range catalog {
		if strings.EqualFold(spec.Name, name) {
			return spec.ID, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownProperty, name)
}

// ValidateName rejects names that cannot be property names at all.
func ValidateName(name string) error {
	if name == "" || len(name) > maxNameLength {
		return fmt.Errorf("%w: length must be 1-%d", ErrInvalidName, maxNameLength)
	}
	for _, r := range name {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return fmt.Errorf("%w: %q contains non-alphanumeric characters", ErrInvalidName, name)
		}
	}
	return nil
}

const maxNameLength = 64

func (id ID) Valid() bool {
	return id >= 0 && id < numProperties
}

func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("ID(%d)", int(id))
	}
	return catalog[id].Name
}

func (id ID) MarshalText() ([]byte, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownProperty, int(id))
	}
	return []byte(catalog[id].Name), nil
}

func (id *ID) UnmarshalText(b []byte) error {
	v, err := ByName(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}
