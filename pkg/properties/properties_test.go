package properties

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_DeclarationOrder(t *testing.T) {
	ids := All()
	require.Len(t, ids, int(numProperties))

	want := []string{
		"Brightness", "Contrast", "Hue", "Saturation", "Sharpness", "Gamma", "Gain",
		"WhiteBalance", "BacklightCompensation", "ColorEnable", "PowerlineFrequency",
		"Pan", "Tilt", "Roll", "Zoom", "Exposure", "Iris", "Focus",
	}
	for i, id := range ids {
		assert.Equal(t, ID(i), id)
		assert.Equal(t, want[i], id.String())
		assert.Equal(t, id, Lookup(id).ID)
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ID
		wantErr error
	}{
		{name: "exact", input: "PowerlineFrequency", want: PowerlineFrequency},
		{name: "case insensitive", input: "brightness", want: Brightness},
		{name: "camera control", input: "FOCUS", want: Focus},
		{name: "unknown", input: "Loudness", wantErr: ErrUnknownProperty},
		{name: "empty", input: "", wantErr: ErrInvalidName},
		{name: "punctuation", input: "White-Balance", wantErr: ErrInvalidName},
		{name: "too long", input: string(make([]byte, 65)), wantErr: ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ByName(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpec_Token(t *testing.T) {
	plf := Lookup(PowerlineFrequency)

	tok, ok := plf.Token("50hz")
	require.True(t, ok)
	assert.Equal(t, int32(1), tok.Value)
	assert.Equal(t, FlagManual, tok.Flag)

	tok, ok = plf.Token("60")
	require.True(t, ok)
	assert.Equal(t, "60Hz", tok.Name)

	tok, ok = plf.Token("AUTO")
	require.True(t, ok)
	assert.Equal(t, FlagAuto, tok.Flag)

	_, ok = plf.Token("On")
	assert.False(t, ok)

	_, ok = Lookup(Brightness).Token("Auto")
	assert.False(t, ok, "range-only properties have no vocabulary")
}

func TestSpec_TokenForValue(t *testing.T) {
	tok, ok := Lookup(PowerlineFrequency).TokenForValue(3)
	require.True(t, ok)
	assert.Equal(t, "Auto", tok.Name)

	_, ok = Lookup(WhiteBalance).TokenForValue(0)
	assert.False(t, ok, "device-valued tokens never match a raw value")
}

func TestKinds(t *testing.T) {
	assert.Equal(t, KindRange, Lookup(Brightness).Kind)
	assert.Equal(t, KindFlag, Lookup(PowerlineFrequency).Kind)
	assert.Equal(t, KindFlag, Lookup(ColorEnable).Kind)
	assert.Equal(t, KindHybrid, Lookup(WhiteBalance).Kind)
	assert.False(t, Lookup(ColorEnable).AcceptsIntegers())
	assert.True(t, Lookup(WhiteBalance).AcceptsIntegers())
}

func TestID_Text(t *testing.T) {
	b, err := Gain.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Gain", string(b))

	var id ID
	require.NoError(t, id.UnmarshalText([]byte("gamma")))
	assert.Equal(t, Gamma, id)

	_, err = ID(99).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownProperty)
}

func TestLookup_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { Lookup(ID(-1)) })
}

func TestFlagSet(t *testing.T) {
	s := Flags(FlagManual, FlagAuto)
	assert.True(t, s.Has(FlagAuto))
	assert.True(t, s.Has(FlagManual))
	assert.Equal(t, FlagAuto, s.Current())
	assert.Equal(t, "Manual, Auto", s.String())

	assert.Equal(t, FlagManual, Flags(FlagManual).Current())
	assert.Equal(t, FlagManual, FlagSet(0).Current())
}

func TestCapability(t *testing.T) {
	c := Capability{Supported: true, Min: -10, Max: 10, Step: 1, Flags: Flags(FlagAuto)}
	assert.True(t, c.InRange(-10))
	assert.True(t, c.InRange(10))
	assert.False(t, c.InRange(11))
	assert.False(t, c.AllowsManual())
	assert.True(t, Capability{}.AllowsManual())
}
