package translate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kevmo314/go-wincamcfg/pkg/properties"
)

type valueKind int

const (
	valueInt valueKind = iota
	valueToken
	valueDefault
)

// Value is a user-facing property value: an integer, a vocabulary token or a
// request to restore the device default.
type Value struct {
	kind  valueKind
	n     int64
	token properties.Token
}

func Int(n int64) Value { return Value{kind: valueInt, n: n} }

func Named(t properties.Token) Value { return Value{kind: valueToken, token: t} }

func Default() Value { return Value{kind: valueDefault} }

func (v Value) IsDefault() bool { return v.kind == valueDefault }

func (v Value) String() string {
	switch v.kind {
	case valueToken:
		return v.token.Name
	case valueDefault:
		return "default"
	}
	return strconv.FormatInt(v.n, 10)
}

const maxValueLength = 32

// Parse interprets user input for the given property. Vocabulary tokens take
// precedence over integers so that aliases such as "50" resolve to 50Hz.
func Parse(spec properties.Spec, input string) (Value, error) {
	s := strings.TrimSpace(input)
	if s == "" || len(s) > maxValueLength {
		return Value{}, fmt.Errorf("%w: value must be 1-%d characters", ErrUnsupportedValue, maxValueLength)
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == ' ') {
			return Value{}, fmt.Errorf("%w: %q contains invalid characters", ErrUnsupportedValue, input)
		}
	}

	if t, ok := spec.Token(s); ok {
		return Named(t), nil
	}
	if strings.EqualFold(properties.AutoToken.Name, s) {
		return Named(properties.AutoToken), nil
	}

	// Integers beyond int32 still parse so that range checks can report them.
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(n), nil
	}

	return Value{}, fmt.Errorf("%w: %q for %s (expected %s)", ErrUnsupportedValue, input, spec.Name, expected(spec))
}

func expected(spec properties.Spec) string {
	var forms []string
	if spec.AcceptsIntegers() {
		forms = append(forms, "an integer")
	}
	for _, t := range spec.Tokens {
		forms = append(forms, t.Name)
	}
	return strings.Join(forms, ", ")
}
