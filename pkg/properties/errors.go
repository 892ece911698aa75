package properties

import "errors"

var (
	ErrUnknownProperty = errors.New("unknown property")
	ErrInvalidName     = errors.New("invalid property name")
)
