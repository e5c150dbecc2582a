package valueparser

import (
	"errors"
)

var (
	ErrInvalidValue    = errors.New("invalid value")
	ErrOutOfRange      = errors.New("value out of range")
	ErrEmptyInput      = errors.New("empty input")
	ErrUnparsableValue = errors.New("unparsable value")
	ErrUnknownKind     = errors.New("unknown kind")
)
