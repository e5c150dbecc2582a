package valueparser

import "github.com/YaCodeDev/GoYaQuickInput/yaerrors"

// Parser turns one raw input line into T. Implementations apply their own
// normalization (trimming, separator swap, case folding) before parsing.
type Parser[T any] func(line string) (T, yaerrors.Error)

// ParsableType is a type constraint that allows for any type that can be parsed from a string.
// It includes basic types like string, int, float, and bool,
// as well as slices of bytes (for byte arrays).
type ParsableType interface {
	ParsableComparableType | ~[]byte
}

// ParsableComparableType is a type constraint that allows for any comparable type.
// It includes basic types like string, int, float, and bool,
// but excludes slices and maps, which are not comparable in Go.
type ParsableComparableType interface {
	~string | SignedInteger | UnsignedInteger | Float | ~bool
}

// SignedInteger covers every fixed and pointer-sized signed integer.
type SignedInteger interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInteger covers every fixed and pointer-sized unsigned integer.
type UnsignedInteger interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float covers single and double precision floating point.
type Float interface {
	~float32 | ~float64
}

// Unmarshalable is implemented by custom types that parse themselves from a string.
type Unmarshalable interface {
	Unmarshal(data string) error
}
