package valueparser

import (
	"net/http"
	"strings"

	"github.com/YaCodeDev/GoYaQuickInput/yaerrors"
)

// Kind names one of the value types a console line can be read as.
type Kind uint8

const (
	KindString Kind = iota
	KindRawString
	KindChar
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindInt128
	KindInt
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUint128
	KindUint
	KindFloat32
	KindFloat64
)

var kindNames = [...]string{
	KindString:    "string",
	KindRawString: "raw",
	KindChar:      "char",
	KindBool:      "bool",
	KindInt8:      "int8",
	KindInt16:     "int16",
	KindInt32:     "int32",
	KindInt64:     "int64",
	KindInt128:    "int128",
	KindInt:       "int",
	KindUint8:     "uint8",
	KindUint16:    "uint16",
	KindUint32:    "uint32",
	KindUint64:    "uint64",
	KindUint128:   "uint128",
	KindUint:      "uint",
	KindFloat32:   "float32",
	KindFloat64:   "float64",
}

// Kinds returns every supported Kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames))
	for k := range kindNames {
		kinds = append(kinds, Kind(k))
	}

	return kinds
}

// IsValid reports whether k is one of the declared kinds.
func (k Kind) IsValid() bool {
	return int(k) < len(kindNames)
}

func (k Kind) String() string {
	if k.IsValid() {
		return kindNames[k]
	}

	return "unknown"
}

func (k *Kind) Unmarshal(text string) error {
	name := strings.ToLower(strings.TrimSpace(text))

	for i, known := range kindNames {
		if known == name {
			*k = Kind(i)

			return nil
		}
	}

	return ErrUnknownKind
}

func (k *Kind) UnmarshalText(text []byte) error {
	return k.Unmarshal(string(text))
}

// ParseKind parses line as kind and returns the value boxed in an any.
// Integers keep their exact Go type (int8, uint64, *big.Int for 128 bits, ...),
// characters are returned as rune.
func ParseKind(kind Kind, line string) (any, yaerrors.Error) {
	var (
		value any
		err   yaerrors.Error
	)

	switch kind {
	case KindString:
		value, err = ParseTrimmed(line)
	case KindRawString:
		value, err = ParseRaw(line)
	case KindChar:
		value, err = ParseChar(line)
	case KindBool:
		value, err = ParseBoolLiteral(line)
	case KindInt8:
		value, err = ParseSigned[int8](line)
	case KindInt16:
		value, err = ParseSigned[int16](line)
	case KindInt32:
		value, err = ParseSigned[int32](line)
	case KindInt64:
		value, err = ParseSigned[int64](line)
	case KindInt128:
		value, err = ParseInt128(line)
	case KindInt:
		value, err = ParseSigned[int](line)
	case KindUint8:
		value, err = ParseUnsigned[uint8](line)
	case KindUint16:
		value, err = ParseUnsigned[uint16](line)
	case KindUint32:
		value, err = ParseUnsigned[uint32](line)
	case KindUint64:
		value, err = ParseUnsigned[uint64](line)
	case KindUint128:
		value, err = ParseUint128(line)
	case KindUint:
		value, err = ParseUnsigned[uint](line)
	case KindFloat32:
		value, err = ParseFloat[float32](line)
	case KindFloat64:
		value, err = ParseFloat[float64](line)
	default:
		return nil, yaerrors.FromError(
			http.StatusBadRequest,
			ErrUnknownKind,
			"parse kind: "+kind.String(),
		)
	}

	if err != nil {
		return nil, err
	}

	return value, nil
}
