package valueparser

import (
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/YaCodeDev/GoYaQuickInput/yaerrors"
)

const (
	decimalBase = 10
	wideBits    = 128
)

var (
	maxInt128  = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), wideBits-1), big.NewInt(1))
	minInt128  = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), wideBits-1))
	maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), wideBits), big.NewInt(1))
)

// ParseSigned trims line and parses it as a base-10 integer that fits T.
// An optional leading '+' or '-' is accepted.
//
// Example usage:
//
//	value, err := ParseSigned[int16](" -300\n")
//	if err != nil {
//		// Handle error
//	}
func ParseSigned[T SignedInteger](line string) (T, yaerrors.Error) {
	bitSize := reflect.TypeOf((*T)(nil)).Elem().Bits()

	value, err := parseIntBits(TrimInput(line), bitSize)
	if err != nil {
		return 0, err.Wrap(fmt.Sprintf("parse int%d", bitSize))
	}

	return T(value), nil
}

// ParseUnsigned trims line and parses it as a base-10 unsigned integer that fits T.
// A leading '-' is rejected even for "-0", a single leading '+' is accepted.
//
// Example usage:
//
//	value, err := ParseUnsigned[uint8]("255")
//	if err != nil {
//		// Handle error
//	}
func ParseUnsigned[T UnsignedInteger](line string) (T, yaerrors.Error) {
	bitSize := reflect.TypeOf((*T)(nil)).Elem().Bits()

	value, err := parseUintBits(TrimInput(line), bitSize)
	if err != nil {
		return 0, err.Wrap(fmt.Sprintf("parse uint%d", bitSize))
	}

	return T(value), nil
}

// ParseFloat trims line, swaps ',' for '.', and parses the result as a base-10 float of T's precision.
// Hexadecimal floats are rejected and so are values beyond T's range.
//
// Example usage:
//
//	value, err := ParseFloat[float64]("12,3")
//	// value == 12.3
func ParseFloat[T Float](line string) (T, yaerrors.Error) {
	bitSize := reflect.TypeOf((*T)(nil)).Elem().Bits()

	value, err := parseFloatBits(NormalizeDecimalSeparator(TrimInput(line)), bitSize)
	if err != nil {
		return 0, err.Wrap(fmt.Sprintf("parse float%d", bitSize))
	}

	return T(value), nil
}

// ParseInt128 trims line and parses it as a signed 128-bit integer.
func ParseInt128(line string) (*big.Int, yaerrors.Error) {
	value, err := parseBigInteger(TrimInput(line), minInt128, maxInt128)
	if err != nil {
		return nil, err.Wrap("parse int128")
	}

	return value, nil
}

// ParseUint128 trims line and parses it as an unsigned 128-bit integer.
func ParseUint128(line string) (*big.Int, yaerrors.Error) {
	trimmed := TrimInput(line)
	if strings.HasPrefix(trimmed, "-") {
		return nil, yaerrors.FromError(
			http.StatusBadRequest,
			ErrInvalidValue,
			fmt.Sprintf("parse uint128: negative value %q", trimmed),
		)
	}

	value, err := parseBigInteger(trimmed, new(big.Int), maxUint128)
	if err != nil {
		return nil, err.Wrap("parse uint128")
	}

	return value, nil
}

func parseIntBits(value string, bitSize int) (int64, yaerrors.Error) {
	if value == "" {
		return 0, yaerrors.FromError(http.StatusBadRequest, ErrEmptyInput, "parse integer")
	}

	parsed, err := strconv.ParseInt(value, decimalBase, bitSize)
	if err != nil {
		return 0, numError(value, err)
	}

	return parsed, nil
}

func parseUintBits(value string, bitSize int) (uint64, yaerrors.Error) {
	if value == "" {
		return 0, yaerrors.FromError(http.StatusBadRequest, ErrEmptyInput, "parse integer")
	}

	if strings.HasPrefix(value, "-") {
		return 0, yaerrors.FromError(
			http.StatusBadRequest,
			ErrInvalidValue,
			fmt.Sprintf("parse integer: negative value %q", value),
		)
	}

	parsed, err := strconv.ParseUint(strings.TrimPrefix(value, "+"), decimalBase, bitSize)
	if err != nil {
		return 0, numError(value, err)
	}

	return parsed, nil
}

func parseFloatBits(value string, bitSize int) (float64, yaerrors.Error) {
	if value == "" {
		return 0, yaerrors.FromError(http.StatusBadRequest, ErrEmptyInput, "parse float")
	}

	// strconv accepts Go literal syntax, console input is plain decimal.
	if isHexFloat(value) || strings.ContainsRune(value, '_') {
		return 0, yaerrors.FromError(
			http.StatusBadRequest,
			ErrInvalidValue,
			fmt.Sprintf("parse float: %q is not a decimal number", value),
		)
	}

	parsed, err := strconv.ParseFloat(value, bitSize)
	if err != nil {
		return 0, numError(value, err)
	}

	return parsed, nil
}

// parseBigInteger accepts an optional sign followed by decimal digits only.
func parseBigInteger(value string, lowest, highest *big.Int) (*big.Int, yaerrors.Error) {
	if value == "" {
		return nil, yaerrors.FromError(http.StatusBadRequest, ErrEmptyInput, "parse integer")
	}

	if !isDecimalInteger(value) {
		return nil, yaerrors.FromError(
			http.StatusBadRequest,
			ErrInvalidValue,
			fmt.Sprintf("parse integer: %q is not a decimal integer", value),
		)
	}

	parsed, ok := new(big.Int).SetString(value, decimalBase)
	if !ok {
		return nil, yaerrors.FromError(
			http.StatusBadRequest,
			ErrInvalidValue,
			fmt.Sprintf("parse integer: %q is not a decimal integer", value),
		)
	}

	if parsed.Cmp(lowest) < 0 || parsed.Cmp(highest) > 0 {
		return nil, yaerrors.FromError(
			http.StatusBadRequest,
			ErrOutOfRange,
			fmt.Sprintf("parse integer: %s not in [%s, %s]", parsed, lowest, highest),
		)
	}

	return parsed, nil
}

func isDecimalInteger(value string) bool {
	digits := strings.TrimLeft(value[:1], "+-") + value[1:]
	if digits == "" {
		return false
	}

	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func isHexFloat(value string) bool {
	unsigned := strings.TrimLeft(value, "+-")

	return len(unsigned) >= 2 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X')
}

func numError(value string, err error) yaerrors.Error {
	if errors.Is(err, strconv.ErrRange) {
		return yaerrors.FromError(
			http.StatusBadRequest,
			ErrOutOfRange,
			fmt.Sprintf("parse number %q", value),
		)
	}

	return yaerrors.FromError(
		http.StatusBadRequest,
		ErrInvalidValue,
		fmt.Sprintf("parse number %q", value),
	)
}
