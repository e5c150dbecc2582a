package valueparser

import (
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/YaCodeDev/GoYaQuickInput/yaerrors"
)

const (
	trueLiteral  = "true"
	falseLiteral = "false"
)

// ParseTrimmed returns line without surrounding whitespace. It never fails.
func ParseTrimmed(line string) (string, yaerrors.Error) {
	return TrimInput(line), nil
}

// ParseRaw returns line untouched, line terminator included. It never fails.
func ParseRaw(line string) (string, yaerrors.Error) {
	return line, nil
}

// ParseChar returns the first rune of the trimmed line, ignoring the rest of it.
// An empty (or whitespace only) line is rejected.
//
// Example usage:
//
//	r, err := ParseChar("hello\n")
//	// r == 'h'
func ParseChar(line string) (rune, yaerrors.Error) {
	trimmed := TrimInput(line)
	if trimmed == "" {
		return 0, yaerrors.FromError(http.StatusBadRequest, ErrEmptyInput, "parse char")
	}

	r, size := utf8.DecodeRuneInString(trimmed)
	if r == utf8.RuneError && size <= 1 {
		return 0, yaerrors.FromError(
			http.StatusBadRequest,
			ErrInvalidValue,
			fmt.Sprintf("parse char: invalid UTF-8 in %q", trimmed),
		)
	}

	return r, nil
}

// ParseBoolLiteral accepts only "true" or "false", compared case-insensitively
// after trimming. Unlike strconv.ParseBool, "1", "t" or "yes" are rejected.
func ParseBoolLiteral(line string) (bool, yaerrors.Error) {
	switch folded := FoldCase(TrimInput(line)); folded {
	case trueLiteral:
		return true, nil
	case falseLiteral:
		return false, nil
	default:
		return false, yaerrors.FromError(
			http.StatusBadRequest,
			ErrInvalidValue,
			fmt.Sprintf("parse bool: %q is neither %s nor %s", folded, trueLiteral, falseLiteral),
		)
	}
}
