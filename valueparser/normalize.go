package valueparser

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	commaSeparator = ","
	pointSeparator = "."
)

// TrimInput strips leading and trailing Unicode whitespace, line terminator included.
func TrimInput(line string) string {
	return strings.TrimSpace(line)
}

// NormalizeDecimalSeparator replaces every ',' with '.', so "12,3" parses like "12.3".
// A line holding several commas still becomes invalid: "1,2,3" turns into "1.2.3".
func NormalizeDecimalSeparator(s string) string {
	return strings.ReplaceAll(s, commaSeparator, pointSeparator)
}

// FoldCase lower-cases s. A new caser is built per call since cases.Caser is stateful.
func FoldCase(s string) string {
	return cases.Lower(language.Und).String(s)
}
