package valueparser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YaCodeDev/GoYaQuickInput/valueparser"
)

func TestParseBoolLiteral_CaseInsensitive(t *testing.T) {
	t.Parallel()

	for _, line := range []string{"true", "True", "TRUE", "tRuE", "  true\n"} {
		got, err := valueparser.ParseBoolLiteral(line)
		require.Nil(t, err, line)
		assert.True(t, got, line)
	}

	got, err := valueparser.ParseBoolLiteral("FaLsE\r\n")
	require.Nil(t, err)
	assert.False(t, got)
}

func TestParseBoolLiteral_RejectsOtherTokens(t *testing.T) {
	t.Parallel()

	for _, line := range []string{"yes", "no", "1", "0", "t", "f", "", "true!"} {
		_, err := valueparser.ParseBoolLiteral(line)
		assert.ErrorIs(t, err, valueparser.ErrInvalidValue, line)
	}
}

func TestParseChar_FirstRune(t *testing.T) {
	t.Parallel()

	got, err := valueparser.ParseChar("hello\n")
	require.Nil(t, err)
	assert.Equal(t, 'h', got)

	got, err = valueparser.ParseChar("  ñandú\n")
	require.Nil(t, err)
	assert.Equal(t, 'ñ', got)
}

func TestParseChar_Empty(t *testing.T) {
	t.Parallel()

	for _, line := range []string{"\n", "\r\n", "   \n", ""} {
		_, err := valueparser.ParseChar(line)
		assert.ErrorIs(t, err, valueparser.ErrEmptyInput, line)
	}
}

func TestParseChar_InvalidUTF8(t *testing.T) {
	t.Parallel()

	_, err := valueparser.ParseChar("\xff\n")
	assert.ErrorIs(t, err, valueparser.ErrInvalidValue)
}

func TestParseTrimmedAndRaw(t *testing.T) {
	t.Parallel()

	trimmed, err := valueparser.ParseTrimmed("  hi there \r\n")
	require.Nil(t, err)
	assert.Equal(t, "hi there", trimmed)

	raw, err := valueparser.ParseRaw("  hi there \r\n")
	require.Nil(t, err)
	assert.Equal(t, "  hi there \r\n", raw)
}

func TestNormalizeDecimalSeparator(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "12.3", valueparser.NormalizeDecimalSeparator("12,3"))
	assert.Equal(t, "1.2.3", valueparser.NormalizeDecimalSeparator("1,2,3"))
	assert.Equal(t, "12.3", valueparser.NormalizeDecimalSeparator("12.3"))
}

func TestFoldCase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "true", valueparser.FoldCase("TrUe"))
}
