package valueparser_test

import (
	"fmt"
	"math/big"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YaCodeDev/GoYaQuickInput/valueparser"
	"github.com/YaCodeDev/GoYaQuickInput/yalogger"
)

type ordinal uint64

var errUnknownOrdinal = fmt.Errorf("unknown ordinal")

func (o *ordinal) Unmarshal(data string) error {
	switch data {
	case "FIRST":
		*o = 1
	case "SECOND":
		*o = 2
	default:
		return errUnknownOrdinal
	}

	return nil
}

func TestParseValue_Basic(t *testing.T) {
	t.Parallel()

	s, err := valueparser.ParseValue[string]("Ya_Code")
	require.Nil(t, err)
	assert.Equal(t, "Ya_Code", s)

	i, err := valueparser.ParseValue[int16]("-300")
	require.Nil(t, err)
	assert.Equal(t, int16(-300), i)

	f, err := valueparser.ParseValue[float32]("1.5")
	require.Nil(t, err)
	assert.Equal(t, float32(1.5), f)

	b, err := valueparser.ParseValue[bool]("1")
	require.Nil(t, err)
	assert.True(t, b)

	raw, err := valueparser.ParseValue[[]byte]("abc")
	require.Nil(t, err)
	assert.Empty(t, cmp.Diff([]byte("abc"), raw))
}

func TestParseValue_RespectsWidth(t *testing.T) {
	t.Parallel()

	_, err := valueparser.ParseValue[uint8]("256")
	assert.NotNil(t, err)

	_, err = valueparser.ParseValue[int8]("-129")
	assert.NotNil(t, err)
}

func TestParseValue_TextUnmarshaler(t *testing.T) {
	t.Parallel()

	level, err := valueparser.ParseValue[yalogger.Level]("debug")
	require.Nil(t, err)
	assert.Equal(t, yalogger.DebugLevel, level)

	_, err = valueparser.ParseValue[yalogger.Level]("loud")
	assert.ErrorIs(t, err, valueparser.ErrInvalidValue)
}

func TestParseValueWithCustomType(t *testing.T) {
	t.Parallel()

	got, err := valueparser.ParseValueWithCustomType[uint64]("SECOND", reflect.TypeOf((*ordinal)(nil)).Elem())
	require.Nil(t, err)
	assert.Equal(t, uint64(2), got)

	_, err = valueparser.ParseValueWithCustomType[uint64]("THIRD", reflect.TypeOf((*ordinal)(nil)).Elem())
	assert.ErrorIs(t, err, valueparser.ErrInvalidValue)
}

func TestParseValue_NoUnmarshaler(t *testing.T) {
	t.Parallel()

	_, err := valueparser.ParseValue[int]("abc")
	assert.ErrorIs(t, err, valueparser.ErrUnparsableValue)
}

func TestKind_Unmarshal(t *testing.T) {
	t.Parallel()

	var kind valueparser.Kind

	require.NoError(t, kind.Unmarshal("UInt128"))
	assert.Equal(t, valueparser.KindUint128, kind)
	assert.Equal(t, "uint128", kind.String())

	assert.ErrorIs(t, kind.UnmarshalText([]byte("complex64")), valueparser.ErrUnknownKind)
}

func TestKinds_CoversEveryName(t *testing.T) {
	t.Parallel()

	kinds := valueparser.Kinds()

	assert.Len(t, kinds, 18)
	assert.Equal(t, valueparser.KindString, kinds[0])
	assert.Equal(t, valueparser.KindFloat64, kinds[len(kinds)-1])
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind valueparser.Kind
		line string
		want any
	}{
		{valueparser.KindString, " a b \n", "a b"},
		{valueparser.KindRawString, " a b \n", " a b \n"},
		{valueparser.KindChar, "xyz\n", 'x'},
		{valueparser.KindBool, "FALSE\n", false},
		{valueparser.KindInt8, "-8", int8(-8)},
		{valueparser.KindUint32, "32", uint32(32)},
		{valueparser.KindInt, "-1", -1},
		{valueparser.KindUint, "1", uint(1)},
		{valueparser.KindFloat64, "1,25", 1.25},
		{valueparser.KindFloat32, "0,5", float32(0.5)},
	}

	for _, tc := range cases {
		got, err := valueparser.ParseKind(tc.kind, tc.line)
		require.Nil(t, err, tc.kind.String())
		assert.Equal(t, tc.want, got, tc.kind.String())
	}

	wide, err := valueparser.ParseKind(valueparser.KindUint128, "18446744073709551616")
	require.Nil(t, err)
	require.IsType(t, &big.Int{}, wide)
	assert.Equal(t, "18446744073709551616", wide.(*big.Int).String()) //nolint:forcetypeassert

	_, err = valueparser.ParseKind(valueparser.KindUint8, "-1")
	assert.ErrorIs(t, err, valueparser.ErrInvalidValue)

	_, err = valueparser.ParseKind(valueparser.Kind(200), "1")
	assert.ErrorIs(t, err, valueparser.ErrUnknownKind)
}
