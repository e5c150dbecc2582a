package yainput

import (
	"math/big"
	"net/http"

	"github.com/YaCodeDev/GoYaQuickInput/valueparser"
	"github.com/YaCodeDev/GoYaQuickInput/yaerrors"
)

// ReadString reads one line and returns it trimmed. Any line is accepted.
func (r *Reader) ReadString(prompt *string) (string, yaerrors.Error) {
	return Read(r, prompt, nil, valueparser.ParseTrimmed, "")
}

// ReadStringUntrimmed reads one line and returns it as typed, line terminator included.
func (r *Reader) ReadStringUntrimmed(prompt *string) (string, yaerrors.Error) {
	return Read(r, prompt, nil, valueparser.ParseRaw, "")
}

// ReadChar returns the first character of the trimmed line, ignoring the rest.
// Empty lines are rejected with CharMessage.
func (r *Reader) ReadChar(prompt *string) (rune, yaerrors.Error) {
	return Read(r, prompt, nil, valueparser.ParseChar, CharMessage)
}

// ReadBool accepts "true" or "false" in any letter case.
func (r *Reader) ReadBool(prompt, errMsg *string) (bool, yaerrors.Error) {
	return Read(r, prompt, errMsg, valueparser.ParseBoolLiteral, BoolMessage)
}

func (r *Reader) ReadInt8(prompt, errMsg *string) (int8, yaerrors.Error) {
	return Read(r, prompt, errMsg, valueparser.ParseSigned[int8], Int8Message)
}

func (r *Reader) ReadInt16(prompt, errMsg *string) (int16, yaerrors.Error) {
	return Read(r, prompt, errMsg, valueparser.ParseSigned[int16], Int16Message)
}

func (r *Reader) ReadInt32(prompt, errMsg *string) (int32, yaerrors.Error) {
	return Read(r, prompt, errMsg, valueparser.ParseSigned[int32], Int32Message)
}

func (r *Reader) ReadInt64(prompt, errMsg *string) (int64, yaerrors.Error) {
	return Read(r, prompt, errMsg, valueparser.ParseSigned[int64], Int64Message)
}

// ReadInt128 returns a *big.Int guaranteed to lie in [-2^127, 2^127-1].
func (r *Reader) ReadInt128(prompt, errMsg *string) (*big.Int, yaerrors.Error) {
	return Read(r, prompt, errMsg, valueparser.ParseInt128, Int128Message)
}

// ReadInt reads a pointer-sized signed integer.
func (r *Reader) ReadInt(prompt, errMsg *string) (int, yaerrors.Error) {
	return Read(r, prompt, errMsg, valueparser.ParseSigned[int], IntMessage)
}

// ReadUint8 rejects negative values and anything above 255.
func (r *Reader) ReadUint8(prompt, errMsg *string) (uint8, yaerrors.Error) {
	return Read(r, prompt, errMsg, valueparser.ParseUnsigned[uint8], Uint8Message)
}

func (r *Reader) ReadUint16(prompt, errMsg *string) (uint16, yaerrors.Error) {
	return Read(r, prompt, errMsg, valueparser.ParseUnsigned[uint16], Uint16Message)
}

func (r *Reader) ReadUint32(prompt, errMsg *string) (uint32, yaerrors.Error) {
	return Read(r, prompt, errMsg, valueparser.ParseUnsigned[uint32], Uint32Message)
}

func (r *Reader) ReadUint64(prompt, errMsg *string) (uint64, yaerrors.Error) {
	return Read(r, prompt, errMsg, valueparser.ParseUnsigned[uint64], Uint64Message)
}

// ReadUint128 returns a *big.Int guaranteed to lie in [0, 2^128-1].
func (r *Reader) ReadUint128(prompt, errMsg *string) (*big.Int, yaerrors.Error) {
	return Read(r, prompt, errMsg, valueparser.ParseUint128, Uint128Message)
}

// ReadUint reads a pointer-sized unsigned integer.
func (r *Reader) ReadUint(prompt, errMsg *string) (uint, yaerrors.Error) {
	return Read(r, prompt, errMsg, valueparser.ParseUnsigned[uint], UintMessage)
}

// ReadFloat32 accepts both '.' and ',' as decimal separator.
func (r *Reader) ReadFloat32(prompt, errMsg *string) (float32, yaerrors.Error) {
	return Read(r, prompt, errMsg, valueparser.ParseFloat[float32], Float32Message)
}

// ReadFloat64 accepts both '.' and ',' as decimal separator.
func (r *Reader) ReadFloat64(prompt, errMsg *string) (float64, yaerrors.Error) {
	return Read(r, prompt, errMsg, valueparser.ParseFloat[float64], Float64Message)
}

// ReadKind reads a value of a kind chosen at runtime, boxed in an any.
// The dynamic type matches valueparser.ParseKind.
func (r *Reader) ReadKind(kind valueparser.Kind, prompt, errMsg *string) (any, yaerrors.Error) {
	if !kind.IsValid() {
		return nil, yaerrors.FromError(
			http.StatusBadRequest,
			valueparser.ErrUnknownKind,
			"read kind: "+kind.String(),
		)
	}

	return Read(r, prompt, errMsg, func(line string) (any, yaerrors.Error) {
		return valueparser.ParseKind(kind, line)
	}, DefaultErrorMessage(kind))
}
