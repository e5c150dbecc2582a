package yainput

import (
	"fmt"

	"github.com/YaCodeDev/GoYaQuickInput/valueparser"
)

// DefaultSeparator is written on its own line after every error message.
const DefaultSeparator = "---"

const pointerSizedWidth = "32/64"

const (
	signedMessage   = "Please enter a valid number (%s bits)."
	unsignedMessage = "Please enter a valid positive number (%s bits)."
	realMessage     = "Please enter a valid real number (%s bits)."

	BoolMessage = "Please enter a valid boolean value (true / false)."
	CharMessage = "Please enter a character."
)

var (
	Int8Message    = fmt.Sprintf(signedMessage, "8")
	Int16Message   = fmt.Sprintf(signedMessage, "16")
	Int32Message   = fmt.Sprintf(signedMessage, "32")
	Int64Message   = fmt.Sprintf(signedMessage, "64")
	Int128Message  = fmt.Sprintf(signedMessage, "128")
	IntMessage     = fmt.Sprintf(signedMessage, pointerSizedWidth)
	Uint8Message   = fmt.Sprintf(unsignedMessage, "8")
	Uint16Message  = fmt.Sprintf(unsignedMessage, "16")
	Uint32Message  = fmt.Sprintf(unsignedMessage, "32")
	Uint64Message  = fmt.Sprintf(unsignedMessage, "64")
	Uint128Message = fmt.Sprintf(unsignedMessage, "128")
	UintMessage    = fmt.Sprintf(unsignedMessage, pointerSizedWidth)
	Float32Message = fmt.Sprintf(realMessage, "32")
	Float64Message = fmt.Sprintf(realMessage, "64")
)

// DefaultErrorMessage returns the message shown for kind when the caller gives none.
// Text kinds never reject input and have no message.
func DefaultErrorMessage(kind valueparser.Kind) string {
	switch kind {
	case valueparser.KindChar:
		return CharMessage
	case valueparser.KindBool:
		return BoolMessage
	case valueparser.KindInt8:
		return Int8Message
	case valueparser.KindInt16:
		return Int16Message
	case valueparser.KindInt32:
		return Int32Message
	case valueparser.KindInt64:
		return Int64Message
	case valueparser.KindInt128:
		return Int128Message
	case valueparser.KindInt:
		return IntMessage
	case valueparser.KindUint8:
		return Uint8Message
	case valueparser.KindUint16:
		return Uint16Message
	case valueparser.KindUint32:
		return Uint32Message
	case valueparser.KindUint64:
		return Uint64Message
	case valueparser.KindUint128:
		return Uint128Message
	case valueparser.KindUint:
		return UintMessage
	case valueparser.KindFloat32:
		return Float32Message
	case valueparser.KindFloat64:
		return Float64Message
	default:
		return ""
	}
}
