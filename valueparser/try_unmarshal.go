package valueparser

import (
	"encoding"
	"net/http"
	"reflect"

	"github.com/YaCodeDev/GoYaQuickInput/yaerrors"
)

// TryUnmarshal converts value to T through valueType's encoding.TextUnmarshaler or
// Unmarshalable implementation. valueType must be convertible to T.
//
// Example usage:
//
//	level, err := TryUnmarshal[yalogger.Level]("debug", reflect.TypeFor[yalogger.Level]())
//	if err != nil {
//		// Handle error
//	}
func TryUnmarshal[T ParsableType](value string, valueType reflect.Type) (T, yaerrors.Error) {
	var zero T

	ptr := reflect.New(valueType)

	var err error

	switch unmarshaler := ptr.Interface().(type) {
	case encoding.TextUnmarshaler:
		err = unmarshaler.UnmarshalText([]byte(value))
	case Unmarshalable:
		err = unmarshaler.Unmarshal(value)
	default:
		return zero, yaerrors.FromError(
			http.StatusBadRequest,
			ErrUnparsableValue,
			"try unmarshal: "+valueType.String()+" has no unmarshaler",
		)
	}

	if err != nil {
		return zero, yaerrors.FromError(
			http.StatusBadRequest,
			ErrInvalidValue,
			"try unmarshal: "+err.Error(),
		)
	}

	zeroType := reflect.TypeOf(zero)
	if !ptr.Elem().Type().ConvertibleTo(zeroType) {
		return zero, yaerrors.FromError(
			http.StatusInternalServerError,
			ErrInvalidValue,
			"try unmarshal: "+valueType.String()+" is not convertible to "+zeroType.String(),
		)
	}

	if val, ok := ptr.Elem().Convert(zeroType).Interface().(T); ok {
		return val, nil
	}

	return zero, yaerrors.FromError(
		http.StatusInternalServerError,
		ErrInvalidValue,
		"try unmarshal: unexpected converted type",
	)
}
