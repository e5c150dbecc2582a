package valueparser

import (
	"encoding"
	"net/http"
	"reflect"
	"strconv"

	"github.com/YaCodeDev/GoYaQuickInput/yaerrors"
)

// ParseValue is a generic function that converts a string value to the specified type T.
// Numbers must fit T's width. Types implementing encoding.TextUnmarshaler or Unmarshalable
// are tried when the plain conversion fails, so named types such as yalogger.Level parse
// from their text form.
//
// ParseValue backs configuration loading and keeps strconv.ParseBool semantics for bool.
// Console input goes through the stricter ParseSigned, ParseBoolLiteral, etc.
//
// Example usage:
//
//	var intValue int
//	intValue, err := ParseValue[int]("123")
//	if err != nil {
//		// Handle error
//	}
func ParseValue[T ParsableType](value string) (T, yaerrors.Error) {
	return ParseValueWithCustomType[T](value, reflect.TypeOf((*T)(nil)).Elem())
}

// ParseValueWithCustomType is ParseValue with the unmarshal step performed on valueType
// instead of T. Use it when a custom type knows how to parse the text but the caller
// wants the underlying type back.
//
// Example usage:
//
//	type YourCustomType uint64
//
//	func (s *YourCustomType) Unmarshal(data string) error {
//		switch data {
//		case "FIRST":
//			*s = 1
//		case "SECOND":
//			*s = 2
//		default:
//			return fmt.Errorf("unknown value: %s", data)
//		}
//
//		return nil
//	}
//
//	customValue, err := ParseValueWithCustomType[uint64]("FIRST", reflect.TypeOf(YourCustomType(0)))
//	if err != nil {
//		// Handle error
//	}
func ParseValueWithCustomType[T ParsableType](
	value string,
	valueType reflect.Type,
) (T, yaerrors.Error) {
	var zero T

	zeroType := reflect.TypeOf(zero)

	switch valueType.Kind() {
	case reflect.String:
		if unmarshaled, err := TryUnmarshal[T](value, valueType); err == nil {
			return unmarshaled, nil
		}

		if val, ok := convertTo[T](value, zeroType); ok {
			return val, nil
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if intValue, err := parseIntBits(value, valueType.Bits()); err == nil {
			if val, ok := convertTo[T](intValue, zeroType); ok {
				return val, nil
			}
		}

	case reflect.Uint,
		reflect.Uint8,
		reflect.Uint16,
		reflect.Uint32,
		reflect.Uint64,
		reflect.Uintptr:
		if uintValue, err := parseUintBits(value, valueType.Bits()); err == nil {
			if val, ok := convertTo[T](uintValue, zeroType); ok {
				return val, nil
			}
		}

	case reflect.Float32, reflect.Float64:
		if floatValue, err := parseFloatBits(value, valueType.Bits()); err == nil {
			if val, ok := convertTo[T](floatValue, zeroType); ok {
				return val, nil
			}
		}

	case reflect.Bool:
		if boolValue, err := strconv.ParseBool(value); err == nil {
			if val, ok := convertTo[T](boolValue, zeroType); ok {
				return val, nil
			}
		}

	case reflect.Slice:
		if valueType.Elem().Kind() == reflect.Uint8 {
			if val, ok := convertTo[T]([]byte(value), zeroType); ok {
				return val, nil
			}
		}

	case reflect.Invalid,
		reflect.Chan,
		reflect.Func,
		reflect.Interface,
		reflect.Map,
		reflect.Ptr,
		reflect.Struct,
		reflect.Complex64,
		reflect.Complex128,
		reflect.Array,
		reflect.UnsafePointer:
		return zero, yaerrors.FromError(
			http.StatusInternalServerError,
			ErrUnparsableValue,
			"parse value: unsupported type "+valueType.String(),
		)
	}

	val, err := TryUnmarshal[T](value, valueType)
	if err != nil {
		return zero, err.Wrap("parse value: failed to parse " + strconv.Quote(value))
	}

	return val, nil
}

// convertTo converts v to targetType and asserts the result as T.
func convertTo[T any](v any, targetType reflect.Type) (T, bool) {
	var zero T

	val := reflect.ValueOf(v)
	if !val.Type().ConvertibleTo(targetType) {
		return zero, false
	}

	converted, ok := val.Convert(targetType).Interface().(T)

	return converted, ok
}

// ParseReflect is ParseValue for callers that only know the target type at runtime,
// such as a struct loader walking fields. Text unmarshalers take precedence over the
// plain kind conversion, so yalogger.Level accepts "debug" as well as "5".
//
// Example usage:
//
//	field := reflect.ValueOf(&cfg).Elem().FieldByName("Retries")
//	value, err := ParseReflect("3", field.Type())
//	if err == nil {
//		field.Set(value)
//	}
func ParseReflect(value string, valueType reflect.Type) (reflect.Value, yaerrors.Error) {
	ptr := reflect.New(valueType)

	switch unmarshaler := ptr.Interface().(type) {
	case encoding.TextUnmarshaler:
		if err := unmarshaler.UnmarshalText([]byte(value)); err == nil {
			return ptr.Elem(), nil
		}
	case Unmarshalable:
		if err := unmarshaler.Unmarshal(value); err == nil {
			return ptr.Elem(), nil
		}
	}

	var (
		parsed any
		err    yaerrors.Error
	)

	//nolint:exhaustive // Composite kinds are rejected by the default branch.
	switch valueType.Kind() {
	case reflect.String:
		parsed = value
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		parsed, err = parseIntBits(value, valueType.Bits())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		parsed, err = parseUintBits(value, valueType.Bits())
	case reflect.Float32, reflect.Float64:
		parsed, err = parseFloatBits(value, valueType.Bits())
	case reflect.Bool:
		boolValue, boolErr := strconv.ParseBool(value)
		if boolErr != nil {
			err = yaerrors.FromError(
				http.StatusBadRequest,
				ErrInvalidValue,
				"parse bool "+strconv.Quote(value),
			)
		}

		parsed = boolValue
	default:
		return reflect.Value{}, yaerrors.FromError(
			http.StatusInternalServerError,
			ErrUnparsableValue,
			"parse reflect: unsupported type "+valueType.String(),
		)
	}

	if err != nil {
		return reflect.Value{}, err.Wrap("parse reflect: " + valueType.String())
	}

	return reflect.ValueOf(parsed).Convert(valueType), nil
}
