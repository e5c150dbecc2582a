package config

import (
	"bufio"
	"errors"
	"fmt"
	"net/http"
	"os"
	"reflect"
	"strings"

	"github.com/YaCodeDev/GoYaQuickInput/valueparser"
	"github.com/YaCodeDev/GoYaQuickInput/yaerrors"
	"github.com/YaCodeDev/GoYaQuickInput/yalogger"
)

// LoadConfigStructFromEnv loads environment variables into a struct.
// Keys are the field names in SCREAMING_SNAKE_CASE, joined to prefix (and to the
// parent field for nested structs) with '_'. A `default` tag supplies the value
// when the variable is missing. A zero field without a default tag is required.
//
// This is a wrapper around LoadConfigStructFromEnvHandlingError that exits on error.
//
// Example usage:
//
//	type Config struct {
//		LogLevel  yalogger.Level `default:"warn"`
//		Color     bool           `default:"false"`
//	}
//
//	var cfg Config
//
//	config.LoadConfigStructFromEnv(&cfg, "QUICK_INPUT", log)
func LoadConfigStructFromEnv[T any](instance *T, prefix string, log yalogger.Logger) {
	safetyCheck(&log)

	if err := LoadConfigStructFromEnvHandlingError(instance, prefix, log); err != nil {
		log.Fatalf("Failed to load config struct from env: %v", err)
	}
}

// LoadConfigStructFromEnvHandlingError is LoadConfigStructFromEnv returning the error
// instead of exiting. A .env file in the working directory is read first, it never
// overrides variables already present in the environment.
//
// Example usage:
//
//	var cfg Config
//
//	if err := config.LoadConfigStructFromEnvHandlingError(&cfg, "QUICK_INPUT", log); err != nil {
//		// handle error
//	}
func LoadConfigStructFromEnvHandlingError[T any](
	instance *T,
	prefix string,
	log yalogger.Logger,
) yaerrors.Error {
	safetyCheck(&log)

	if err := loadDotEnv(DotEnvFile); err != nil {
		log.Debugf("Skipping .env file: %v", err)
	}

	if instance == nil {
		return yaerrors.FromErrorWithLog(
			http.StatusInternalServerError,
			ErrConfigStructMustBeStruct,
			"config loader, got nil",
			log,
		)
	}

	value := reflect.ValueOf(instance).Elem()
	if value.Kind() != reflect.Struct {
		return yaerrors.FromErrorWithLog(
			http.StatusInternalServerError,
			ErrConfigStructMustBeStruct,
			fmt.Sprintf("config loader, got %T", instance),
			log,
		)
	}

	return loadConfigStructFromEnv(value, prefix, log)
}

func loadConfigStructFromEnv(
	structValue reflect.Value,
	keyPath string,
	log yalogger.Logger,
) yaerrors.Error {
	structType := structValue.Type()

	for i := 0; i < structValue.NumField(); i++ {
		field := structType.Field(i)
		fieldVal := structValue.Field(i)
		defaultValStr, hasDefault := field.Tag.Lookup(DefaultTagName)

		if !fieldVal.CanSet() {
			log.Warnf("Field %s cannot be set", field.Name)

			continue
		}

		envKey := toScreamingSnakeCase(field.Name)
		if keyPath != "" {
			envKey = keyPath + "_" + envKey
		}

		if field.Type.Kind() == reflect.Struct {
			if err := loadConfigStructFromEnv(fieldVal, envKey, log); err != nil {
				return err.Wrap("failed to load struct field " + field.Name)
			}

			continue
		}

		raw, exists := os.LookupEnv(envKey)

		switch {
		case exists:
		case hasDefault && fieldVal.IsZero():
			raw = defaultValStr
		case fieldVal.IsZero():
			return yaerrors.FromErrorWithLog(
				http.StatusInternalServerError,
				ErrValueIsRequired,
				"config loader: "+envKey,
				log,
			)
		default:
			continue
		}

		parsed, err := valueparser.ParseReflect(raw, field.Type)
		if err != nil {
			return err.WrapWithLog(
				fmt.Sprintf("config loader: field %s from %s", field.Name, envKey),
				log,
			)
		}

		fieldVal.Set(parsed)
	}

	return nil
}

// loadDotEnv exports KEY=VALUE lines of path that are not set yet.
// Blank lines and lines starting with '#' are skipped.
func loadDotEnv(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}

	defer func() {
		_ = file.Close()
	}()

	scanner := bufio.NewScanner(file)
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", DotEnvKVParts)
		if len(parts) != DotEnvKVParts {
			return fmt.Errorf("%w: line %d", ErrInvalidDotEnvFileFormat, lineNumber)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)

		if _, exists := os.LookupEnv(key); exists {
			continue
		}

		if err := os.Setenv(key, value); err != nil {
			return errors.Join(ErrInvalidDotEnvFileFormat, err)
		}
	}

	return scanner.Err()
}
