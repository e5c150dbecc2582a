package config

import (
	"os"

	"github.com/YaCodeDev/GoYaQuickInput/valueparser"
	"github.com/YaCodeDev/GoYaQuickInput/yalogger"
)

// GetEnv retrieves the value of an environment variable, parses it to the specified type T,
// and returns it. If the variable is not set or does not parse, it returns fallback.
// If the variable is required and not set, it logs a fatal error and exits the program.
//
// Example usage:
//
//	color := GetEnv("QUICK_INPUT_COLOR", false, false, log)
//
// EXITS if the environment variable is required and not set.
func GetEnv[T valueparser.ParsableType](
	key string,
	fallback T,
	required bool,
	log yalogger.Logger,
) T {
	safetyCheck(&log)

	if value, exists := os.LookupEnv(key); exists {
		parsed, err := valueparser.ParseValue[T](value)
		if err == nil {
			return parsed
		}

		log.Errorf("Failed to parse environment variable %s: %v", key, err)
	}

	if required {
		log.Fatalf("Environment variable %s is required", key)
	}

	log.Debugf(
		"Environment variable %s is not set or failed to parse, using default value %v",
		key,
		fallback,
	)

	return fallback
}
