package config

import (
	"strings"

	"github.com/YaCodeDev/GoYaQuickInput/yalogger"
)

// safetyCheck replaces a nil logger with the default one and says so.
func safetyCheck(log *yalogger.Logger) {
	if *log == nil {
		*log = yalogger.NewDefaultLogger()

		(*log).Warn("Logger is nil, using default logger")
	}
}

// toScreamingSnakeCase converts a string to SCREAMING_SNAKE_CASE.
// For example, "LogLevel" becomes "LOG_LEVEL" and "HTTPResponse" becomes "HTTP_RESPONSE".
func toScreamingSnakeCase(s string) string {
	s = matchFirstCap.ReplaceAllString(s, "${1}_${2}")
	s = matchAllCap.ReplaceAllString(s, "${1}_${2}")

	return strings.ToUpper(s)
}
