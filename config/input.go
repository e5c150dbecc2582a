package config

import (
	"github.com/YaCodeDev/GoYaQuickInput/yaerrors"
	"github.com/YaCodeDev/GoYaQuickInput/yalogger"
)

// InputConfig holds the environment driven settings of the console reader.
//
//	QUICK_INPUT_LOG_LEVEL  diagnostics level on stderr (default warn)
//	QUICK_INPUT_COLOR      style prompts and errors when stdout is a terminal (default false)
//	QUICK_INPUT_SEPARATOR  line written after every error message (default ---)
type InputConfig struct {
	LogLevel  yalogger.Level `default:"warn"`
	Color     bool           `default:"false"`
	Separator string         `default:"---"`
}

// LoadInputConfig reads InputConfig from the environment.
func LoadInputConfig(log yalogger.Logger) (InputConfig, yaerrors.Error) {
	var cfg InputConfig

	if err := LoadConfigStructFromEnvHandlingError(&cfg, EnvPrefix, log); err != nil {
		return InputConfig{}, err.Wrap("load input config")
	}

	return cfg, nil
}

// NewLogger builds a stderr logger at the configured level.
func (c InputConfig) NewLogger() yalogger.Logger {
	return yalogger.NewBaseLogger(&yalogger.Config{
		BaseLoggerType:   yalogger.Logrus,
		Level:            c.LogLevel,
		DisableTimestamp: true,
		TimestampFormat:  yalogger.DefaultTimestampFormat,
	}).NewLogger()
}
