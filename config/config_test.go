package config_test

import (
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YaCodeDev/GoYaQuickInput/config"
	"github.com/YaCodeDev/GoYaQuickInput/valueparser"
	"github.com/YaCodeDev/GoYaQuickInput/yalogger"
)

func quietLogger() yalogger.Logger {
	return yalogger.NewBaseLogger(&yalogger.Config{
		BaseLoggerType: yalogger.Logrus,
		Level:          yalogger.PanicLevel,
		Output:         io.Discard,
	}).NewLogger()
}

type nestedConfig struct {
	Retries uint8 `default:"3"`
}

type testConfig struct {
	Name     string         `default:"Ya_Code"`
	Ratio    float32        `default:"1.5"`
	Enabled  bool           `default:"true"`
	Level    yalogger.Level `default:"info"`
	Kind     valueparser.Kind
	Nested   nestedConfig
	Existing string
}

func TestLoadConfigStructFromEnv_DefaultsAndEnv(t *testing.T) {
	t.Setenv("TEST_KIND", "uint16")
	t.Setenv("TEST_RATIO", "2.25")
	t.Setenv("TEST_NESTED_RETRIES", "7")

	cfg := testConfig{Existing: "kept"}

	err := config.LoadConfigStructFromEnvHandlingError(&cfg, "TEST", quietLogger())
	require.Nil(t, err)

	want := testConfig{
		Name:     "Ya_Code",
		Ratio:    2.25,
		Enabled:  true,
		Level:    yalogger.InfoLevel,
		Kind:     valueparser.KindUint16,
		Nested:   nestedConfig{Retries: 7},
		Existing: "kept",
	}

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigStructFromEnv_Required(t *testing.T) {
	type requiredConfig struct {
		Token string
	}

	var cfg requiredConfig

	err := config.LoadConfigStructFromEnvHandlingError(&cfg, "TEST_REQUIRED", quietLogger())
	require.NotNil(t, err)
	assert.ErrorIs(t, err, config.ErrValueIsRequired)
}

func TestLoadConfigStructFromEnv_InvalidValue(t *testing.T) {
	t.Setenv("TEST_BAD_RETRIES", "300")

	var cfg nestedConfig

	err := config.LoadConfigStructFromEnvHandlingError(&cfg, "TEST_BAD", quietLogger())
	require.NotNil(t, err)
	assert.ErrorIs(t, err, valueparser.ErrOutOfRange)
}

func TestLoadConfigStructFromEnv_NotStruct(t *testing.T) {
	t.Parallel()

	value := 42

	err := config.LoadConfigStructFromEnvHandlingError(&value, "TEST", quietLogger())
	assert.ErrorIs(t, err, config.ErrConfigStructMustBeStruct)
}

func TestLoadInputConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadInputConfig(quietLogger())
	require.Nil(t, err)

	assert.Equal(t, config.InputConfig{
		LogLevel:  yalogger.WarnLevel,
		Color:     false,
		Separator: "---",
	}, cfg)
}

func TestLoadInputConfig_FromEnv(t *testing.T) {
	t.Setenv("QUICK_INPUT_LOG_LEVEL", "debug")
	t.Setenv("QUICK_INPUT_COLOR", "true")
	t.Setenv("QUICK_INPUT_SEPARATOR", "===")

	cfg, err := config.LoadInputConfig(quietLogger())
	require.Nil(t, err)

	assert.Equal(t, yalogger.DebugLevel, cfg.LogLevel)
	assert.True(t, cfg.Color)
	assert.Equal(t, "===", cfg.Separator)
	assert.NotNil(t, cfg.NewLogger())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_GETENV_INT", "42")
	t.Setenv("TEST_GETENV_BAD", "abc")

	assert.Equal(t, 42, config.GetEnv("TEST_GETENV_INT", 0, false, quietLogger()))
	assert.Equal(t, 7, config.GetEnv("TEST_GETENV_BAD", 7, false, quietLogger()))
	assert.Equal(t, "fallback", config.GetEnv("TEST_GETENV_MISSING", "fallback", false, quietLogger()))
}
