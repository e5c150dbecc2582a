package yainput

import (
	"math/big"
	"os"
	"sync"

	"github.com/YaCodeDev/GoYaQuickInput/config"
	"github.com/YaCodeDev/GoYaQuickInput/yaerrors"
	"github.com/YaCodeDev/GoYaQuickInput/yalogger"
)

var (
	stdOnce   sync.Once
	stdReader *Reader
)

// Std returns the Reader over os.Stdin and os.Stdout used by the package level
// functions. It is configured once from the QUICK_INPUT_* environment variables.
func Std() *Reader {
	stdOnce.Do(func() {
		bootstrap := yalogger.NewDefaultLogger()

		cfg, err := config.LoadInputConfig(bootstrap)
		if err != nil {
			bootstrap.Warnf("Falling back to default input config: %v", err)

			cfg = config.InputConfig{LogLevel: yalogger.WarnLevel, Separator: DefaultSeparator}
		}

		stdReader = NewReader(os.Stdin, os.Stdout, ReaderOptions{
			Theme:     ThemeFor(os.Stdout, cfg.Color),
			Separator: cfg.Separator,
		}, cfg.NewLogger())
	})

	return stdReader
}

func must[T any](value T, err yaerrors.Error) T {
	if err != nil {
		Std().log.Fatalf("Console input failed: %v", err)
	}

	return value
}

// ReadString prompts on stdout and returns the trimmed line from stdin.
//
// Example usage:
//
//	name := yainput.ReadString(yainput.Message("Name: "))
func ReadString(prompt *string) string {
	return must(Std().ReadString(prompt))
}

// ReadStringUntrimmed returns the stdin line as typed, terminator included.
func ReadStringUntrimmed(prompt *string) string {
	return must(Std().ReadStringUntrimmed(prompt))
}

func ReadChar(prompt *string) rune {
	return must(Std().ReadChar(prompt))
}

// ReadBool keeps asking until the answer is "true" or "false".
//
// Example usage:
//
//	if yainput.ReadBool(yainput.Message("Overwrite? "), nil) {
//		// ...
//	}
func ReadBool(prompt, errMsg *string) bool {
	return must(Std().ReadBool(prompt, errMsg))
}

func ReadInt8(prompt, errMsg *string) int8 {
	return must(Std().ReadInt8(prompt, errMsg))
}

func ReadInt16(prompt, errMsg *string) int16 {
	return must(Std().ReadInt16(prompt, errMsg))
}

// ReadInt32 keeps asking until the answer fits an int32.
//
// Example usage:
//
//	count := yainput.ReadInt32(yainput.Message("How many? "), yainput.Message("Whole numbers only"))
func ReadInt32(prompt, errMsg *string) int32 {
	return must(Std().ReadInt32(prompt, errMsg))
}

func ReadInt64(prompt, errMsg *string) int64 {
	return must(Std().ReadInt64(prompt, errMsg))
}

func ReadInt128(prompt, errMsg *string) *big.Int {
	return must(Std().ReadInt128(prompt, errMsg))
}

func ReadInt(prompt, errMsg *string) int {
	return must(Std().ReadInt(prompt, errMsg))
}

func ReadUint8(prompt, errMsg *string) uint8 {
	return must(Std().ReadUint8(prompt, errMsg))
}

func ReadUint16(prompt, errMsg *string) uint16 {
	return must(Std().ReadUint16(prompt, errMsg))
}

func ReadUint32(prompt, errMsg *string) uint32 {
	return must(Std().ReadUint32(prompt, errMsg))
}

func ReadUint64(prompt, errMsg *string) uint64 {
	return must(Std().ReadUint64(prompt, errMsg))
}

func ReadUint128(prompt, errMsg *string) *big.Int {
	return must(Std().ReadUint128(prompt, errMsg))
}

func ReadUint(prompt, errMsg *string) uint {
	return must(Std().ReadUint(prompt, errMsg))
}

func ReadFloat32(prompt, errMsg *string) float32 {
	return must(Std().ReadFloat32(prompt, errMsg))
}

func ReadFloat64(prompt, errMsg *string) float64 {
	return must(Std().ReadFloat64(prompt, errMsg))
}
