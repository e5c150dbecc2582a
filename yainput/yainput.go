// Package yainput reads typed values from an interactive console.
//
// Every read prompts, reads one line, validates it and starts over on invalid
// input until the line parses, so callers only ever see a valid value:
//
//	reader := yainput.NewReader(os.Stdin, os.Stdout, yainput.ReaderOptions{}, log)
//
//	age, err := reader.ReadUint8(yainput.Message("Age: "), nil)
//	if err != nil {
//		// stdin is gone, nothing left to prompt for
//	}
//
// The only error a read returns is a fatal I/O failure (closed input, broken
// output). The package level functions (ReadUint8, ReadBool, ...) work on
// stdin/stdout and terminate the process on such a failure.
//
// A Reader is not safe for concurrent use: interleaved prompts and reads on the
// same streams would mix up which answer belongs to which question.
package yainput

import (
	"bufio"
	"io"

	"github.com/YaCodeDev/GoYaQuickInput/yalogger"
)

// Reader prompts on out and reads answers from in, one line per attempt.
type Reader struct {
	in        *bufio.Reader
	out       io.Writer
	theme     *Theme
	separator string
	log       yalogger.Logger
}

// ReaderOptions tunes how a Reader renders its output.
//
// Theme: lipgloss styles for prompt, error and separator. Nil writes text verbatim.
// Separator: line written after every error message. Empty means DefaultSeparator.
type ReaderOptions struct {
	Theme     *Theme
	Separator string
}

// NewReader builds a Reader over in and out. If out implements Flush() error
// (a *bufio.Writer for instance) it is flushed before every blocking read.
// A nil log is replaced by the default stderr logger.
//
// Example usage:
//
//	reader := yainput.NewReader(os.Stdin, os.Stdout, yainput.ReaderOptions{
//		Theme: yainput.ThemeFor(os.Stdout, true),
//	}, log)
func NewReader(in io.Reader, out io.Writer, options ReaderOptions, log yalogger.Logger) *Reader {
	safetyCheck(&log)

	separator := options.Separator
	if separator == "" {
		separator = DefaultSeparator
	}

	buffered, ok := in.(*bufio.Reader)
	if !ok {
		buffered = bufio.NewReader(in)
	}

	return &Reader{
		in:        buffered,
		out:       out,
		theme:     options.Theme,
		separator: separator,
		log:       log,
	}
}

// Message returns a pointer to text, for the optional prompt and error arguments.
//
// Example usage:
//
//	reader.ReadBool(yainput.Message("Continue? "), yainput.Message("true or false, please"))
func Message(text string) *string {
	return &text
}

func safetyCheck(log *yalogger.Logger) {
	if *log == nil {
		*log = yalogger.NewDefaultLogger()
	}
}
