package yainput

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/YaCodeDev/GoYaQuickInput/valueparser"
	"github.com/YaCodeDev/GoYaQuickInput/yaerrors"
	"github.com/YaCodeDev/GoYaQuickInput/yalogger"
)

type flusher interface {
	Flush() error
}

// Read is the retry loop behind every typed read.
//
// Each attempt writes prompt (when non-nil) without a trailing newline, reads one
// line and hands it to parse. A parse failure writes errMsg, or defaultErr when
// errMsg is nil, followed by the separator line, and the loop starts over. There
// is no attempt limit.
//
// The returned error is always fatal I/O and wraps one of ErrInputClosed,
// ErrReadFailed, ErrWriteFailed or ErrFlushFailed.
//
// Example usage:
//
//	even, err := yainput.Read(reader, yainput.Message("Even number: "), nil,
//		func(line string) (int, yaerrors.Error) {
//			n, err := valueparser.ParseSigned[int](line)
//			if err == nil && n%2 != 0 {
//				return 0, yaerrors.FromString(http.StatusBadRequest, "odd number")
//			}
//
//			return n, err
//		},
//		"Please enter an even number.",
//	)
func Read[T any](
	r *Reader,
	prompt *string,
	errMsg *string,
	parse valueparser.Parser[T],
	defaultErr string,
) (T, yaerrors.Error) {
	var (
		zero T
		line strings.Builder
	)

	log := r.log.WithRandomReadID().WithField(yalogger.KeyReadType, reflect.TypeOf((*T)(nil)).Elem().String())

	for attempt := 1; ; attempt++ {
		line.Reset()

		if prompt != nil {
			if err := r.write(r.theme.renderPrompt(*prompt)); err != nil {
				return zero, abort(log, err, "write prompt")
			}
		}

		if err := r.readLine(&line); err != nil {
			return zero, abort(log, err, "read line")
		}

		value, parseErr := parse(line.String())
		if parseErr == nil {
			log.Tracef("Accepted on attempt %d", attempt)

			return value, nil
		}

		log.WithField(yalogger.KeyAttempt, attempt).Debugf("Input rejected: %v", parseErr)

		if err := r.showError(errMsg, defaultErr); err != nil {
			return zero, abort(log, err, "show error")
		}
	}
}

func abort(log yalogger.Logger, err yaerrors.Error, msg string) yaerrors.Error {
	err = err.Wrap(msg)
	log.Errorf("Read aborted: %v", err)

	return err
}

// readLine flushes pending output and appends one line, terminator included, to buf.
// A last line cut short by EOF is still returned, EOF with nothing read is fatal.
func (r *Reader) readLine(buf *strings.Builder) yaerrors.Error {
	if f, ok := r.out.(flusher); ok {
		if err := f.Flush(); err != nil {
			return yaerrors.FromError(
				http.StatusInternalServerError,
				ErrFlushFailed,
				fmt.Sprintf("flush output: %v", err),
			)
		}
	}

	line, err := r.in.ReadString('\n')
	buf.WriteString(line)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF) && line != "":
		return nil
	case errors.Is(err, io.EOF):
		return yaerrors.FromError(http.StatusInternalServerError, ErrInputClosed, "read input")
	default:
		return yaerrors.FromError(
			http.StatusInternalServerError,
			ErrReadFailed,
			fmt.Sprintf("read input: %v", err),
		)
	}
}

// showError writes exactly one of errMsg and defaultErr, then the separator line.
func (r *Reader) showError(errMsg *string, defaultErr string) yaerrors.Error {
	msg := defaultErr
	if errMsg != nil {
		msg = *errMsg
	}

	return r.write(r.theme.renderError(msg) + "\n" + r.theme.renderSeparator(r.separator) + "\n")
}

func (r *Reader) write(text string) yaerrors.Error {
	if _, err := io.WriteString(r.out, text); err != nil {
		return yaerrors.FromError(
			http.StatusInternalServerError,
			ErrWriteFailed,
			fmt.Sprintf("write output: %v", err),
		)
	}

	return nil
}
