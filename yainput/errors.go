package yainput

import "errors"

// Every error below is fatal: the console stream is unusable and the read is abandoned.
// Invalid user input is never reported as an error, it is answered with a new prompt.
var (
	ErrInputClosed = errors.New("input stream closed")
	ErrReadFailed  = errors.New("unable to read from input")
	ErrWriteFailed = errors.New("unable to write to output")
	ErrFlushFailed = errors.New("unable to flush output")
)
