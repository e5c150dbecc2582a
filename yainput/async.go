package yainput

import "github.com/YaCodeDev/GoYaQuickInput/yaerrors"

// Result is the outcome of a read started with Async.
type Result[T any] struct {
	Value T
	Err   yaerrors.Error
}

// Async runs read on its own goroutine and delivers the result on the returned
// channel, which is closed after the single send. The read itself cannot be
// cancelled: abandoning the channel leaves the goroutine blocked on the input.
//
// Example usage:
//
//	pending := yainput.Async(func() (int32, yaerrors.Error) {
//		return reader.ReadInt32(yainput.Message("Port: "), nil)
//	})
//
//	select {
//	case res := <-pending:
//		// use res.Value / res.Err
//	case <-ctx.Done():
//		// stop waiting
//	}
func Async[T any](read func() (T, yaerrors.Error)) <-chan Result[T] {
	results := make(chan Result[T], 1)

	go func() {
		defer close(results)

		value, err := read()
		results <- Result[T]{Value: value, Err: err}
	}()

	return results
}
