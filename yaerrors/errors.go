package yaerrors

import "errors"

// ErrTeapot is reported when a method is called on a nil Error.
// It keeps a nil receiver from turning into a nil pointer dereference.
var ErrTeapot = errors.New("backend developer is a teapot")
