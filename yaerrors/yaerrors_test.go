package yaerrors_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YaCodeDev/GoYaQuickInput/yaerrors"
)

var errStream = errors.New("stream closed")

func TestFromString_CodeAndMessage(t *testing.T) {
	t.Parallel()

	err := yaerrors.FromString(http.StatusBadRequest, "bad input")

	assert.Equal(t, http.StatusBadRequest, err.Code())
	assert.Equal(t, "400 | bad input", err.Error())
}

func TestFromError_Traceback(t *testing.T) {
	t.Parallel()

	err := yaerrors.FromError(http.StatusInternalServerError, errStream, "read line")

	assert.Equal(t, "500 | read line: stream closed", err.Error())
	assert.ErrorIs(t, err, errStream)
}

func TestWrap_PrependsMessage(t *testing.T) {
	t.Parallel()

	err := yaerrors.FromError(http.StatusInternalServerError, errStream, "read line").
		Wrap("read int32")

	assert.Equal(t, "500 | read int32 -> read line: stream closed", err.Error())
	assert.Equal(t, "read int32", err.UnwrapLastError())
}

func TestUnwrapLastError_NoWrap(t *testing.T) {
	t.Parallel()

	err := yaerrors.FromString(http.StatusBadRequest, "bad input")

	assert.Equal(t, "bad input", err.UnwrapLastError())
}

func TestIs_Works(t *testing.T) {
	t.Parallel()

	err := yaerrors.FromError(http.StatusInternalServerError, errStream, "read line")

	assert.True(t, yaerrors.Is(err, errStream))
	assert.False(t, yaerrors.Is(err, yaerrors.ErrTeapot))
	assert.False(t, yaerrors.Is(nil, errStream))
}

func TestIsServerError(t *testing.T) {
	t.Parallel()

	assert.True(t, yaerrors.IsServerError(
		yaerrors.FromError(http.StatusInternalServerError, errStream, "read line"),
	))
	assert.False(t, yaerrors.IsServerError(yaerrors.FromString(http.StatusBadRequest, "bad input")))
	assert.False(t, yaerrors.IsServerError(nil))
}
