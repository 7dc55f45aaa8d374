package nderr

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	CodeFileNotFound        = "FILE_NOT_FOUND"
	CodeMalformedRow        = "MALFORMED_ROW"
	CodeInvalidArgument     = "INVALID_ARGUMENT"
	CodeRendererUnavailable = "RENDERER_UNAVAILABLE"
	CodeNothingToRender     = "NOTHING_TO_RENDER"
)

var (
	// ErrFileNotFound is returned when the input log does not exist.
	ErrFileNotFound = New(1, CodeFileNotFound, "file not found")

	// ErrMalformedRow is returned when a row of the input log cannot be typed.
	ErrMalformedRow = New(1, CodeMalformedRow, "malformed row")

	// ErrInvalidArgument is returned when the command line is unusable.
	ErrInvalidArgument = New(2, CodeInvalidArgument, "invalid argument")

	// ErrRendererUnavailable is returned when the timeline backend is not compiled in.
	// It is recovered locally and never fails a run.
	ErrRendererUnavailable = New(0, CodeRendererUnavailable, "timeline rendering is not available in this build (rebuild without the notimeline tag)")

	// ErrNothingToRender is returned when the timeline has no events to draw.
	ErrNothingToRender = New(0, CodeNothingToRender, "No events to visualize")
)

type NotedError struct {
	ExitCode  int
	ErrorCode string
	Message   string
}

func New(exitCode int, errorCode string, message string) *NotedError {
	return &NotedError{
		ExitCode:  exitCode,
		ErrorCode: errorCode,
		Message:   message,
	}
}

// Msg returns a copy of e carrying a formatted message. e itself is left untouched.
func (e NotedError) Msg(format string, parts ...interface{}) *NotedError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e *NotedError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}

// Is reports whether target carries the same error code, so copies made by Msg
// still match their sentinel under errors.Is.
func (e *NotedError) Is(target error) bool {
	t, ok := target.(*NotedError)
	if !ok {
		return false
	}
	return t.ErrorCode == e.ErrorCode
}

// Recoverable errors are reported to the user but leave the exit status at zero.
func (e *NotedError) Recoverable() bool {
	return e.ExitCode == 0
}

// As extracts the *NotedError in err's chain, if any.
func As(err error) (*NotedError, bool) {
	var ne *NotedError
	if errors.As(err, &ne) {
		return ne, true
	}
	return nil, false
}

// ExitCode maps err to a process exit status. Errors outside the taxonomy exit with 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if ne, ok := As(err); ok {
		return ne.ExitCode
	}
	return 1
}
