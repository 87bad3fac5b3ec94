package logq

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
)

// LogError describes a failure inside the logging facility itself:
// setup, write, flush or close problems. These are delivered to the
// configured ErrorHandler and never propagated to logging callers.
type LogError struct {
	Time   time.Time
	Source string // "setup", "write", "flush", "close"
	Path   string
	Err    error
}

// Error returns the string representation of the LogError.
func (le LogError) Error() string {
	if le.Path != "" {
		return fmt.Sprintf("[%s] %s error on %s: %v",
			le.Time.Format(timestampLayout), le.Source, le.Path, le.Err)
	}
	return fmt.Sprintf("[%s] %s error: %v",
		le.Time.Format(timestampLayout), le.Source, le.Err)
}

// ErrorHandler receives internal logging failures.
type ErrorHandler func(LogError)

// fallbackHandler returns the default handler, which prints each
// failure to the fallback diagnostic stream.
func fallbackHandler(w io.Writer) ErrorHandler {
	return func(le LogError) {
		fmt.Fprintf(w, "logq: %s\n", le.Error())
	}
}

// WrapError attaches context and a stack trace to err. Errors handed
// to Logger.Exception render a stack in their diagnostic when created
// or wrapped this way.
func WrapError(err error, message string) error {
	return errors.Wrap(err, message)
}

// Errorf creates a new error carrying a stack trace.
func Errorf(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}

// describeError converts a caller-supplied error into the two fields
// an exception entry carries. A nil error produces empty fields; an
// error without a recorded stack gets one captured here so the
// diagnostic is never bare.
func describeError(err error) ErrorInfo {
	if err == nil {
		return ErrorInfo{}
	}
	withStack := err
	if _, ok := err.(interface{ StackTrace() errors.StackTrace }); !ok {
		withStack = errors.WithStack(err)
	}
	return ErrorInfo{
		Message:    err.Error(),
		Diagnostic: fmt.Sprintf("%+v", withStack),
	}
}
