package logq

import "time"

// Kind identifies the category of a log entry.
type Kind int

const (
	// KindDebug marks verbose diagnostic entries.
	KindDebug Kind = iota
	// KindWarning marks recoverable anomalies.
	KindWarning
	// KindException marks failures that carry error details.
	KindException
)

// String returns the upper-case name used in formatted output.
func (k Kind) String() string {
	switch k {
	case KindDebug:
		return "DEBUG"
	case KindWarning:
		return "WARNING"
	case KindException:
		return "EXCEPTION"
	default:
		return "UNKNOWN"
	}
}

// Verbosity thresholds. Exception entries are always written; warnings
// require VerbosityWarnings or higher and debug entries require
// VerbosityDebug.
const (
	VerbosityExceptions = 1
	VerbosityWarnings   = 2
	VerbosityDebug      = 3
)

// ErrorInfo carries the two renderings of a logged error: the short
// message and the full diagnostic, which includes a stack trace when
// the error was created or wrapped with WrapError or Errorf.
type ErrorInfo struct {
	Message    string
	Diagnostic string
}

// Entry is one log event. The Logger populates every field before the
// entry reaches the queue and nothing mutates it afterwards.
type Entry struct {
	Sequence    uint64
	Kind        Kind
	Message     string
	Timestamp   time.Time
	GoroutineID uint64     // set only for exception entries
	Err         *ErrorInfo // non-nil exactly when Kind == KindException
}

// writerState tracks the Writer lifecycle.
type writerState int32

const (
	stateCreated writerState = iota
	stateRunning
	stateDraining
	stateClosed
)
