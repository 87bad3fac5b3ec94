package logq

import (
	"context"
	"os"
	"sync"
	"time"
)

// Logger is the facility's public face. Construct one per application
// (or per test) and share it freely; Debug, Warning and Exception are
// safe from any goroutine and return without waiting on file I/O.
type Logger struct {
	verbosity int
	writer    *Writer // nil when setup failed; all calls discard

	// mu serializes sequence assignment with the enqueue so that
	// sequence order and queue order agree, which is what makes
	// sequence numbers strictly increasing in file order.
	mu  sync.Mutex
	seq uint64
}

// New builds a Logger from the supplied options and starts its
// background writer. New never fails: when the log directory or file
// cannot be prepared, the failure is reported on the fallback
// diagnostic stream and the returned Logger silently discards every
// entry. The logging facility must never take down its host.
func New(opts ...Option) *Logger {
	cfg := &Config{Verbosity: VerbosityWarnings}
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.Verbosity = clampVerbosity(cfg.Verbosity)
	if cfg.Fallback == nil {
		cfg.Fallback = os.Stderr
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = fallbackHandler(cfg.Fallback)
	}
	if cfg.Path == "" {
		path, err := DefaultPath()
		if err != nil {
			cfg.ErrorHandler(LogError{Time: time.Now(), Source: "setup", Err: err})
			return &Logger{verbosity: cfg.Verbosity}
		}
		cfg.Path = path
	}

	w, err := newWriter(cfg)
	if err != nil {
		cfg.ErrorHandler(LogError{Time: time.Now(), Source: "setup", Path: cfg.Path, Err: err})
		return &Logger{verbosity: cfg.Verbosity}
	}
	return &Logger{verbosity: cfg.Verbosity, writer: w}
}

// Verbosity returns the threshold fixed at construction.
func (l *Logger) Verbosity() int {
	return l.verbosity
}

// Debug records a diagnostic message. Below VerbosityDebug the call is
// a no-op and assigns no sequence number.
func (l *Logger) Debug(message string) {
	if l.verbosity < VerbosityDebug {
		return
	}
	l.emit(KindDebug, message, nil, 0)
}

// Warning records a recoverable anomaly. Below VerbosityWarnings the
// call is a no-op and assigns no sequence number.
func (l *Logger) Warning(message string) {
	if l.verbosity < VerbosityWarnings {
		return
	}
	l.emit(KindWarning, message, nil, 0)
}

// Exception records a failure and its error details. Exceptions are
// never filtered, whatever the verbosity. A nil err renders as empty
// description fields.
func (l *Logger) Exception(message string, err error) {
	info := describeError(err)
	l.emit(KindException, message, &info, goroutineID())
}

// Shutdown drains and finalizes the underlying writer. Entries
// enqueued before Shutdown is requested always reach the file ahead of
// the sentinel line. Idempotent.
func (l *Logger) Shutdown(ctx context.Context) error {
	if l.writer == nil {
		return nil
	}
	return l.writer.Shutdown(ctx)
}

// IsClosed reports whether the log file has been finalized. A Logger
// whose setup failed counts as closed.
func (l *Logger) IsClosed() bool {
	if l.writer == nil {
		return true
	}
	return l.writer.IsClosed()
}

func (l *Logger) emit(kind Kind, message string, errInfo *ErrorInfo, gid uint64) {
	if l.writer == nil {
		return
	}
	l.mu.Lock()
	l.seq++
	l.writer.Enqueue(Entry{
		Sequence:    l.seq,
		Kind:        kind,
		Message:     message,
		Timestamp:   time.Now(),
		GoroutineID: gid,
		Err:         errInfo,
	})
	l.mu.Unlock()
}
