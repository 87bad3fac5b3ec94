// Package logq is an in-process asynchronous logging facility. Callers
// emit debug, warning and exception entries from any goroutine; a
// single background worker serializes them to one append-only text
// file in submission order, flushing after every write, so callers
// never block on file I/O and the file never sees interleaved entries.
//
// Key properties:
//
//   - Unbounded thread-safe queue between producers and the one consumer
//   - Strict FIFO: file order is enqueue order, sequence numbers agree
//   - Exceptions always logged; debug/warning gated by a fixed verbosity
//   - Drain-to-completion shutdown finalized by a sentinel line
//   - Setup or write failures degrade to a diagnostic on stderr,
//     never an error back to the logging caller
//   - Cross-process exclusion of the log path via a flock sidecar
//
// Basic usage:
//
//	logger := logq.New(
//		logq.WithPath("/var/log/myapp/app.log"),
//		logq.WithVerbosity(logq.VerbosityDebug),
//	)
//	defer logger.Shutdown(context.Background())
//
//	logger.Debug("cache warmed")
//	logger.Warning("config key deprecated")
//	if err := db.Connect(); err != nil {
//		logger.Exception("database connect failed", err)
//	}
//
// Wrap errors with logq.WrapError (or create them with logq.Errorf) to
// get a stack trace in the exception entry's diagnostic block.
package logq
