package logq

import (
	"io"
	"os"
	"path/filepath"
)

const (
	// defaultDirName is the fixed subfolder under the per-user
	// application data directory.
	defaultDirName = "logq"

	// defaultFileName is the log file name inside defaultDirName.
	defaultFileName = "logq.txt"

	// defaultBufferSize is the size of the writer's output buffer and
	// the initial capacity of pooled format buffers.
	defaultBufferSize = 4096
)

// Config collects the construction-time settings of a Logger. All
// fields are fixed once New returns; there is no runtime
// reconfiguration.
type Config struct {
	// Path of the log file. Empty selects DefaultPath().
	Path string

	// Verbosity threshold, VerbosityExceptions through VerbosityDebug.
	// Values outside that range are clamped.
	Verbosity int

	// Append preserves the existing file across runs instead of
	// truncating it.
	Append bool

	// ErrorHandler receives internal failures. Nil selects a handler
	// that prints to Fallback.
	ErrorHandler ErrorHandler

	// Fallback is the diagnostic stream used when the log file itself
	// is unusable. Nil selects os.Stderr.
	Fallback io.Writer
}

// Option configures a Logger during New.
type Option func(*Config)

// WithPath sets the log file path.
func WithPath(path string) Option {
	return func(c *Config) { c.Path = path }
}

// WithVerbosity sets the filtering threshold.
func WithVerbosity(v int) Option {
	return func(c *Config) { c.Verbosity = v }
}

// WithAppend keeps the existing file contents instead of truncating on
// startup.
func WithAppend(enable bool) Option {
	return func(c *Config) { c.Append = enable }
}

// WithErrorHandler routes internal failures to handler.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(c *Config) { c.ErrorHandler = handler }
}

// WithFallbackOutput sets the diagnostic stream for setup and write
// failures.
func WithFallbackOutput(w io.Writer) Option {
	return func(c *Config) { c.Fallback = w }
}

// DefaultPath returns the per-user location used when no path is
// configured.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, defaultDirName, defaultFileName), nil
}

// clampVerbosity forces v into the supported range.
func clampVerbosity(v int) int {
	if v < VerbosityExceptions {
		return VerbosityExceptions
	}
	if v > VerbosityDebug {
		return VerbosityDebug
	}
	return v
}
