package storagesafe

// Logger defines an interface for logging operations.
// Implementations should be safe for concurrent use.
type Logger interface {
	// Info logs informational messages
	Info(format string, args ...interface{})

	// Warn logs warning messages
	Warn(format string, args ...interface{})

	// Error logs error messages
	Error(format string, args ...interface{})

	// Debug logs debug messages
	Debug(format string, args ...interface{})
}

// noopLogger is a Logger that does nothing.
type noopLogger struct{}

func (noopLogger) Info(format string, args ...interface{})  {}
func (noopLogger) Warn(format string, args ...interface{})  {}
func (noopLogger) Error(format string, args ...interface{}) {}
func (noopLogger) Debug(format string, args ...interface{}) {}

var defaultLogger Logger = noopLogger{}
