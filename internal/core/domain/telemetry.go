package domain

// LogLevel is the severity of a line written to a telemetry vertex. The
// values match log/slog so levels convert without a table.
type LogLevel int

const (
	// LogLevelDebug is used for git plumbing details.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo is used for progress notes such as a finished clone.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn is used for recoverable problems.
	LogLevelWarn LogLevel = 4
	// LogLevelError is used for failures.
	LogLevelError LogLevel = 8
)

var logLevelNames = map[LogLevel]string{
	LogLevelDebug: "DEBUG",
	LogLevelInfo:  "INFO",
	LogLevelWarn:  "WARN",
	LogLevelError: "ERROR",
}

// String returns the upper case level name. Unknown levels render as INFO.
func (l LogLevel) String() string {
	if name, ok := logLevelNames[l]; ok {
		return name
	}
	return "INFO"
}

// Severe reports whether lines of this level belong on a vertex's stderr.
func (l LogLevel) Severe() bool {
	return l >= LogLevelWarn
}
