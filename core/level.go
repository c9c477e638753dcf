package core

// Level represents the severity level of a log entry
type Level int8

const (
	// VerboseLevel for very chatty tracing output
	VerboseLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// AssertLevel for unrecoverable states (causes os.Exit(1))
	AssertLevel
)

// levelNames is indexed by Level
var levelNames = [...]string{
	VerboseLevel: "verbose",
	DebugLevel:   "debug",
	InfoLevel:    "info",
	WarnLevel:    "warn",
	ErrorLevel:   "error",
	AssertLevel:  "assert",
}

// Levels returns all levels in ascending severity.
func Levels() []Level {
	return []Level{VerboseLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, AssertLevel}
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= VerboseLevel && int(l) < len(levelNames)
}

// String returns the string representation of the level
func (l Level) String() string {
	if !l.Valid() {
		return "unknown"
	}
	return levelNames[l]
}
