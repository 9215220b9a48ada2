package log

const (
	ModeProduction  = "production"
	ModeDebug       = "debug"
	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// RequestIDKey is the context key under which the request ID middleware stores its value.
type RequestIDKey struct{}
