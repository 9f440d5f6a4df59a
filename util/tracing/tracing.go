package tracing

// Context identifies a single request across log lines and error messages.
type Context struct {
	RequestID     string
	RequestSource string
}
