package values

type contextKey string

// ContextTracingKey carries the tracing context through a request.
const ContextTracingKey = contextKey("tracing-context")

const (
	HeaderRequestID     = "X-Request-Id"
	HeaderRequestSource = "X-Request-Source"
)

// Status strings returned in response envelopes and mapped to HTTP codes.
const (
	Success        = "success"
	Created        = "created"
	Error          = "internal-error"
	BadRequestBody = "bad-request-body"
	NotFound       = "not-found"
)

// DefaultRequestSource is used when a caller does not identify itself.
const DefaultRequestSource = "api"
