package rest

import (
	"context"
	"net/http"

	"github.com/lucsky/cuid"
	"github.com/sentimark/reviews_api/util/tracing"
	"github.com/sentimark/reviews_api/util/values"
)

// RequestTracing attaches a tracing context to every request. Callers may
// supply their own request ID and source headers; absent headers get a
// generated ID and the default source.
func RequestTracing(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestSource := r.Header.Get(values.HeaderRequestSource)
		if requestSource == "" {
			requestSource = values.DefaultRequestSource
		}

		requestID := r.Header.Get(values.HeaderRequestID)
		if requestID == "" {
			requestID = cuid.New()
		}

		tracingContext := tracing.Context{
			RequestID:     requestID,
			RequestSource: requestSource,
		}

		ctx = context.WithValue(ctx, values.ContextTracingKey, tracingContext)
		next.ServeHTTP(w, r.WithContext(ctx))
	}

	return http.HandlerFunc(fn)
}
