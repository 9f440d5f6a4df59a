package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sentimark/reviews_api/util/tracing"
	"github.com/sentimark/reviews_api/util/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestTracing_GeneratesRequestID(t *testing.T) {
	var captured tracing.Context

	probe := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = r.Context().Value(values.ContextTracingKey).(tracing.Context)
	})

	req := httptest.NewRequest(http.MethodGet, "/reviews", nil)
	rec := httptest.NewRecorder()
	RequestTracing(probe).ServeHTTP(rec, req)

	assert.NotEmpty(t, captured.RequestID)
	assert.Equal(t, values.DefaultRequestSource, captured.RequestSource)
}

func TestRequestTracing_HonorsCallerHeaders(t *testing.T) {
	var captured tracing.Context

	probe := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = r.Context().Value(values.ContextTracingKey).(tracing.Context)
	})

	req := httptest.NewRequest(http.MethodGet, "/reviews", nil)
	req.Header.Set(values.HeaderRequestID, "req-123")
	req.Header.Set(values.HeaderRequestSource, "mobile")
	rec := httptest.NewRecorder()
	RequestTracing(probe).ServeHTTP(rec, req)

	require.Equal(t, "req-123", captured.RequestID)
	assert.Equal(t, "mobile", captured.RequestSource)
}
