// Package context carries request-scoped values across layers without
// leaking transport types into the domain.
package context

import (
	"context"
)

// TraceContext identifies one request through logs and transaction spans.
// The trace middleware populates it from inbound headers or fresh IDs.
type TraceContext struct {
	TraceID   string
	SpanID    string
	RequestID string
}

type traceContextKey struct{}

// WithTrace stores trace info in the context.
func WithTrace(ctx context.Context, trace *TraceContext) context.Context {
	return context.WithValue(ctx, traceContextKey{}, trace)
}

// GetTrace returns the trace info, or nil outside a traced request.
func GetTrace(ctx context.Context) *TraceContext {
	if v, ok := ctx.Value(traceContextKey{}).(*TraceContext); ok {
		return v
	}
	return nil
}

// GetRequestID returns the request ID, or "" outside a traced request.
func GetRequestID(ctx context.Context) string {
	if t := GetTrace(ctx); t != nil {
		return t.RequestID
	}
	return ""
}
