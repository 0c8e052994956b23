// Package utils holds transport helpers shared by the cloudphish client:
// the resty-based HTTP client, trace ids and context keys.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so keys never collide with
// string keys from other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey stores a caller-chosen trace id in the context.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx that carries traceID. Requests made with
// that context send it in TraceIDHeader instead of a generated id.
//
//	ctx := utils.WithTraceID(ctx, "batch-42")
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext retrieves the trace id stored by WithTraceID.
//
// ok is false when the value is missing, empty or not a string.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
