package logtrace

import (
	"context"
)

// RequestIdFromContext extracts the request id from the context.
// Returns an empty string if the context is nil or carries no request id.
func RequestIdFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	r, ok := ctx.Value("requestId").(string)
	if !ok {
		return ""
	}
	return r
}

// IsTraceEnabled reports whether request tracing is enabled.
func IsTraceEnabled() bool {
	return false
}
