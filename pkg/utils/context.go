package utils

import (
	"context"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

// SetRequestID stores the request id for downstream logging.
func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
