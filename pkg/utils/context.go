package utils

import (
	"context"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
)

func SetRequestIDContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestIDVal := ctx.Value(RequestIDKey)
	if requestIDVal == nil {
		return "", false
	}

	requestID, ok := requestIDVal.(string)
	return requestID, ok
}
