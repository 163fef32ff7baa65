package wrap

import (
	"context"
)

type (
	// LogCtx holds contextual information for logging
	LogCtx struct {
		Action    string
		RequestID string
		Dataset   string
		Chart     string
	}

	// logCtxKeyStruct is an unexported type for context keys defined in this package.
	logCtxKeyStruct struct{}
)

// logCtxKey is the key for log context values
var LogCtxKey = &logCtxKeyStruct{}

// WithLogCtx returns a new context with the provided LogCtx
func WithLogCtx(ctx context.Context, newLc LogCtx) context.Context {
	// Check if there's an existing LogCtx and merge values
	if lc, ok := ctx.Value(LogCtxKey).(LogCtx); ok {
		if newLc.Action == "" {
			newLc.Action = lc.Action
		}
		if newLc.RequestID == "" {
			newLc.RequestID = lc.RequestID
		}
		if newLc.Dataset == "" {
			newLc.Dataset = lc.Dataset
		}
		if newLc.Chart == "" {
			newLc.Chart = lc.Chart
		}
		return context.WithValue(ctx, LogCtxKey, newLc)
	}
	return context.WithValue(ctx, LogCtxKey, newLc)
}

// WithRequestID adds or updates the RequestID in the LogCtx within the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	lc, _ := ctx.Value(LogCtxKey).(LogCtx)
	lc.RequestID = requestID
	return context.WithValue(ctx, LogCtxKey, lc)
}

// WithAction adds or updates the Action in the LogCtx within the context
func WithAction(ctx context.Context, action string) context.Context {
	lc, _ := ctx.Value(LogCtxKey).(LogCtx)
	lc.Action = action
	return context.WithValue(ctx, LogCtxKey, lc)
}

// WithDataset adds or updates the Dataset in the LogCtx within the context
func WithDataset(ctx context.Context, dataset string) context.Context {
	lc, _ := ctx.Value(LogCtxKey).(LogCtx)
	lc.Dataset = dataset
	return context.WithValue(ctx, LogCtxKey, lc)
}

// WithChart adds or updates the Chart in the LogCtx within the context
func WithChart(ctx context.Context, chart string) context.Context {
	lc, _ := ctx.Value(LogCtxKey).(LogCtx)
	lc.Chart = chart
	return context.WithValue(ctx, LogCtxKey, lc)
}

// RequestID returns the request id stored in the context, if any.
func RequestID(ctx context.Context) string {
	lc, _ := ctx.Value(LogCtxKey).(LogCtx)
	return lc.RequestID
}
