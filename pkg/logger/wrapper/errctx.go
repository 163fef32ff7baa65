package wrap

import (
	"context"
	"errors"
)

// ctxError pins the LogCtx of the place an error was raised to the error.
type ctxError struct {
	err error
	lc  LogCtx
}

func (e *ctxError) Error() string { return e.err.Error() }

func (e *ctxError) Unwrap() error { return e.err }

// ErrorCtx returns ctx enriched with the LogCtx pinned to err. Fields the
// error did not record are kept from ctx, and the request id of ctx always
// wins: a memoized dataset error was raised under the first request's id and
// must be logged under the request that is failing now.
func ErrorCtx(ctx context.Context, err error) context.Context {
	var e *ctxError
	if !errors.As(err, &e) || e == nil {
		return ctx
	}

	lc := e.lc
	if id := RequestID(ctx); id != "" {
		lc.RequestID = id
	}
	return WithLogCtx(ctx, lc)
}
