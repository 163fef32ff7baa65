package wrap

import (
	"context"
)

// Error wraps err with the LogCtx carried by ctx so the log context of the
// place where the error happened survives the trip up the call stack.
func Error(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	lc, _ := ctx.Value(LogCtxKey).(LogCtx)
	return &ctxError{err: err, lc: lc}
}
