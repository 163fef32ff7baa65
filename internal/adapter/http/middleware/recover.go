package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	wrap "github.com/Temutjin2k/bike-sharing-dashboard/pkg/logger/wrapper"
)

func (app *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if panic := recover(); panic != nil {
				err := fmt.Errorf("%v", panic)
				app.log.Error(wrap.WithAction(r.Context(), "recover"), "panic while serving request", err,
					"method", r.Method,
					"URL", r.URL.Path,
					"stack", string(debug.Stack()),
				)

				w.Header().Set("Connection", "close")
				abort(w, r, http.StatusInternalServerError, msgInternal)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
