package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/xy-planning-network/antsy/logger"
)

// Recover stops a panic in a later stage from escaping the pipeline.
// The panic is reported to Sentry, if initialized,
// logged with l, and the client receives a 500.
//
// A panic with [http.ErrAbortHandler] is left to net/http.
func Recover(l logger.Logger) Adapter {
	sh := sentryhttp.New(sentryhttp.Options{Repanic: true})

	return func(h http.Handler) http.Handler {
		reported := sh.Handle(h)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}

				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				if l != nil {
					l.Error(fmt.Sprintf("recovered from panic: %v", rvr), &logger.LogContext{
						Data:    map[string]any{"stack": string(debug.Stack())},
						Request: r,
					})
				}

				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()

			reported.ServeHTTP(w, r)
		})
	}
}
