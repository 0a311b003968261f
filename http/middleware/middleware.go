package middleware

import (
	"net/http"
)

// An Adapter wraps the next stage of a request pipeline, producing a new stage.
//
// An Adapter may act on the request before calling the next stage,
// respond itself without calling it,
// or act on the response after it returns.
type Adapter func(http.Handler) http.Handler

// Chain glues the set of adapters to the handler.
//
// The first adapter is the outermost:
// it sees the request first and the response last.
func Chain(handler http.Handler, adapters ...Adapter) http.Handler {
	// NOTE: loop in reverse to preserve middleware order
	for i := len(adapters) - 1; i >= 0; i-- {
		handler = adapters[i](handler)
	}

	return handler
}

// NoopAdapter passes the request to the next stage untouched.
func NoopAdapter(h http.Handler) http.Handler { return h }
