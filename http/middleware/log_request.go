package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/xy-planning-network/antsy"
	"github.com/xy-planning-network/antsy/logger"
)

// LogRequest logs, after the rest of the pipeline responds,
// the request's method, URI, originating IP address, response status, and duration
// using the enclosed implementation of logger.Logger.
//
// LogRequest scrubs the values for the following query params:
//   - password
//   - token
//
// If logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusRecorder{ResponseWriter: w}
			h.ServeHTTP(sw, r)

			uri := r.URL.Path
			q := r.URL.Query()
			antsy.Mask(q, "password")
			antsy.Mask(q, "token")
			if query := q.Encode(); query != "" {
				uri += "?" + query
			}

			data := map[string]any{
				"duration": time.Since(start).String(),
				"ip":       GetIPAddress(r),
				"size":     sw.size,
				"status":   sw.Status(),
			}
			if id, ok := r.Context().Value(antsy.RequestIDKey).(string); ok {
				data["requestID"] = id
			}

			ls.Info(fmt.Sprintf("%s %s %d", r.Method, uri, sw.Status()), &logger.LogContext{Data: data})
		})
	}
}
