package host

import (
	"net/http"
	"os"

	"github.com/xy-planning-network/antsy"
	"github.com/xy-planning-network/antsy/http/middleware"
	"github.com/xy-planning-network/antsy/http/router"
	"github.com/xy-planning-network/antsy/logger"
)

const (
	corsOriginEnvVar = "CORS_ORIGIN"
	rateLimitEnvVar  = "RATE_LIMIT"
)

// defaultLogger constructs a logger.Logger for the environment,
// shipping errors to Sentry when SENTRY_DSN is set.
func defaultLogger(env antsy.Environment) logger.Logger {
	l := logger.New(logger.WithEnv(env.String()))
	dsn := os.Getenv(sentryDsnEnvVar)
	if dsn == "" {
		return l
	}

	return logger.NewSentryLogger(env.String(), l, dsn)
}

// Defaults returns the middlewares most hosts want, outermost first:
//
//   - metrics, if WithMetrics was used
//   - HTTPS redirects in production
//   - request IDs
//   - client IP addresses
//   - request logging
//   - panic recovery
//   - CORS, if CORS_ORIGIN is set
//   - rate limiting, if RATE_LIMIT is true
//   - gzip compression
//
// Pass them to Use.
func (h *Host) Defaults() []middleware.Adapter {
	var https middleware.Adapter = middleware.NoopAdapter
	if h.env.IsProduction() {
		https = middleware.ForceHTTPS(h.env)
	}

	var limit middleware.Adapter = middleware.NoopAdapter
	if antsy.EnvVarOrBool(rateLimitEnvVar, false) {
		limit = middleware.RateLimit(middleware.NewVisitors())
	}

	return []middleware.Adapter{
		middleware.Instrument(h.metrics),
		https,
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(h.l),
		middleware.Recover(h.l),
		middleware.CORS(antsy.EnvVarOrString(corsOriginEnvVar, "")),
		limit,
		middleware.Compress(),
	}
}

// Metrics returns the request metrics collected by the Host, nil without WithMetrics.
func (h *Host) Metrics() *middleware.Metrics { return h.metrics }

// WithMetrics collects request counts and latencies under namespace
// and exposes them for GET requests to path.
//
// Include Defaults, or middleware.Instrument(h.Metrics()), with Use to record them.
func WithMetrics(namespace, path string) HostOption {
	return func(h *Host) (OptFollowup, error) {
		h.metrics = middleware.NewMetrics(namespace)
		route := router.Route{Path: path, Method: http.MethodGet, Handler: h.metrics.Handler()}
		if err := h.router.Handle(route); err != nil {
			return nil, err
		}

		return nil, nil
	}
}
