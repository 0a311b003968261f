/*
Package middleware defines what a middleware is in antsy and a set of basic middlewares.

An [Adapter] wraps the next stage of a request pipeline.
[Chain] composes adapters so the first one given is the outermost.

The available middlewares are:
  - Compress
  - CORS
  - ForceHTTPS
  - InjectIPAddress
  - Instrument
  - LogRequest
  - RateLimit
  - Recover
  - RequestID

No middleware is applied by default.
A typical stack, in the order to hand it to Use, is:

	m := middleware.NewMetrics("myapp")
	adpts := []middleware.Adapter{
		middleware.RequestID(),
		middleware.LogRequest(log),
		middleware.Recover(log),
		middleware.Instrument(m),
		middleware.RateLimit(middleware.NewVisitors()),
		middleware.ForceHTTPS(env),
		middleware.CORS(origin),
		middleware.Compress(),
	}
*/
package middleware
