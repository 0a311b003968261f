/*
Package host serves an antsy application over HTTP with sane defaults.

# Host

The main entrypoint to package host is the [Host] type.
A [Host] ought to be constructed with [New], configured with [HostOption]s,
or with [Listen] when only the port matters.

Register routes with [*Host.Get], [*Host.Post] and [*Host.Delete],
static files with [*Host.StaticFiles]
and middlewares with [*Host.Use].

[*Host.Run] begins the web server.
By default, [*Host.Run] listens on all interfaces at [DefaultPort] (3000).
Upon calling [*Host.Run], all routes configured up to that point are now active.
Stop that web server with [*Host.Shutdown],
cancel the context passed to [*Host.RunContext] or [WithContext],
or send a signal [*Host.Run] listens for.

# Pipeline

A request passes through, in order:
  - the middlewares, the first one added outermost
  - the static file mounts, in the order they were added
  - the routes for the request's method, the first one added that matches
  - the not found handler; cf. [WithNotFound]

# Configuration

A developer configures a host through environment variables
and by passing [HostOption]s to [New]; options win.
Environment variables can be loaded from a file with [WithEnvFile].

Here are the available environment variables.
  - CONTENT_ROOT: when set, relative static file directories resolve against it instead of the working directory; a relative CONTENT_ROOT is itself made absolute when Run starts; default: unset, so they resolve against the working directory
  - CORS_ORIGIN: the origin allowed to make cross-origin requests; cf. [*Host.Defaults]
  - ENVIRONMENT: the environment the application is running in; cf. [antsy.Environment]
  - HOST: the interface the application listens on; default: all of them
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - PORT: the port the application should listen on; default: 3000
  - RATE_LIMIT: whether to rate limit clients by IP address; cf. [*Host.Defaults]
  - SENTRY_DSN: the DSN errors are reported to
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_SHUTDOWN_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for open requests to finish on shutdown; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
  - TLS_CERT_FILE: the certificate file for serving HTTPS; requires TLS_KEY_FILE
  - TLS_KEY_FILE: the key file for serving HTTPS; requires TLS_CERT_FILE
*/
package host
