/*
Package logger provides logging functionality to an antsy host by defining the required behavior in [Logger]
and providing an implementation of it with [AntsyLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, if [AntsyLogger] is initialized with [LogLevelWarn],
only [*AntsyLogger.Warn], [*AntsyLogger.Error], and [*AntsyLogger.Fatal] produce messages.

# AntsyLogger

Log messages emitted by [AntsyLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2022/04/28 15:55:21 [INFO] antsy/host/host.go:212 'listening on :8080' log_context: {"data":{"tls":false}}

The log context is a JSON-encoded [LogContext].
It carries data inessential to the message proper,
but provides a fuller picture of the host at the time of logging.

# SentryLogger

When a Sentry DSN is available, wrap a [SkipLogger] with [NewSentryLogger]
so errors attached to WARN, ERROR, and FATAL logs are reported.
*/
package logger
