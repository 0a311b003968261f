package logger

import "log"

// A LoggerOptFn is a functional option configuring an AntsyLogger when constructing a new one.
type LoggerOptFn func(*AntsyLogger)

// WithEnv sets the environment AntsyLogger is operating in.
func WithEnv(env string) LoggerOptFn {
	return func(l *AntsyLogger) {
		l.env = env
	}
}

// WithLevel sets the log level AntsyLogger uses.
// LogLevelUnk is ignored.
func WithLevel(level LogLevel) LoggerOptFn {
	return func(l *AntsyLogger) {
		if level == LogLevelUnk {
			return
		}

		l.ll = level
	}
}

// WithLogger sets the log.Logger AntsyLogger uses.
func WithLogger(log *log.Logger) LoggerOptFn {
	return func(l *AntsyLogger) {
		l.l = log
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) LoggerOptFn {
	return func(l *AntsyLogger) {
		l.skip = skip
	}
}
