package logger_test

import (
	"bytes"
	"errors"
	"io"
	"log"
	"regexp"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/antsy/logger"
)

func init() { color.NoColor = true }

var (
	logLevelRegexp = regexp.MustCompile(`^\[[A-Z]+\]`)
	msgRegexp      = regexp.MustCompile(`'(.*)'`)
)

func newTestLogger(w io.Writer) *log.Logger {
	return log.New(w, "", 0)
}

func TestNewLogLevel(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected logger.LogLevel
	}{
		{"DEBUG", logger.LogLevelDebug},
		{"info", logger.LogLevelInfo},
		{"Warn", logger.LogLevelWarn},
		{"ERROR", logger.LogLevelError},
		{"FATAL", logger.LogLevelFatal},
		{"", logger.LogLevelUnk},
		{"loud", logger.LogLevelUnk},
	} {
		t.Run(tc.input, func(t *testing.T) {
			require.Equal(t, tc.expected, logger.NewLogLevel(tc.input))
		})
	}
}

func TestAntsyLoggerLevels(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(newTestLogger(b)), logger.WithLevel(logger.LogLevelWarn))

	// Act
	l.Debug("debug", nil)
	l.Info("info", nil)

	// Assert
	require.Empty(t, b.String())

	// Act
	l.Warn("warn", nil)

	// Assert
	require.Equal(t, "[WARN]", logLevelRegexp.FindString(b.String()))
	require.Equal(t, "warn", msgRegexp.FindStringSubmatch(b.String())[1])
	require.Contains(t, b.String(), "logger_test.go")

	// Arrange
	b.Reset()

	// Act
	l.Error("error", &logger.LogContext{Error: errors.New("boom")})

	// Assert
	require.Equal(t, "[ERROR]", logLevelRegexp.FindString(b.String()))
	require.Contains(t, b.String(), `log_context: {"error":"boom"}`)
}

func TestAntsyLoggerCaller(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(newTestLogger(b)))

	// Act
	l.Info("from elsewhere", &logger.LogContext{Caller: "somewhere/else.go:12"})

	// Assert
	require.Contains(t, b.String(), "somewhere/else.go:12 'from elsewhere'")
	require.NotContains(t, b.String(), "logger_test.go")
}

func TestAntsyLoggerAddSkip(t *testing.T) {
	// Arrange
	l := logger.New(logger.WithSkip(1))

	// Act
	skipped := l.AddSkip(3)

	// Assert
	require.Equal(t, 1, l.Skip())
	require.Equal(t, 3, skipped.Skip())
}

func TestNewSentryLoggerBadDSN(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(newTestLogger(b)))

	// Act
	actual := logger.NewSentryLogger("TESTING", l, "not a dsn")

	// Assert
	require.Same(t, l, actual)
	require.Contains(t, b.String(), "unable to init Sentry")
}
