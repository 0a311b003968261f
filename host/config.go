package host

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/xy-planning-network/antsy"
)

const (
	// Web server defaults
	hostEnvVar                  = "HOST"
	DefaultPort                 = 3000
	portEnvVar                  = "PORT"
	tlsCertEnvVar               = "TLS_CERT_FILE"
	tlsKeyEnvVar                = "TLS_KEY_FILE"
	contentRootEnvVar           = "CONTENT_ROOT"
	serverReadTimeoutEnvVar     = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout    = 5 * time.Second
	serverIdleTimeoutEnvVar     = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout    = 120 * time.Second
	serverWriteTimeoutEnvVar    = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout   = 5 * time.Second
	serverShutdownTimeoutEnvVar = "SERVER_SHUTDOWN_TIMEOUT"
	DefaultShutdownTimeout      = 5 * time.Second

	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	sentryDsnEnvVar = "SENTRY_DSN"
)

// Config describes how the host listens.
// Every field is optional.
type Config struct {
	// Host is the interface to listen on; empty means all of them.
	Host string

	// Port is the TCP port to listen on; 0 picks a free one.
	Port int

	// TLSCertFile and TLSKeyFile, when both set, serve HTTPS.
	TLSCertFile string
	TLSKeyFile  string

	// ContentRoot, when set, replaces the working directory as the base relative static file directories resolve against.
	// A relative ContentRoot is made absolute when Run builds the pipeline.
	// Empty means the working directory at that time.
	ContentRoot string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// NewConfig constructs a Config from environment variables,
// falling back to defaults for those unset or unparseable.
func NewConfig() Config {
	return Config{
		Host:            antsy.EnvVarOrString(hostEnvVar, ""),
		Port:            envVarOrPort(portEnvVar, DefaultPort),
		TLSCertFile:     antsy.EnvVarOrString(tlsCertEnvVar, ""),
		TLSKeyFile:      antsy.EnvVarOrString(tlsKeyEnvVar, ""),
		ContentRoot:     antsy.EnvVarOrString(contentRootEnvVar, ""),
		ReadTimeout:     antsy.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout:    antsy.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
		IdleTimeout:     antsy.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ShutdownTimeout: antsy.EnvVarOrDuration(serverShutdownTimeoutEnvVar, DefaultShutdownTimeout),
	}
}

// Addr joins Host and Port into an address net.Listen accepts.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// TLS reports whether both TLS files are set.
func (c Config) TLS() bool { return c.TLSCertFile != "" && c.TLSKeyFile != "" }

// Valid checks the Config for values that cannot work.
func (c Config) Valid() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", antsy.ErrNotValid, c.Port)
	}

	if (c.TLSCertFile == "") != (c.TLSKeyFile == "") {
		return fmt.Errorf("%w: TLS needs both a certificate and a key file", antsy.ErrNotValid)
	}

	return nil
}

// envVarOrPort gets the environment variable for the provided key,
// accepting both "8080" and ":8080",
// or returns the provided default.
func envVarOrPort(key string, def int) int {
	port, err := strconv.Atoi(strings.TrimPrefix(antsy.EnvVarOrString(key, ""), ":"))
	if err != nil {
		return def
	}

	return port
}
