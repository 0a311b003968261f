package host

import (
	"context"
	"fmt"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/xy-planning-network/antsy"
	"github.com/xy-planning-network/antsy/logger"
)

// A HostOption configures a *Host either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
//
// Options changing the Config return an OptFollowup:
// the Config is read from the environment only after every option has been called once,
// so that WithEnvFile can supply it,
// and the followups then overwrite what the environment set.
type HostOption func(h *Host) (OptFollowup, error)
type OptFollowup func() error

// WithAddr sets the interface the host listens on; "" listens on all of them.
func WithAddr(addr string) HostOption {
	return func(h *Host) (OptFollowup, error) {
		return func() error {
			h.cfg.Host = addr
			return nil
		}, nil
	}
}

// WithConfig replaces the whole Config read from the environment.
func WithConfig(cfg Config) HostOption {
	return func(h *Host) (OptFollowup, error) {
		return func() error {
			h.cfg = cfg
			return nil
		}, nil
	}
}

// WithConfigure adds fn to the callbacks run on the *http.Server
// right before the host starts listening.
// It is the place for advanced setups: TLS configuration, error logs, connection hooks.
func WithConfigure(fn func(srv *http.Server)) HostOption {
	return func(h *Host) (OptFollowup, error) {
		if fn == nil {
			return nil, fmt.Errorf("%w: nil configure callback", antsy.ErrNotValid)
		}

		h.configure = append(h.configure, fn)
		return nil, nil
	}
}

// WithContentRoot resolves relative static file directories against dir instead of the working directory.
func WithContentRoot(dir string) HostOption {
	return func(h *Host) (OptFollowup, error) {
		return func() error {
			h.cfg.ContentRoot = dir
			return nil
		}, nil
	}
}

// WithContext exposes the provided context.Context to every request
// and stops the host when it is done.
func WithContext(ctx context.Context) HostOption {
	return func(h *Host) (OptFollowup, error) {
		if ctx == nil {
			return nil, fmt.Errorf("%w: nil context", antsy.ErrNotValid)
		}

		h.ctx = ctx
		return nil, nil
	}
}

// WithEnv sets the Environment the host runs in.
// Without it, the ENVIRONMENT env var is read, defaulting to antsy.Development.
func WithEnv(env antsy.Environment) HostOption {
	return func(h *Host) (OptFollowup, error) {
		if err := env.Valid(); err != nil {
			return nil, fmt.Errorf("%w: environment %q", err, env)
		}

		h.env = env
		return nil, nil
	}
}

// WithEnvFile loads environment variables from the files, ".env" if none are given.
// Variables already set are not overwritten.
func WithEnvFile(files ...string) HostOption {
	return func(h *Host) (OptFollowup, error) {
		if err := godotenv.Load(files...); err != nil {
			return nil, fmt.Errorf("could not load env file: %w", err)
		}

		return nil, nil
	}
}

// WithLogger sets the logger.Logger the host logs with.
func WithLogger(l logger.Logger) HostOption {
	return func(h *Host) (OptFollowup, error) {
		if l == nil {
			return nil, fmt.Errorf("%w: nil logger", antsy.ErrNotValid)
		}

		h.l = l
		return nil, nil
	}
}

// WithNotFound sets the handler for requests neither a static file nor a route matches.
func WithNotFound(handler antsy.Handler) HostOption {
	return func(h *Host) (OptFollowup, error) {
		if handler == nil {
			return nil, fmt.Errorf("%w: nil not found handler", antsy.ErrNotValid)
		}

		h.router.HandleNotFound(h.adapt(handler))
		return nil, nil
	}
}

// WithPort sets the TCP port the host listens on.
func WithPort(port int) HostOption {
	return func(h *Host) (OptFollowup, error) {
		return func() error {
			h.cfg.Port = port
			return nil
		}, nil
	}
}

// WithServer sets the *http.Server the host runs.
// Its Handler is replaced by the pipeline;
// an empty Addr is filled in from the Config.
func WithServer(srv *http.Server) HostOption {
	return func(h *Host) (OptFollowup, error) {
		if srv == nil {
			return nil, fmt.Errorf("%w: nil server", antsy.ErrNotValid)
		}

		h.base = srv
		return nil, nil
	}
}

// WithTLS serves HTTPS using the certificate and key files.
func WithTLS(certFile, keyFile string) HostOption {
	return func(h *Host) (OptFollowup, error) {
		return func() error {
			h.cfg.TLSCertFile = certFile
			h.cfg.TLSKeyFile = keyFile
			return nil
		}, nil
	}
}
