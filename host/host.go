package host

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/xy-planning-network/antsy"
	"github.com/xy-planning-network/antsy/http/middleware"
	"github.com/xy-planning-network/antsy/http/router"
	"github.com/xy-planning-network/antsy/logger"
)

type state int

const (
	unconfigured state = iota
	configuring
	running
)

func (s state) String() string {
	switch s {
	case configuring:
		return "configuring"
	case running:
		return "running"
	default:
		return "unconfigured"
	}
}

// A Host collects routes, static file mounts and middlewares
// and serves them over HTTP.
//
// Register everything before calling Run;
// the pipeline is built once, when Run starts,
// and later registrations do not reach it.
type Host struct {
	base      *http.Server
	cfg       Config
	configure []func(*http.Server)
	ctx       context.Context
	env       antsy.Environment
	l         logger.Logger
	metrics   *middleware.Metrics
	router    *router.Router

	mu    sync.Mutex
	addr  net.Addr
	srv   *http.Server
	state state
}

// New constructs a *Host from the options.
// Configuration not set by an option is read from the environment.
func New(opts ...HostOption) (*Host, error) {
	h := &Host{
		ctx:    context.Background(),
		router: router.New(),
	}

	followups := make([]OptFollowup, 0, len(opts))
	for _, opt := range opts {
		fn, err := opt(h)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", antsy.ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	h.cfg = NewConfig()
	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%w: %s", antsy.ErrBadConfig, err)
		}
	}

	if err := h.cfg.Valid(); err != nil {
		return nil, fmt.Errorf("%w: %s", antsy.ErrBadConfig, err)
	}

	if h.env == "" {
		h.env = antsy.EnvVarOrEnv(environmentEnvVar, antsy.Development)
	}

	if h.l == nil {
		h.l = defaultLogger(h.env)
	}

	return h, nil
}

// Listen constructs a *Host listening on port across all interfaces.
func Listen(port int) (*Host, error) {
	return New(WithAddr(""), WithPort(port))
}

// Config returns the Config the Host listens with.
func (h *Host) Config() Config { return h.cfg }

// Env returns the Environment the Host runs in.
func (h *Host) Env() antsy.Environment { return h.env }

// Logger returns the logger.Logger the Host logs with.
func (h *Host) Logger() logger.Logger { return h.l }

// Get routes GET requests matching path to handler.
//
// Get panics if path is empty or not a valid path template.
func (h *Host) Get(path string, handler antsy.Handler) { h.handle(http.MethodGet, path, handler) }

// Post routes POST requests matching path to handler.
//
// Post panics if path is empty or not a valid path template.
func (h *Host) Post(path string, handler antsy.Handler) { h.handle(http.MethodPost, path, handler) }

// Delete routes DELETE requests matching path to handler.
//
// Delete panics if path is empty or not a valid path template.
func (h *Host) Delete(path string, handler antsy.Handler) { h.handle(http.MethodDelete, path, handler) }

func (h *Host) handle(method, path string, handler antsy.Handler) {
	if handler == nil {
		panic(fmt.Errorf("%w: nil handler for %s %s", antsy.ErrNotValid, method, path))
	}

	route := router.Route{Path: path, Method: method, Handler: h.adapt(handler)}
	if err := h.router.Handle(route); err != nil {
		panic(err)
	}
}

// StaticFiles serves files under dir for GET requests whose path starts with prefix.
// Requests for files that do not exist continue on to the routes.
//
// A relative dir is resolved against the content root when Run starts.
//
// StaticFiles panics if dir is empty.
func (h *Host) StaticFiles(prefix, dir string) {
	if err := h.router.Mount(prefix, dir); err != nil {
		panic(err)
	}
}

// Use adds middlewares to the pipeline.
// The first middleware added sees every request first.
func (h *Host) Use(middlewares ...middleware.Adapter) { h.router.Use(middlewares...) }

// Pipeline composes what has been registered so far into an http.Handler.
func (h *Host) Pipeline() (http.Handler, error) {
	handler, err := h.router.Build(h.cfg.ContentRoot)
	if err != nil {
		return nil, err
	}

	for _, m := range h.router.Mounts() {
		h.l.Debug(fmt.Sprintf("serving static files at %s", m.Prefix), &logger.LogContext{
			Data: map[string]any{"dir": m.Dir},
		})
	}

	return handler, nil
}

// Addr returns the address the Host is listening on, nil before Run.
func (h *Host) Addr() net.Addr {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.addr
}

// Run starts the web server and blocks until it stops.
//
// These, and (*Host).Shutdown, stop Run:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGQUIT
// - syscall.SIGTERM
//
// Run returns an error immediately if the address cannot be bound.
func (h *Host) Run() error { return h.RunContext(h.ctx) }

// RunContext is Run, also stopping when ctx is done.
func (h *Host) RunContext(ctx context.Context) error {
	h.mu.Lock()
	if h.state != unconfigured {
		h.mu.Unlock()
		return fmt.Errorf("%w: host is %s", antsy.ErrRunning, h.state)
	}
	h.state = configuring
	h.mu.Unlock()

	handler, err := h.Pipeline()
	if err != nil {
		h.reset()
		return err
	}

	srv := h.server(handler)
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		h.reset()
		return fmt.Errorf("could not listen: %w", err)
	}

	h.mu.Lock()
	h.addr = ln.Addr()
	h.srv = srv
	h.state = running
	h.mu.Unlock()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGHUP, syscall.SIGQUIT, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		defer close(errs)

		h.l.Info(fmt.Sprintf("running web server at %s", ln.Addr()), nil)
		if err := h.serve(srv, ln); !errors.Is(err, http.ErrServerClosed) {
			// ServeTLS leaves ln open when the key pair cannot be loaded.
			ln.Close()
			errs <- fmt.Errorf("could not serve: %w", err)
		}
	}()

	select {
	case err := <-errs:
		if err != nil {
			h.reset()
		}
		return err
	case <-ctx.Done():
		h.l.Info("received shutdown signal", &logger.LogContext{Error: ctx.Err()})
		return h.Shutdown(context.Background())
	}
}

// Shutdown gracefully stops the web server,
// waiting up to the configured shutdown timeout for open requests.
func (h *Host) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	srv := h.srv
	h.mu.Unlock()

	if srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, h.cfg.ShutdownTimeout)
	defer cancel()

	h.l.Info("shutting down web server", nil)
	err := srv.Shutdown(ctx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	h.l.Info("web server shutdown successfully", nil)
	return nil
}

// reset returns the Host to unconfigured after Run fails, so Run can be tried again.
func (h *Host) reset() {
	h.mu.Lock()
	h.addr = nil
	h.srv = nil
	h.state = unconfigured
	h.mu.Unlock()
}

// server prepares the *http.Server handler is served with.
func (h *Host) server(handler http.Handler) *http.Server {
	srv := h.base
	if srv == nil {
		srv = &http.Server{
			ReadTimeout:  h.cfg.ReadTimeout,
			WriteTimeout: h.cfg.WriteTimeout,
			IdleTimeout:  h.cfg.IdleTimeout,
		}
	}

	if srv.Addr == "" {
		srv.Addr = h.cfg.Addr()
	}

	if srv.BaseContext == nil {
		ctx := h.ctx
		srv.BaseContext = func(net.Listener) context.Context { return ctx }
	}

	srv.Handler = handler
	for _, fn := range h.configure {
		fn(srv)
	}

	return srv
}

func (h *Host) serve(srv *http.Server, ln net.Listener) error {
	switch {
	case h.cfg.TLS():
		return srv.ServeTLS(ln, h.cfg.TLSCertFile, h.cfg.TLSKeyFile)
	case srv.TLSConfig != nil && (len(srv.TLSConfig.Certificates) > 0 || srv.TLSConfig.GetCertificate != nil):
		return srv.ServeTLS(ln, "", "")
	default:
		return srv.Serve(ln)
	}
}

// adapt translates handler into an http.Handler whose faults are reported by the Host.
func (h *Host) adapt(handler antsy.Handler) http.Handler {
	return antsy.Adapt(handler, h.fault)
}

// fault logs err and responds with 500 if nothing has been sent yet.
// The server keeps accepting requests.
func (h *Host) fault(req *antsy.Request, res *antsy.Response, err error) {
	lc := &logger.LogContext{Error: err, Request: req.Raw()}

	var perr *antsy.PanicError
	if errors.As(err, &perr) {
		lc.Data = map[string]any{"stack": string(perr.Stack)}
	}

	h.l.Error(fmt.Sprintf("%s %s failed", req.Method(), req.Path()), lc)
	antsy.InternalServerError(req, res, err)
}
