package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/antsy"
	"github.com/xy-planning-network/antsy/http/middleware"
)

// A Route maps a path and HTTP method to an [http.Handler].
// Additional [middleware.Adapter] are called, in order,
// only when a request matches the Route.
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []middleware.Adapter
}

// Router collects routes, static file mounts, and middlewares
// and composes them into a single pipeline with Build.
//
// A Router is not safe for concurrent registration.
// The pipeline Build returns is safe for concurrent use.
type Router struct {
	mounts   []Mount
	notFound http.Handler
	stack    []middleware.Adapter
	tables   map[string]table
}

// New constructs an empty [*Router].
func New() *Router {
	return &Router{tables: make(map[string]table)}
}

// Handle applies the [Route] to the [*Router].
//
// Routes for the same method are tried in the order they are handled;
// the first whose path template matches a request wins.
func (r *Router) Handle(route Route) error {
	method := strings.ToUpper(strings.TrimSpace(route.Method))
	if method == "" {
		return fmt.Errorf("%w: method for path %q", antsy.ErrNotValid, route.Path)
	}

	if route.Handler == nil {
		return fmt.Errorf("%w: nil handler for %s %q", antsy.ErrNotValid, method, route.Path)
	}

	path, err := NormalizePath(route.Path)
	if err != nil {
		return err
	}

	handler := middleware.Chain(route.Handler, route.Middlewares...)
	r.tables[method] = append(r.tables[method], entry{path: path, handler: handler})

	return nil
}

// HandleRoutes applies each [Route] to the [*Router], stopping at the first that fails.
// Any middlewares passed in are called before those already assigned to a Route.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) error {
	for _, route := range routes {
		mws := make([]middleware.Adapter, 0, len(middlewares)+len(route.Middlewares))
		mws = append(mws, middlewares...)
		route.Middlewares = append(mws, route.Middlewares...)
		if err := r.Handle(route); err != nil {
			return err
		}
	}

	return nil
}

// HandleNotFound sets the handler called when neither a static file nor a Route matches a request.
func (r *Router) HandleNotFound(handler http.Handler) {
	r.notFound = handler
}

// Mount serves files from dir to requests under prefix.
//
// dir is resolved when the pipeline is built, not now.
func (r *Router) Mount(prefix, dir string) error {
	m, err := NewMount(prefix, dir)
	if err != nil {
		return err
	}

	r.mounts = append(r.mounts, m)
	return nil
}

// Mounts returns the mounts in the order they were added.
func (r *Router) Mounts() []Mount {
	return append([]Mount(nil), r.mounts...)
}

// Use appends the middlewares to the stack wrapping the whole pipeline.
// The first middleware used is the outermost.
func (r *Router) Use(middlewares ...middleware.Adapter) {
	r.stack = append(r.stack, middlewares...)
}

// Build composes the pipeline:
// middlewares, in the order used, wrap the static file mounts, in the order mounted,
// which wrap the route tables,
// which fall through to the not found handler.
//
// Relative mount directories are resolved against root,
// or against the working directory if root is empty.
// A relative root is itself resolved against the working directory here,
// so changing directories later does not move the mounts.
//
// The pipeline is a snapshot: registering on the [*Router] afterwards does not change it.
func (r *Router) Build(root string) (http.Handler, error) {
	if root == "" {
		wd, err := workingDir()
		if err != nil {
			return nil, fmt.Errorf("%w: could not read working directory: %s", antsy.ErrBadConfig, err)
		}

		root = wd
	}

	root, err := absPath(root)
	if err != nil {
		return nil, fmt.Errorf("%w: could not resolve content root: %s", antsy.ErrBadConfig, err)
	}

	notFound := r.notFound
	if notFound == nil {
		notFound = http.HandlerFunc(NotFound)
	}

	d := dispatcher{next: notFound, routers: make(map[string]*mux.Router, len(r.tables))}
	for method, t := range r.tables {
		d.routers[method] = t.build(notFound)
	}

	stages := make([]middleware.Adapter, 0, len(r.mounts))
	for _, m := range r.mounts {
		stages = append(stages, m.stage(root))
	}

	h := middleware.Chain(d, stages...)
	return middleware.Chain(h, append([]middleware.Adapter(nil), r.stack...)...), nil
}

// NotFound responds with 404.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

// dispatcher hands a request to the route table for its method.
type dispatcher struct {
	next    http.Handler
	routers map[string]*mux.Router
}

func (d dispatcher) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	mr, ok := d.routers[req.Method]
	if !ok && req.Method == http.MethodHead {
		mr, ok = d.routers[http.MethodGet]
	}

	if !ok {
		d.next.ServeHTTP(w, req)
		return
	}

	mr.ServeHTTP(w, req)
}
