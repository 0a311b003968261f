package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/antsy"
)

// An entry pairs a normalized path template with the handler it routes to.
type entry struct {
	path    string
	handler http.Handler
}

// A table is the ordered set of entries registered for one HTTP method.
type table []entry

// build constructs a *mux.Router matching the entries in registration order.
// Requests no entry matches are passed to next.
func (t table) build(next http.Handler) *mux.Router {
	r := mux.NewRouter()
	for _, e := range t {
		r.Handle(e.path, e.handler)
	}

	r.NotFoundHandler = next
	r.MethodNotAllowedHandler = next

	return r
}

// NormalizePath prepares a path template for matching.
//
// A leading "/" is optional, so "foo" and "/foo" are equivalent.
// Segments written as ":name" become the placeholder "{name}".
// Placeholders may carry a pattern, e.g. "{id:[0-9]+}".
//
// NormalizePath returns antsy.ErrEmptyPath for blank paths
// and antsy.ErrNotValid for templates that cannot be compiled.
func NormalizePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("%w: %q", antsy.ErrEmptyPath, path)
	}

	segs := strings.Split(strings.TrimPrefix(trimmed, "/"), "/")
	for i, seg := range segs {
		if len(seg) > 1 && seg[0] == ':' {
			segs[i] = "{" + seg[1:] + "}"
		}
	}

	normalized := "/" + strings.Join(segs, "/")
	if err := mux.NewRouter().NewRoute().Path(normalized).GetError(); err != nil {
		return "", fmt.Errorf("%w: path %q: %s", antsy.ErrNotValid, path, err)
	}

	return normalized, nil
}
