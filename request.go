package antsy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
)

// A Request presents the inputs of an *http.Request.
//
// A Request belongs to the single dispatch it was created for
// and must not be retained after its Handler returns.
type Request struct {
	r     *http.Request
	query url.Values
}

// NewRequest wraps r.
func NewRequest(r *http.Request) *Request {
	return &Request{r: r}
}

// Method returns the HTTP method, e.g. "GET".
func (req *Request) Method() string { return req.r.Method }

// Path returns the unescaped path of the request URL.
func (req *Request) Path() string { return req.r.URL.Path }

// Query returns the first value for the query parameter key or "".
func (req *Request) Query(key string) string { return req.values().Get(key) }

// QueryValues returns all values for the query parameter key or nil.
func (req *Request) QueryValues(key string) []string { return req.values()[key] }

// Header returns the first value for the header key or "".
func (req *Request) Header(key string) string { return req.r.Header.Get(key) }

// HeaderValues returns all values for the header key or nil.
func (req *Request) HeaderValues(key string) []string { return req.r.Header.Values(key) }

// Param returns the value matched by the placeholder name in the route's path template.
// Param returns "" when the route has no such placeholder.
func (req *Request) Param(name string) string { return mux.Vars(req.r)[name] }

// Params returns every placeholder value matched by the route's path template.
func (req *Request) Params() map[string]string {
	vars := mux.Vars(req.r)
	if vars == nil {
		return map[string]string{}
	}

	return vars
}

// Body streams the request body.
func (req *Request) Body() io.ReadCloser {
	if req.r.Body == nil {
		return http.NoBody
	}

	return req.r.Body
}

// Text reads the remainder of the request body.
//
// Text consumes the body; it cannot be read from again.
func (req *Request) Text() (string, error) {
	b, err := io.ReadAll(req.Body())
	if err != nil {
		return "", fmt.Errorf("antsy: failed reading request body: %w", err)
	}

	return string(b), nil
}

// DecodeJSON decodes the request body into v.
//
// DecodeJSON consumes the body; it cannot be read from again.
func (req *Request) DecodeJSON(v any) error {
	if err := json.NewDecoder(req.Body()).Decode(v); err != nil {
		return fmt.Errorf("antsy: %w: failed decoding request body: %s", ErrNotValid, err)
	}

	return nil
}

// Context returns the request's context.
func (req *Request) Context() context.Context { return req.r.Context() }

// Raw exposes the wrapped *http.Request.
func (req *Request) Raw() *http.Request { return req.r }

func (req *Request) values() url.Values {
	if req.query == nil {
		req.query = req.r.URL.Query()
	}

	return req.query
}
