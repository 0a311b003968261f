package antsy

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

var _ io.Writer = (*Response)(nil)

// A Response writes the outputs of an HTTP exchange to an http.ResponseWriter.
//
// The status code and headers may be changed until the first byte of the body is written
// or the Response is flushed or committed.
// After that, changes to either are dropped by net/http.
type Response struct {
	w       http.ResponseWriter
	status  int
	written bool
}

// NewResponse wraps w.
func NewResponse(w http.ResponseWriter) *Response {
	return &Response{w: w}
}

// Status sets the status code to be sent.
// Once the status is sent, Status does nothing.
func (res *Response) Status(code int) *Response {
	if !res.written {
		res.status = code
	}

	return res
}

// StatusCode returns the status code sent or to be sent.
func (res *Response) StatusCode() int {
	if res.status == 0 {
		return http.StatusOK
	}

	return res.status
}

// Header exposes the response headers.
func (res *Response) Header() http.Header { return res.w.Header() }

// SetHeader replaces any values for key with value.
func (res *Response) SetHeader(key, value string) *Response {
	res.w.Header().Set(key, value)
	return res
}

// AddHeader appends value to the values for key.
func (res *Response) AddHeader(key, value string) *Response {
	res.w.Header().Add(key, value)
	return res
}

// Write writes b to the body, committing the status and headers first.
func (res *Response) Write(b []byte) (int, error) {
	res.Commit()
	return res.w.Write(b)
}

// WriteString writes s to the body, committing the status and headers first.
func (res *Response) WriteString(s string) (int, error) {
	res.Commit()
	return io.WriteString(res.w, s)
}

// Writer returns an io.Writer for streaming the body.
// Pair it with Flush to push partial content to the client.
func (res *Response) Writer() io.Writer { return res }

// Flush sends any buffered body content to the client.
func (res *Response) Flush() {
	res.Commit()
	if f, ok := res.w.(http.Flusher); ok {
		f.Flush()
	}
}

// JSON sets the status code and Content-Type then encodes v as the body.
func (res *Response) JSON(code int, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("antsy: failed encoding response body: %w", err)
	}

	res.SetHeader("Content-Type", "application/json")
	res.Status(code)
	if _, err := res.Write(b); err != nil {
		return fmt.Errorf("antsy: failed writing response body: %w", err)
	}

	return nil
}

// Commit writes the status code and headers if they have not been written yet.
func (res *Response) Commit() {
	if res.written {
		return
	}

	res.written = true
	res.w.WriteHeader(res.StatusCode())
}

// Written reports whether the status code and headers were sent.
func (res *Response) Written() bool { return res.written }

// Raw exposes the Response as an http.ResponseWriter for APIs expecting one.
//
// Writes through it commit the status set with Status first, as Write does.
// Once anything is written, Status has no effect.
// http.NewResponseController reaches the wrapped writer through its Unwrap method.
func (res *Response) Raw() http.ResponseWriter { return rawWriter{res} }

// rawWriter keeps writes made outside the Response's own methods in step with it.
type rawWriter struct {
	res *Response
}

func (rw rawWriter) Header() http.Header         { return rw.res.w.Header() }
func (rw rawWriter) Write(b []byte) (int, error) { return rw.res.Write(b) }
func (rw rawWriter) Flush()                      { rw.res.Flush() }
func (rw rawWriter) Unwrap() http.ResponseWriter { return rw.res.w }

// WriteHeader sends code unless a status was already sent.
func (rw rawWriter) WriteHeader(code int) {
	if rw.res.written {
		return
	}

	rw.res.Status(code).Commit()
}
