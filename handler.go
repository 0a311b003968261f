package antsy

import (
	"fmt"
	"net/http"
	"runtime/debug"
)

// A Handler responds to a request matched to a route.
//
// Handle returning marks the request as finished.
// A non-nil error is a fault confined to this request.
type Handler interface {
	Handle(req *Request, res *Response) error
}

// A HandlerFunc is a Handler that reports how handling went.
type HandlerFunc func(req *Request, res *Response) error

func (fn HandlerFunc) Handle(req *Request, res *Response) error { return fn(req, res) }

// An Action is a Handler that cannot fail.
type Action func(req *Request, res *Response)

func (fn Action) Handle(req *Request, res *Response) error {
	fn(req, res)
	return nil
}

// A FaultFunc decides what happens to a request whose Handler returned an error or panicked.
type FaultFunc func(req *Request, res *Response, err error)

// A PanicError carries the value a Handler panicked with.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string { return fmt.Sprintf("antsy: handler panicked: %v", e.Value) }

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Adapt translates h into an http.Handler.
//
// Each call to the returned http.Handler creates a fresh Request and Response
// and calls h exactly once.
// Errors and panics from h are passed to fault;
// a nil fault uses [InternalServerError].
// A panic with [http.ErrAbortHandler] is not recovered.
func Adapt(h Handler, fault FaultFunc) http.Handler {
	if fault == nil {
		fault = InternalServerError
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, res := NewRequest(r), NewResponse(w)

		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}

			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			fault(req, res, &PanicError{Value: rvr, Stack: debug.Stack()})
		}()

		if err := h.Handle(req, res); err != nil {
			fault(req, res, err)
			return
		}

		res.Commit()
	})
}

// InternalServerError responds with 500 if nothing has been sent yet.
func InternalServerError(_ *Request, res *Response, _ error) {
	if res.Written() {
		return
	}

	res.Status(http.StatusInternalServerError)
	res.SetHeader("Content-Type", "text/plain; charset=utf-8")
	res.WriteString(http.StatusText(http.StatusInternalServerError))
}
