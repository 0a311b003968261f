package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/antsy/http/middleware"
)

func noopHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
}

// marker records name on the way in and on the way out.
func marker(trace *[]string, name string) middleware.Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*trace = append(*trace, name+"-before")
			h.ServeHTTP(w, r)
			*trace = append(*trace, name+"-after")
		})
	}
}

func TestChain(t *testing.T) {
	// Arrange
	var trace []string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		trace = append(trace, "handler")
	})

	// Act
	middleware.Chain(h, marker(&trace, "m1"), marker(&trace, "m2")).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	// Assert
	require.Equal(t, []string{"m1-before", "m2-before", "handler", "m2-after", "m1-after"}, trace)
}

func TestChainShortCircuit(t *testing.T) {
	// Arrange
	var trace []string
	veto := func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})
	}
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		trace = append(trace, "handler")
	})
	w := httptest.NewRecorder()

	// Act
	middleware.Chain(h, marker(&trace, "m1"), veto, marker(&trace, "m2")).
		ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	// Assert
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, []string{"m1-before", "m1-after"}, trace)
}

func TestChainNone(t *testing.T) {
	// Arrange
	h := noopHandler()

	// Act
	actual := middleware.Chain(h)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", h), fmt.Sprintf("%p", actual))
}

func TestNoopAdapter(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.ToUpper(r.URL.Path)))
	})

	// Act
	middleware.NoopAdapter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/noop", nil))

	// Assert
	require.Equal(t, "/NOOP", w.Body.String())
}
