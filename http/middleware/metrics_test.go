package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/antsy/http/middleware"
)

func TestInstrument(t *testing.T) {
	// Arrange + Act
	actual := middleware.Instrument(nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	// Arrange
	m := middleware.NewMetrics("antsy_test")
	h := middleware.Instrument(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	// Act
	for _, path := range []string{"/", "/", "/missing"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	// Assert
	n, err := testutil.GatherAndCount(m.Registry(), "antsy_test_http_requests_total")
	require.Nil(t, err)
	require.Equal(t, 2, n)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `antsy_test_http_requests_total{method="GET",status="200"} 2`)
	require.Contains(t, w.Body.String(), `antsy_test_http_requests_total{method="GET",status="404"} 1`)
}
