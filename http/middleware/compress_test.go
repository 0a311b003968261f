package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/antsy/http/middleware"
)

func TestCompress(t *testing.T) {
	// Arrange
	body := strings.Repeat("antsy ", 100)
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})

	for _, tc := range []struct {
		name     string
		encoding string
	}{
		{"Gzip", "gzip"},
		{"Identity", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.encoding != "" {
				r.Header.Set("Accept-Encoding", tc.encoding)
			}

			// Act
			middleware.Compress()(h).ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.encoding, w.Header().Get("Content-Encoding"))
			if tc.encoding == "" {
				require.Equal(t, body, w.Body.String())
			} else {
				require.Less(t, w.Body.Len(), len(body))
			}
		})
	}
}
