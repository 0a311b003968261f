package antsy_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/antsy"
)

type ctxKey struct{}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestRequestInputs(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "/things/a%20b?page=2&tag=x&tag=y", nil)
	r.Header.Add("Accept", "text/plain")
	r.Header.Add("Accept", "application/json")
	r = r.WithContext(context.WithValue(r.Context(), ctxKey{}, "val"))

	// Act
	req := antsy.NewRequest(r)

	// Assert
	require.Equal(t, http.MethodGet, req.Method())
	require.Equal(t, "/things/a b", req.Path())
	require.Equal(t, "2", req.Query("page"))
	require.Equal(t, "", req.Query("missing"))
	require.Equal(t, []string{"x", "y"}, req.QueryValues("tag"))
	require.Nil(t, req.QueryValues("missing"))
	require.Equal(t, "text/plain", req.Header("accept"))
	require.Equal(t, []string{"text/plain", "application/json"}, req.HeaderValues("Accept"))
	require.Nil(t, req.HeaderValues("Missing"))
	require.Equal(t, "val", req.Context().Value(ctxKey{}))
	require.Same(t, r, req.Raw())

	// Act + Assert
	for i := 0; i < 3; i++ {
		require.Equal(t, "2", req.Query("page"))
		require.Equal(t, "text/plain", req.Header("Accept"))
	}
}

func TestRequestParams(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	// Act
	req := antsy.NewRequest(r)

	// Assert
	require.Equal(t, "", req.Param("id"))
	require.Equal(t, map[string]string{}, req.Params())

	// Arrange
	r = mux.SetURLVars(r, map[string]string{"id": "7"})

	// Act
	req = antsy.NewRequest(r)

	// Assert
	require.Equal(t, "7", req.Param("id"))
	require.Equal(t, "7", req.Param("id"))
	require.Equal(t, "", req.Param("missing"))
	require.Equal(t, map[string]string{"id": "7"}, req.Params())
}

func TestRequestText(t *testing.T) {
	// Arrange
	req := antsy.NewRequest(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("hello")))

	// Act
	actual, err := req.Text()

	// Assert
	require.Nil(t, err)
	require.Equal(t, "hello", actual)

	// Act
	actual, err = req.Text()

	// Assert
	require.Nil(t, err)
	require.Equal(t, "", actual)

	// Arrange
	req = antsy.NewRequest(&http.Request{Method: http.MethodGet})

	// Act
	actual, err = req.Text()

	// Assert
	require.Nil(t, err)
	require.Equal(t, "", actual)

	// Arrange
	req = antsy.NewRequest(httptest.NewRequest(http.MethodPost, "/", errReader{}))

	// Act
	_, err = req.Text()

	// Assert
	require.NotNil(t, err)
}

func TestRequestDecodeJSON(t *testing.T) {
	for _, tc := range []struct {
		name     string
		body     string
		expected map[string]int
		err      error
	}{
		{"Object", `{"a":1}`, map[string]int{"a": 1}, nil},
		{"Empty", "", nil, antsy.ErrNotValid},
		{"Malformed", `{"a":`, nil, antsy.ErrNotValid},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			req := antsy.NewRequest(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body)))
			var actual map[string]int

			// Act
			err := req.DecodeJSON(&actual)

			// Assert
			require.ErrorIs(t, err, tc.err)
			require.Equal(t, tc.expected, actual)
		})
	}
}
