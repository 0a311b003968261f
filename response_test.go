package antsy_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/antsy"
)

func TestResponseStatus(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	res := antsy.NewResponse(w)

	// Assert
	require.Equal(t, http.StatusOK, res.StatusCode())
	require.False(t, res.Written())

	// Act
	res.Status(http.StatusCreated).SetHeader("X-Thing", "a").AddHeader("X-Thing", "b")

	// Assert
	require.Equal(t, http.StatusCreated, res.StatusCode())
	require.False(t, res.Written())
	require.False(t, w.Flushed)
	require.Equal(t, []string{"a", "b"}, res.Header().Values("X-Thing"))

	// Act
	res.Commit()
	res.Status(http.StatusTeapot)
	res.Commit()

	// Assert
	require.True(t, res.Written())
	require.Equal(t, http.StatusCreated, w.Code)
	unwrapper, ok := res.Raw().(interface{ Unwrap() http.ResponseWriter })
	require.True(t, ok)
	require.Same(t, w, unwrapper.Unwrap())
}

func TestResponseRaw(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	res := antsy.NewResponse(w)
	res.Status(http.StatusCreated)

	// Act
	_, err := res.Raw().Write([]byte("made"))

	// Assert
	require.Nil(t, err)
	require.True(t, res.Written())
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "made", w.Body.String())

	// Arrange
	w = httptest.NewRecorder()
	res = antsy.NewResponse(w)
	res.Status(http.StatusCreated)

	// Act
	res.Raw().WriteHeader(http.StatusAccepted)
	res.Status(http.StatusTeapot)
	res.Commit()

	// Assert
	require.True(t, res.Written())
	require.Equal(t, http.StatusAccepted, w.Code)
	require.Equal(t, http.StatusAccepted, res.StatusCode())
}

func TestResponseWrite(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	res := antsy.NewResponse(w)

	// Act
	res.Status(http.StatusAccepted)
	n, err := res.WriteString("hello, ")
	require.Nil(t, err)
	m, err := res.Writer().Write([]byte("world"))
	require.Nil(t, err)
	res.Flush()

	// Assert
	require.Equal(t, 12, n+m)
	require.True(t, res.Written())
	require.True(t, w.Flushed)
	require.Equal(t, http.StatusAccepted, w.Code)
	require.Equal(t, "hello, world", w.Body.String())
}

func TestResponseJSON(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	res := antsy.NewResponse(w)

	// Act
	err := res.JSON(http.StatusCreated, map[string]string{"a": "b"})

	// Assert
	require.Nil(t, err)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.JSONEq(t, `{"a":"b"}`, w.Body.String())

	// Arrange
	w = httptest.NewRecorder()
	res = antsy.NewResponse(w)

	// Act
	err = res.JSON(http.StatusOK, make(chan int))

	// Assert
	require.NotNil(t, err)
	require.False(t, res.Written())
}
