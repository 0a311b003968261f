package router_test

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/antsy"
	"github.com/xy-planning-network/antsy/http/router"
)

func TestNewMount(t *testing.T) {
	for _, tc := range []struct {
		prefix   string
		expected string
	}{
		{"/static", "/static"},
		{"static/", "/static"},
		{"/static/css/", "/static/css"},
		{"/", ""},
		{"", ""},
	} {
		t.Run(tc.prefix, func(t *testing.T) {
			// Act
			m, err := router.NewMount(tc.prefix, "public")

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.expected, m.Prefix)
			require.Equal(t, "public", m.Dir)
		})
	}

	// Act
	_, err := router.NewMount("/static", " ")

	// Assert
	require.ErrorIs(t, err, antsy.ErrEmptyPath)
}

func TestMountRoot(t *testing.T) {
	// Arrange
	abs := t.TempDir()
	root := t.TempDir()

	// Act + Assert
	require.Equal(t, abs, router.Mount{Prefix: "/a", Dir: abs}.Root(root))
	require.Equal(t, root+"/public", router.Mount{Prefix: "/a", Dir: "public"}.Root(root))
}

func TestRouterStaticFiles(t *testing.T) {
	// Arrange
	root := t.TempDir()
	writeFile(t, root, "public/site.css", "body{}")
	writeFile(t, root, "public/nested/app.js", "let a")
	writeFile(t, root, "public/index.html", "<p>index</p>")

	var routed int
	r := router.New()
	require.Nil(t, r.Mount("/static", "public"))
	require.Nil(t, r.Handle(router.Route{Path: "/static/missing.css", Method: http.MethodGet, Handler: reply("routed", &routed)}))
	require.Nil(t, r.Handle(router.Route{Path: "/static/site.css", Method: http.MethodPost, Handler: reply("posted", &routed)}))
	h, err := r.Build(root)
	require.Nil(t, err)

	for _, tc := range []struct {
		name   string
		method string
		target string
		status int
		body   string
	}{
		{"File", http.MethodGet, "/static/site.css", http.StatusOK, "body{}"},
		{"Nested-File", http.MethodGet, "/static/nested/app.js", http.StatusOK, "let a"},
		{"Index-File", http.MethodGet, "/static/index.html", http.StatusOK, "<p>index</p>"},
		{"Head", http.MethodHead, "/static/site.css", http.StatusOK, ""},
		{"Missing-Falls-Through-To-Route", http.MethodGet, "/static/missing.css", http.StatusOK, "routed"},
		{"Missing-Falls-Through-To-Not-Found", http.MethodGet, "/static/gone.css", http.StatusNotFound, "Not Found\n"},
		{"Directory-Falls-Through", http.MethodGet, "/static/nested", http.StatusNotFound, "Not Found\n"},
		{"Prefix-Only", http.MethodGet, "/static", http.StatusNotFound, "Not Found\n"},
		{"Not-A-Segment-Match", http.MethodGet, "/statics/site.css", http.StatusNotFound, "Not Found\n"},
		{"Escape", http.MethodGet, "/static/../public/site.css", http.StatusMovedPermanently, ""},
		{"Post-Falls-Through", http.MethodPost, "/static/site.css", http.StatusOK, "posted"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			w := serve(t, h, tc.method, tc.target)

			// Assert
			require.Equal(t, tc.status, w.Code)
			if tc.status != http.StatusMovedPermanently {
				require.Equal(t, tc.body, w.Body.String())
			}
		})
	}
}

func TestRouterStaticFilesOrder(t *testing.T) {
	// Arrange
	root := t.TempDir()
	writeFile(t, root, "first/shared.txt", "first")
	writeFile(t, root, "second/shared.txt", "second")
	writeFile(t, root, "second/only.txt", "only second")

	r := router.New()
	require.Nil(t, r.Mount("/files", "first"))
	require.Nil(t, r.Mount("/files", "second"))
	h, err := r.Build(root)
	require.Nil(t, err)

	// Act + Assert
	require.Equal(t, "first", serve(t, h, http.MethodGet, "/files/shared.txt").Body.String())
	require.Equal(t, "only second", serve(t, h, http.MethodGet, "/files/only.txt").Body.String())
	require.Len(t, r.Mounts(), 2)
}

func TestRouterStaticFilesBehindMiddleware(t *testing.T) {
	// Arrange
	root := t.TempDir()
	writeFile(t, root, "public/secret.txt", "secret")

	var seen []string
	r := router.New()
	require.Nil(t, r.Mount("/", "public"))
	r.Use(func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = append(seen, r.URL.Path)
			if r.URL.Query().Get("key") != "open" {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			h.ServeHTTP(w, r)
		})
	})
	h, err := r.Build(root)
	require.Nil(t, err)

	// Act
	vetoed := serve(t, h, http.MethodGet, "/secret.txt")
	allowed := serve(t, h, http.MethodGet, "/secret.txt?key=open")

	// Assert
	require.Equal(t, http.StatusForbidden, vetoed.Code)
	require.Equal(t, http.StatusOK, allowed.Code)
	require.Equal(t, "secret", allowed.Body.String())
	require.Equal(t, []string{"/secret.txt", "/secret.txt"}, seen)
}

func TestRouterMountErrors(t *testing.T) {
	// Act
	err := router.New().Mount("/static", "")

	// Assert
	require.ErrorIs(t, err, antsy.ErrEmptyPath)
}

func TestBuildRelativeContentRoot(t *testing.T) {
	// Arrange
	base, elsewhere := t.TempDir(), t.TempDir()
	writeFile(t, filepath.Join(base, "site", "public"), "a.txt", "a")

	wd, err := os.Getwd()
	require.Nil(t, err)
	t.Cleanup(func() { require.Nil(t, os.Chdir(wd)) })
	require.Nil(t, os.Chdir(base))

	r := router.New()
	require.Nil(t, r.Mount("/f", "public"))
	h, err := r.Build("site")
	require.Nil(t, err)

	// Act
	before := serve(t, h, http.MethodGet, "/f/a.txt")
	require.Nil(t, os.Chdir(elsewhere))
	after := serve(t, h, http.MethodGet, "/f/a.txt")

	// Assert
	require.Equal(t, http.StatusOK, before.Code)
	require.Equal(t, "a", before.Body.String())
	require.Equal(t, http.StatusOK, after.Code)
	require.Equal(t, "a", after.Body.String())
}
