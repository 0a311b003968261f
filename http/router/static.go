package router

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/xy-planning-network/antsy"
	"github.com/xy-planning-network/antsy/http/middleware"
)

// A Mount serves files found in Dir to requests whose path begins with Prefix.
type Mount struct {
	Prefix string
	Dir    string
}

// NewMount normalizes prefix to begin with "/" and to not end with one.
// The prefix "/" mounts dir at the root.
func NewMount(prefix, dir string) (Mount, error) {
	if strings.TrimSpace(dir) == "" {
		return Mount{}, fmt.Errorf("%w: directory for prefix %q", antsy.ErrEmptyPath, prefix)
	}

	prefix = "/" + strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "/" {
		prefix = ""
	}

	return Mount{Prefix: prefix, Dir: dir}, nil
}

// Root resolves Dir against root unless Dir is absolute.
func (m Mount) Root(root string) string {
	if filepath.IsAbs(m.Dir) {
		return filepath.Clean(m.Dir)
	}

	return filepath.Join(root, m.Dir)
}

// match reports whether path lies under the Mount's Prefix
// and what remains of it once Prefix is removed.
func (m Mount) match(path string) (string, bool) {
	switch {
	case m.Prefix == "":
		return path, true
	case path == m.Prefix:
		return "/", true
	case strings.HasPrefix(path, m.Prefix+"/"):
		return path[len(m.Prefix):], true
	default:
		return "", false
	}
}

// stage constructs the pipeline stage serving files from the Mount's Dir resolved against root.
//
// Only GET and HEAD requests for regular files are served.
// Everything else, including a file that does not exist, goes to the next stage.
func (m Mount) stage(root string) middleware.Adapter {
	dir := http.Dir(m.Root(root))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			name, ok := m.match(r.URL.Path)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			f, fi, ok := openFile(dir, name)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			defer f.Close()

			// NOTE: http.FileServer is avoided here since it redirects
			// directory-like paths such as /index.html instead of falling through.
			http.ServeContent(w, r, fi.Name(), fi.ModTime(), f)
		})
	}
}

// openFile opens name in dir if it is a regular file.
func openFile(dir http.Dir, name string) (http.File, fs.FileInfo, bool) {
	f, err := dir.Open(name)
	if err != nil {
		return nil, nil, false
	}

	fi, err := f.Stat()
	if err != nil || !fi.Mode().IsRegular() {
		f.Close()
		return nil, nil, false
	}

	return f, fi, true
}

// workingDir returns the process's working directory.
var workingDir = os.Getwd

// absPath resolves a content root against the working directory.
var absPath = filepath.Abs
