package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Frontend serves the prebuilt bundle from dir. Unknown paths fall back to
// the entry document so client-side routing works. API paths are never
// served from disk: anything under /api/ that reached this handler gets a
// JSON 404.
func Frontend(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/")
		if path == "api" || strings.HasPrefix(path, "api/") {
			writeError(w, http.StatusNotFound, "not found")
			return
		}

		if path != "" {
			full := filepath.Join(dir, filepath.Clean("/"+path))
			if info, err := os.Stat(full); err == nil && !info.IsDir() {
				http.ServeFile(w, r, full)
				return
			}
		}

		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	}
}

// APINotFound is the mux fallback for /api/ paths with no registered route.
func APINotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}
