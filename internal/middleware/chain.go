package middleware

import (
	"net/http"
	"time"
)

// Chain wraps the handler with the full middleware stack.
// Order: CORS → RequestID → Logging → Recover → MaxBytes → Timeout → mux
func Chain(handler http.Handler) http.Handler {
	h := handler
	h = http.TimeoutHandler(h, 65*time.Second, `{"ok":false,"error":"request timeout"}`)
	h = MaxBytes(64 * 1024)(h)
	h = Recover(h)
	h = Logging(h)
	h = RequestID(h)
	h = CORS(h)
	return h
}

// MaxBytes limits the request body to the specified number of bytes.
func MaxBytes(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
