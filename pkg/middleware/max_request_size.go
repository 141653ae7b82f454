package middleware

import "net/http"

// MaxRequestSize caps the request body; oversized bodies fail the JSON decode
// in the handler with a clear error instead of exhausting memory.
func MaxRequestSize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
