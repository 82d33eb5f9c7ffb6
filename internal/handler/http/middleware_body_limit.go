package http

import "net/http"

// withBodyLimit caps the (already inflated) request body at maxBodySize
// bytes. Reading past the cap fails with *http.MaxBytesError, which the
// error mapper turns into 413.
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.maxBodySize > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
		}
		next.ServeHTTP(w, r)
	})
}
