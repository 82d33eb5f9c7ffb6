package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-silk-reader/internal/logger"
	"github.com/MKhiriev/go-silk-reader/internal/utils"
)

const hashHeader = "HashSHA256"

// withHashCheck verifies the HMAC-SHA256 of the request body against the
// HashSHA256 header. It is a no-op when no hash key is configured.
func (h *Handler) withHashCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hashKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)
		log.Debug().Str("func", "*Handler.withHashCheck").Msg("checking hash begins")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.writeError(w, r, "*Handler.withHashCheck", err)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		hashFromRequest := r.Header.Get(hashHeader)
		if !utils.VerifyHash(body, hashFromRequest) {
			log.Error().Str("func", "*Handler.withHashCheck").
				Str("hash from request", hashFromRequest).
				Msg("hashes are not equal")
			h.writeError(w, r, "*Handler.withHashCheck", ErrIntegrityCheckFailed)
			return
		}

		next.ServeHTTP(w, r)
	})
}
