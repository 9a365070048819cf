package middleware

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/2beens/fitquest/pkg"

	log "github.com/sirupsen/logrus"
)

// LimitAndDrainBody caps the request body at maxBytes. Bodies declared larger are
// rejected before the handler runs; whatever a handler leaves unread is drained up
// to the cap so the connection can be reused.
func LimitAndDrainBody(maxBytes int64) func(next http.Handler) http.Handler {
	tooLarge, _ := json.Marshal(pkg.Envelope{Error: "request body too large"})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody || maxBytes <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			if r.ContentLength > maxBytes {
				log.Warnf("request body of %d bytes rejected for [%s %s]", r.ContentLength, r.Method, r.URL.Path)
				pkg.WriteResponseBytes(w, pkg.ContentType.JSON, tooLarge, http.StatusRequestEntityTooLarge)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)

			_, _ = io.CopyN(io.Discard, r.Body, maxBytes)
			_ = r.Body.Close()
		})
	}
}
