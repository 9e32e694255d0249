package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/xy-planning-network/hackathons"
)

// RequestIDHeader carries the ID of a request across services.
const RequestIDHeader = "X-Request-ID"

// RequestID adds a uuid to the request context under hackathons.RequestIDKey
// and echoes it in the response's headers.
//
// A valid uuid in the incoming RequestIDHeader is kept.
func RequestID() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}

			w.Header().Set(RequestIDHeader, id)
			h.ServeHTTP(w, r.WithContext(withValue(r, hackathons.RequestIDKey, id)))
		})
	}
}
