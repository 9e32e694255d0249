package middleware

import (
	"net/http"

	"github.com/xy-planning-network/hackathons"
	"github.com/xy-planning-network/hackathons/hackathon"
	"github.com/xy-planning-network/hackathons/http/resp"
	"github.com/xy-planning-network/hackathons/http/session"
)

// InjectStore stores the *hackathon.Store of the client's session
// in *http.Request.Context under hackathons.StoreKey.
//
// InjectStore requires InjectSession be called before it.
// The session is given an ID the first time through.
//
// If reg is nil, NoopAdapter returns and this middleware does nothing.
func InjectStore(d *resp.Responder, reg *hackathon.Registry) Adapter {
	if reg == nil {
		return NoopAdapter
	}

	if d == nil {
		d = resp.NewResponder()
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := d.Session(r.Context())
			if err != nil {
				d.Err(w, r, err)
				return
			}

			id, err := s.EnsureID(w, r)
			if err != nil {
				d.Err(w, r, err)
				return
			}

			token, err := s.Token()
			if err != nil && err != session.ErrNoToken {
				d.Err(w, r, err)
				return
			}

			store := reg.Store(id, token)
			handler.ServeHTTP(w, r.WithContext(withValue(r, hackathons.StoreKey, store)))
		})
	}
}
