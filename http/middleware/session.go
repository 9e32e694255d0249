package middleware

import (
	"context"
	"net/http"

	"github.com/xy-planning-network/hackathons"
	"github.com/xy-planning-network/hackathons/http/session"
)

// InjectSession stores the session associated with the *http.Request in *http.Request.Context
// under hackathons.SessionKey.
//
// If store is nil, NoopAdapter returns and this middleware does nothing.
func InjectSession(store session.SessionStorer) Adapter {
	if store == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, _ := store.GetSession(r)
			h.ServeHTTP(w, r.WithContext(withValue(r, hackathons.SessionKey, s)))
		})
	}
}

func withValue(r *http.Request, key hackathons.Key, val any) context.Context {
	return context.WithValue(r.Context(), key, val)
}
