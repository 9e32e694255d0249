package middleware

import (
	"net/http"
	"strings"

	"github.com/xy-planning-network/hackathons"
)

// ForceHTTPS permanently redirects requests made over plain HTTP to HTTPS,
// except in development.
//
// The front runs behind a TLS-terminating proxy,
// so the scheme the client used is read from "X-Forwarded-Proto"
// or the "proto" parameter of "Forwarded" (RFC 7239).
// A request reaching the front over TLS directly passes as well.
func ForceHTTPS(env hackathons.Environment) Adapter {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if env.IsDevelopment() || viaHTTPS(r) {
				handler.ServeHTTP(w, r)
				return
			}

			u := *r.URL
			u.Scheme = "https"
			u.Host = r.Host

			http.Redirect(w, r, u.String(), http.StatusPermanentRedirect)
		})
	}
}

// viaHTTPS asserts whether the client reached the front, or its first proxy, over HTTPS.
func viaHTTPS(r *http.Request) bool {
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		return true
	}

	// Only the first element of Forwarded describes the client's hop.
	first, _, _ := strings.Cut(r.Header.Get("Forwarded"), ",")
	for _, pair := range strings.Split(first, ";") {
		k, v, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if ok && strings.EqualFold(k, "proto") {
			return strings.EqualFold(strings.Trim(v, `"`), "https")
		}
	}

	return false
}
