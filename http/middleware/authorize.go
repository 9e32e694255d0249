package middleware

import (
	"net/http"

	"github.com/xy-planning-network/hackathons"
	"github.com/xy-planning-network/hackathons/auth"
	"github.com/xy-planning-network/hackathons/http/resp"
	"github.com/xy-planning-network/hackathons/http/session"
	"github.com/xy-planning-network/hackathons/nav"
)

// RequireAuthed passes the request to the next handler only when
// the session.Session stored under hackathons.SessionKey is authenticated according to v.
// A nil v checks a token is present.
//
// Otherwise, RequireAuthed takes one of two actions
// depending on the "Accept" HTTP header of the request.
//   - By default, RequireAuthed writes 401.
//   - If "text/html" appears first in the "Accept" header, though,
//     RequireAuthed redirects to loginUrl.
func RequireAuthed(d *resp.Responder, loginUrl string, v auth.Validator) Adapter {
	if d == nil {
		d = resp.NewResponder()
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if currentAuth(r).Authenticated(v) {
				handler.ServeHTTP(w, r)
				return
			}

			deny(d, w, r, loginUrl)
		})
	}
}

// GuardNav resolves the request's path against t and lets g decide whether it may be shown.
//
// An unmatched path is answered with 404.
// A redirect is answered as RequireAuthed answers unauthenticated requests,
// and the path originally requested is not remembered.
//
// When g lets the request through, its nav.Resolution is stored under hackathons.RouteKey.
// The Referer, if it resolves, is handed to g as the route navigated from.
func GuardNav(d *resp.Responder, t *nav.Table, g nav.Guard) Adapter {
	if d == nil {
		d = resp.NewResponder()
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			to, err := t.Resolve(r.URL.Path)
			if err != nil {
				d.Err(w, r, err, resp.Code(http.StatusNotFound))
				return
			}

			var from nav.Resolution
			if ref, err := r.URL.Parse(r.Referer()); err == nil && ref.Host == r.Host {
				from, _ = t.Resolve(ref.Path)
			}

			if dec := g.Check(to, from, currentAuth(r)); !dec.Proceeds() {
				deny(d, w, r, dec.RedirectTo)
				return
			}

			handler.ServeHTTP(w, r.WithContext(withValue(r, hackathons.RouteKey, to)))
		})
	}
}

// currentAuth reads the authentication state out of the session stored in the request's context.
func currentAuth(r *http.Request) auth.Session {
	s, ok := r.Context().Value(hackathons.SessionKey).(session.Session)
	if !ok {
		return auth.Anonymous()
	}

	return s.Auth()
}

func deny(d *resp.Responder, w http.ResponseWriter, r *http.Request, loginUrl string) {
	if !acceptsTextHtml(r.Header) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if err := d.Redirect(w, r, resp.Url(loginUrl), resp.Code(http.StatusTemporaryRedirect)); err != nil {
		d.Err(w, r, err)
	}
}
