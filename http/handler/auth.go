package handler

import (
	"net/http"
	"strings"

	"github.com/xy-planning-network/hackathons/auth"
	"github.com/xy-planning-network/hackathons/http/req"
	"github.com/xy-planning-network/hackathons/http/resp"
)

// Credentials are what a session logs in with.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// credentials reads Credentials from a form-encoded or JSON request body.
func credentials(r *http.Request) (Credentials, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return Credentials{}, err
		}

		return Credentials{Username: r.PostForm.Get("username"), Password: r.PostForm.Get("password")}, nil
	}

	var c Credentials
	if err := req.ParseBody(r.Body, &c); err != nil {
		return Credentials{}, err
	}

	return c, nil
}

// Login exchanges the credentials in the request body for a token
// and keeps it in the session.
// The session's cache is dropped, since it was filled under the prior token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	s, err := h.d.Session(r.Context())
	if err != nil {
		h.d.Err(w, r, err)
		return
	}

	c, err := credentials(r)
	if err != nil {
		h.d.Err(w, r, err, resp.Code(http.StatusBadRequest))
		return
	}

	if _, err := auth.Login(r.Context(), h.auth, s.TokenStore(w, r), c.Username, c.Password); err != nil {
		h.fail(w, r, err)
		return
	}

	h.evict(s.ID())

	if err := h.d.Json(w, r, resp.Data(map[string]bool{"authenticated": true})); err != nil {
		h.d.Err(w, r, err)
	}
}

// Logout revokes the session's token and forgets it.
// The token is forgotten even when the backend fails revoking it.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	s, err := h.d.Session(r.Context())
	if err != nil {
		h.d.Err(w, r, err)
		return
	}

	err = auth.Logout(r.Context(), h.auth, s.TokenStore(w, r))
	h.evict(s.ID())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) evict(id string, ok bool) {
	if h.reg == nil || !ok {
		return
	}

	h.reg.Evict(id)
}
