package handler

import (
	"net/http"

	"github.com/xy-planning-network/hackathons"
	"github.com/xy-planning-network/hackathons/auth"
	"github.com/xy-planning-network/hackathons/hackathon"
	"github.com/xy-planning-network/hackathons/http/resp"
	"github.com/xy-planning-network/hackathons/nav"
)

// A Handler holds what the front's handlers share.
type Handler struct {
	auth auth.Authenticator
	d    *resp.Responder
	reg  *hackathon.Registry
}

// New constructs a *Handler.
//
// a logs sessions in and out with the backend.
// reg is told when a session's token changes; it may be nil.
func New(d *resp.Responder, a auth.Authenticator, reg *hackathon.Registry) *Handler {
	if d == nil {
		d = resp.NewResponder()
	}

	return &Handler{auth: a, d: d, reg: reg}
}

// A ViewSelection is what a navigation request is answered with.
type ViewSelection struct {
	Name   string            `json:"name"`
	View   nav.View          `json:"view"`
	Params map[string]string `json:"params"`
}

// Nav answers with the view the nav.Resolution stored under hackathons.RouteKey selects.
func (h *Handler) Nav(w http.ResponseWriter, r *http.Request) {
	res, ok := r.Context().Value(hackathons.RouteKey).(nav.Resolution)
	if !ok || res.IsZero() {
		h.d.Err(w, r, ErrNoRoute)
		return
	}

	params := res.Params
	if params == nil {
		params = make(map[string]string)
	}

	sel := ViewSelection{Name: res.Descriptor.Name, View: res.Descriptor.View, Params: params}
	if err := h.d.Json(w, r, resp.Data(sel)); err != nil {
		h.d.Err(w, r, err)
	}
}

// store fetches the *hackathon.Store stored under hackathons.StoreKey.
func (h *Handler) store(r *http.Request) (*hackathon.Store, error) {
	s, ok := r.Context().Value(hackathons.StoreKey).(*hackathon.Store)
	if !ok || s == nil {
		return nil, ErrNoStore
	}

	return s, nil
}
