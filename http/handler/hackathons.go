package handler

import (
	"net/http"

	"github.com/xy-planning-network/hackathons/domain"
	"github.com/xy-planning-network/hackathons/http/req"
	"github.com/xy-planning-network/hackathons/http/resp"
)

// ListHackathons refreshes the session's collection and answers with it.
func (h *Handler) ListHackathons(w http.ResponseWriter, r *http.Request) {
	s, err := h.store(r)
	if err != nil {
		h.d.Err(w, r, err)
		return
	}

	if err := s.List(r.Context()); err != nil {
		h.fail(w, r, err)
		return
	}

	h.collection(w, r, http.StatusOK)
}

// CreateHackathon submits the JSON object in the request body
// and answers with the refreshed collection.
func (h *Handler) CreateHackathon(w http.ResponseWriter, r *http.Request) {
	s, err := h.store(r)
	if err != nil {
		h.d.Err(w, r, err)
		return
	}

	form, err := req.ParseForm(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := s.Create(r.Context(), form); err != nil {
		h.fail(w, r, err)
		return
	}

	h.collection(w, r, http.StatusCreated)
}

// ViewHackathon fetches the Hackathon identified in the path and answers with it.
func (h *Handler) ViewHackathon(w http.ResponseWriter, r *http.Request) {
	s, err := h.store(r)
	if err != nil {
		h.d.Err(w, r, err)
		return
	}

	id, err := req.ParseID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := s.View(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}

	hack, _ := s.Hackathon()
	if err := h.d.Json(w, r, resp.Data(hack)); err != nil {
		h.d.Err(w, r, err)
	}
}

// UpdateHackathon submits the JSON object in the request body
// as a partial update to the Hackathon identified in the path.
// Nothing is refreshed, so nothing is answered with.
func (h *Handler) UpdateHackathon(w http.ResponseWriter, r *http.Request) {
	s, err := h.store(r)
	if err != nil {
		h.d.Err(w, r, err)
		return
	}

	id, err := req.ParseID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	form, err := req.ParseForm(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := s.Update(r.Context(), id, form); err != nil {
		h.fail(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteHackathon deletes the Hackathon identified in the path.
// The session's cache keeps it until the next refresh.
func (h *Handler) DeleteHackathon(w http.ResponseWriter, r *http.Request) {
	s, err := h.store(r)
	if err != nil {
		h.d.Err(w, r, err)
		return
	}

	id, err := req.ParseID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := s.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// collection answers with the session's cached collection.
func (h *Handler) collection(w http.ResponseWriter, r *http.Request, code int) {
	s, _ := h.store(r)
	hs, ok := s.Hackathons()
	if !ok {
		hs = []domain.Hackathon{}
	}

	if err := h.d.Json(w, r, resp.Code(code), resp.Data(hs)); err != nil {
		h.d.Err(w, r, err)
	}
}
