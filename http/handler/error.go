package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/hackathons/api"
	"github.com/xy-planning-network/hackathons/auth"
	"github.com/xy-planning-network/hackathons/http/req"
	"github.com/xy-planning-network/hackathons/http/resp"
)

var (
	ErrNoRoute = errors.New("no route")
	ErrNoStore = errors.New("no store")
)

// statusOf picks the response status code err warrants.
//
// A status the backend answered with is passed along as-is.
func statusOf(err error) int {
	var se *api.ServerError
	var ne *api.NetworkError

	switch {
	case errors.As(err, &se):
		return se.StatusCode
	case errors.As(err, &ne) && errors.Is(ne, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &ne):
		return http.StatusBadGateway
	case errors.Is(err, api.ErrDecode), errors.Is(err, auth.ErrNotValid):
		return http.StatusBadGateway
	case errors.Is(err, auth.ErrNoToken):
		return http.StatusUnauthorized
	case errors.Is(err, req.ErrBadFormat), errors.Is(err, req.ErrNoParam):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail responds with the status code err warrants.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := statusOf(err)
	if code < http.StatusBadRequest {
		err = fmt.Errorf("%w: backend answered %d", err, code)
		code = http.StatusBadGateway
	}

	h.d.Err(w, r, err, resp.Code(code))
}
