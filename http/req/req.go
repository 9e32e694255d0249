package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/hackathons/domain"
)

// ParseBody decodes into a pointer the JSON data in body.
//
// ParseBody reads the entire body and it can't be read from again.
// Use a [io.TeeReader] if the body needs to be reused after calling ParseBody.
func ParseBody(body io.Reader, ptr any) error {
	var ourFault *json.InvalidUnmarshalError
	err := json.NewDecoder(body).Decode(ptr)
	if errors.As(err, &ourFault) {
		return fmt.Errorf("hackathons/http/req: %w: ParseBody called with non-pointer: %s", ErrBadAny, err)
	}

	if err != nil {
		return fmt.Errorf("hackathons/http/req: %w: failed decoding request body: %s", ErrBadFormat, err)
	}

	return nil
}

// ParseForm decodes the JSON object in r.Body into a [domain.Form].
// An empty object is a valid Form.
func ParseForm(r *http.Request) (domain.Form, error) {
	form := make(domain.Form)
	if r.Body == nil {
		return nil, fmt.Errorf("hackathons/http/req: %w: no request body", ErrBadFormat)
	}

	if err := ParseBody(r.Body, &form); err != nil {
		return nil, err
	}

	if form == nil {
		return nil, fmt.Errorf("hackathons/http/req: %w: request body is null", ErrBadFormat)
	}

	return form, nil
}

// ParseID reads the path parameter name that gorilla/mux bound on r as a [domain.ID].
func ParseID(r *http.Request, name string) (domain.ID, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, fmt.Errorf("hackathons/http/req: %w: %q", ErrNoParam, name)
	}

	id, err := domain.ParseID(raw)
	if err != nil {
		return 0, fmt.Errorf("hackathons/http/req: %w: %q is not an id: %s", ErrBadFormat, raw, err)
	}

	return id, nil
}
