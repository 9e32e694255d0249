package domain

import (
	"encoding/json"
	"strconv"
)

// An ID identifies a Hackathon on the backend.
type ID int64

// ParseID converts the string form of an ID, as bound from a path parameter.
func ParseID(s string) (ID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}

	return ID(id), nil
}

// String implements fmt.Stringer.
func (id ID) String() string { return strconv.FormatInt(int64(id), 10) }

// A Hackathon is an event listing as returned by the backend.
//
// Only ID is read out of it. The backend owns the shape of everything else,
// so Raw keeps the record exactly as received and is what encodes back out.
// Nothing here is validated client-side.
type Hackathon struct {
	ID  ID
	Raw json.RawMessage
}

type hackathonID struct {
	ID ID `json:"id"`
}

// UnmarshalJSON implements [encoding/json.Unmarshaler].
//
// A record whose "id" is not an integer returns an error;
// every other field, whatever its form, is kept in Raw.
func (h *Hackathon) UnmarshalJSON(b []byte) error {
	var head hackathonID
	if err := json.Unmarshal(b, &head); err != nil {
		return err
	}

	h.ID = head.ID
	h.Raw = append(json.RawMessage(nil), b...)

	return nil
}

// MarshalJSON implements [encoding/json.Marshaler].
// Without Raw, only the ID is encoded.
func (h Hackathon) MarshalJSON() ([]byte, error) {
	if len(h.Raw) == 0 {
		return json.Marshal(hackathonID{ID: h.ID})
	}

	return h.Raw, nil
}

// Clone returns a copy of h sharing no memory with it.
func (h Hackathon) Clone() Hackathon {
	if h.Raw != nil {
		h.Raw = append(json.RawMessage(nil), h.Raw...)
	}

	return h
}

// A Form is the payload sent when creating or partially updating a Hackathon.
// Its keys are passed to the backend untouched.
type Form map[string]any
