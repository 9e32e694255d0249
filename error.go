package hackathons

import "errors"

var (
	// ErrBadConfig reports configuration a hackathons app cannot start with.
	ErrBadConfig = errors.New("bad config")

	// ErrNotValid reports a value outside what it is allowed to be.
	ErrNotValid = errors.New("invalid")
)
