package req

import "errors"

var (
	ErrBadAny    = errors.New("bad any")
	ErrBadFormat = errors.New("bad format")
	ErrNoParam   = errors.New("missing path param")
)
