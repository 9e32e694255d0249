package nav

import "errors"

var (
	ErrDuplicateName = errors.New("duplicate name")
	ErrDuplicatePath = errors.New("duplicate path")
	ErrNotFound      = errors.New("not found")
	ErrNotValid      = errors.New("not valid")
	ErrRedirectLoop  = errors.New("redirect loop")
)
