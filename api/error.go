package api

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrDecode = errors.New("failed decoding response")

// A NetworkError reports a request that was not sent or whose response was not received.
type NetworkError struct {
	Op  string
	URL string
	Err error
}

// Error implements error.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.URL, e.Err)
}

// Unwrap exposes the underlying error, for instance context.DeadlineExceeded.
func (e *NetworkError) Unwrap() error { return e.Err }

// A ServerError reports a response with a status code outside the 2xx range.
type ServerError struct {
	StatusCode int
	Body       []byte
}

// Error implements error.
func (e *ServerError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("server responded %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}

	return fmt.Sprintf("server responded %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

// IsStatus asserts whether err is a *ServerError with the status code.
func IsStatus(err error, code int) bool {
	var se *ServerError
	return errors.As(err, &se) && se.StatusCode == code
}
