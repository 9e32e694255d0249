package auth

import (
	"errors"
	"log/slog"

	"github.com/xy-planning-network/hackathons"
)

// A Token is the opaque credential the backend issues on login.
type Token string

// String implements fmt.Stringer.
func (t Token) String() string { return string(t) }

// LogValue masks the Token.
//
// LogValue implements [log/slog.LogValuer].
func (t Token) LogValue() slog.Value { return hackathons.MaskedLogValue }

// A Session is the authentication state of a single client: an optional Token.
//
// The zero value is an anonymous Session.
type Session struct {
	token Token
	ok    bool
}

// Anonymous returns a Session with no Token.
func Anonymous() Session { return Session{} }

// NewSession returns a Session holding token.
// An empty token yields an anonymous Session.
func NewSession(token Token) Session {
	if token == "" {
		return Session{}
	}

	return Session{token: token, ok: true}
}

// SessionFrom loads the Token held by store into a Session.
// A store holding nothing yields an anonymous Session and no error.
func SessionFrom(store TokenStore) (Session, error) {
	token, err := store.LoadToken()
	if errors.Is(err, ErrNoToken) {
		return Anonymous(), nil
	}

	if err != nil {
		return Anonymous(), err
	}

	return NewSession(token), nil
}

// Token returns the Session's Token and whether one is present.
func (s Session) Token() (Token, bool) { return s.token, s.ok }

// Authenticated asserts whether v accepts the Session.
// A nil Validator behaves as PresenceValidator.
func (s Session) Authenticated(v Validator) bool {
	if v == nil {
		v = PresenceValidator{}
	}

	return v.Validate(s) == nil
}

// LogValue implements [log/slog.LogValuer].
func (s Session) LogValue() slog.Value {
	if !s.ok {
		return slog.GroupValue(slog.Bool("authenticated", false))
	}

	return slog.GroupValue(slog.Bool("authenticated", true), slog.Any("token", s.token))
}

// A Validator decides whether a Session is authenticated.
// It returns nil to accept the Session.
type Validator interface {
	Validate(s Session) error
}

// A ValidatorFunc adapts a function into a Validator.
type ValidatorFunc func(Session) error

// Validate implements Validator.
func (fn ValidatorFunc) Validate(s Session) error { return fn(s) }

// PresenceValidator accepts any Session holding a Token.
type PresenceValidator struct{}

// Validate implements Validator.
func (PresenceValidator) Validate(s Session) error {
	if !s.ok {
		return ErrNoToken
	}

	return nil
}
