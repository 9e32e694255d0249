package session

import (
	"net/http"

	"github.com/google/uuid"
	gorilla "github.com/gorilla/sessions"
	"github.com/xy-planning-network/hackathons/auth"
)

// keys used internal to Session.
const (
	sessionKey = "hackathons-session"
	idKey      = sessionKey + "-id"
	tokenKey   = sessionKey + "-token"
)

// The Sessionable wraps methods for basic adding values to, deleting, and getting values from a session
// associated with an *http.Request and saving those to the session store.
type Sessionable interface {
	Delete(w http.ResponseWriter, r *http.Request) error
	Get(key string) any
	ResetExpiry(w http.ResponseWriter, r *http.Request) error
	Save(w http.ResponseWriter, r *http.Request) error
	Set(w http.ResponseWriter, r *http.Request, key string, val any) error
}

// The TokenSessionable wraps methods for adding, removing, and retrieving
// the backend's auth.Token from a session.
type TokenSessionable interface {
	Auth() auth.Session
	ClearToken(w http.ResponseWriter, r *http.Request) error
	SetToken(w http.ResponseWriter, r *http.Request, token auth.Token) error
	Token() (auth.Token, error)
}

// A Session provides all functionality for managing a client's session.
//
// Its functionality is implemented by lightly wrapping a gorilla.Session.
type Session struct {
	s *gorilla.Session
}

var (
	_ Sessionable      = Session{}
	_ TokenSessionable = Session{}
)

// NewSession wraps g.
func NewSession(g *gorilla.Session) Session { return Session{s: g} }

// Auth returns the authentication state of the session.
func (s Session) Auth() auth.Session {
	token, err := s.Token()
	if err != nil {
		return auth.Anonymous()
	}

	return auth.NewSession(token)
}

// ClearToken removes the auth.Token from the session.
func (s Session) ClearToken(w http.ResponseWriter, r *http.Request) error {
	delete(s.s.Values, tokenKey)
	return s.Save(w, r)
}

// Delete removes a session by making the MaxAge negative.
func (s Session) Delete(w http.ResponseWriter, r *http.Request) error {
	s.s.Options.MaxAge = -1
	return s.Save(w, r)
}

// EnsureID returns the ID identifying the session, minting and saving one on first use.
func (s Session) EnsureID(w http.ResponseWriter, r *http.Request) (string, error) {
	if id, ok := s.s.Values[idKey].(string); ok && id != "" {
		return id, nil
	}

	id := uuid.NewString()
	if err := s.Set(w, r, idKey, id); err != nil {
		return "", err
	}

	return id, nil
}

// Get retrieves a value from the session according to the key passed in.
func (s Session) Get(key string) any {
	return s.s.Values[key]
}

// ID returns the ID identifying the session, if one was minted.
func (s Session) ID() (string, bool) {
	id, ok := s.s.Values[idKey].(string)
	return id, ok && id != ""
}

// ResetExpiry resets the expiration of the session by saving it.
func (s Session) ResetExpiry(w http.ResponseWriter, r *http.Request) error {
	return s.Save(w, r)
}

// Save wraps gorilla.Session.Save, saving the session in the request.
func (s Session) Save(w http.ResponseWriter, r *http.Request) error { return s.s.Save(r, w) }

// Set stores a value according to the key passed in on the session.
func (s Session) Set(w http.ResponseWriter, r *http.Request, key string, val any) error {
	s.s.Values[key] = val
	return s.Save(w, r)
}

// SetToken stores the auth.Token in the session.
func (s Session) SetToken(w http.ResponseWriter, r *http.Request, token auth.Token) error {
	if token == "" {
		return ErrNotValid
	}

	s.s.Values[tokenKey] = token.String()
	return s.Save(w, r)
}

// Token gets the auth.Token out of the session.
// If none is found, ErrNoToken is returned.
//
// If the value in the session is not a string, ErrNotValid is returned and represents a programming error.
func (s Session) Token() (auth.Token, error) {
	val, ok := s.s.Values[tokenKey]
	if !ok {
		return "", ErrNoToken
	}

	str, ok := val.(string)
	if !ok {
		return "", ErrNotValid
	}

	return auth.Token(str), nil
}

// TokenStore binds s to the request and response being handled
// so it can serve as an auth.TokenStore.
func (s Session) TokenStore(w http.ResponseWriter, r *http.Request) auth.TokenStore {
	return tokenStore{s: s, w: w, r: r}
}

type tokenStore struct {
	s Session
	w http.ResponseWriter
	r *http.Request
}

func (ts tokenStore) ClearToken() error { return ts.s.ClearToken(ts.w, ts.r) }

func (ts tokenStore) LoadToken() (auth.Token, error) {
	token, err := ts.s.Token()
	if err == ErrNoToken {
		return "", auth.ErrNoToken
	}

	return token, err
}

func (ts tokenStore) SaveToken(token auth.Token) error { return ts.s.SetToken(ts.w, ts.r, token) }
