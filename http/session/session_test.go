package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/hackathons/auth"
	"github.com/xy-planning-network/hackathons/http/session"
)

func TestSessionToken(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	w := httptest.NewRecorder()
	s, err := session.NewStub("").GetSession(r)
	require.Nil(t, err)

	// Act
	_, err = s.Token()

	// Assert
	require.ErrorIs(t, err, session.ErrNoToken)
	require.False(t, s.Auth().Authenticated(nil))

	// Act
	err = s.SetToken(w, r, "")

	// Assert
	require.ErrorIs(t, err, session.ErrNotValid)

	// Act
	require.Nil(t, s.SetToken(w, r, "abc"))
	token, err := s.Token()

	// Assert
	require.Nil(t, err)
	require.Equal(t, auth.Token("abc"), token)
	require.True(t, s.Auth().Authenticated(nil))

	// Act
	require.Nil(t, s.ClearToken(w, r))

	// Assert
	require.False(t, s.Auth().Authenticated(nil))
}

func TestSessionTokenNotValid(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	w := httptest.NewRecorder()
	s, _ := session.NewStub("").GetSession(r)
	require.Nil(t, s.Set(w, r, "hackathons-session-token", 7))

	// Act
	_, err := s.Token()

	// Assert
	require.ErrorIs(t, err, session.ErrNotValid)
}

func TestSessionEnsureID(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	w := httptest.NewRecorder()
	s, _ := session.NewStub("").GetSession(r)

	_, ok := s.ID()
	require.False(t, ok)

	// Act
	id, err := s.EnsureID(w, r)
	require.Nil(t, err)
	again, err := s.EnsureID(w, r)
	require.Nil(t, err)

	// Assert
	require.Len(t, id, 36)
	require.Equal(t, id, again)
	got, ok := s.ID()
	require.True(t, ok)
	require.Equal(t, id, got)
}

func TestSessionTokenStore(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	w := httptest.NewRecorder()
	s, _ := session.NewStub("").GetSession(r)
	ts := s.TokenStore(w, r)

	// Act
	_, err := ts.LoadToken()

	// Assert
	require.ErrorIs(t, err, auth.ErrNoToken)

	// Act
	require.Nil(t, ts.SaveToken("abc"))
	token, err := ts.LoadToken()

	// Assert
	require.Nil(t, err)
	require.Equal(t, auth.Token("abc"), token)

	// Act
	require.Nil(t, ts.ClearToken())

	// Assert
	_, err = ts.LoadToken()
	require.ErrorIs(t, err, auth.ErrNoToken)
}

func TestSessionDelete(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	w := httptest.NewRecorder()
	s, _ := session.NewStub("abc").GetSession(r)

	// Act
	err := s.Delete(w, r)

	// Assert
	require.Nil(t, err)
	require.True(t, s.Auth().Authenticated(nil))
}
