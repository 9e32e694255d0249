package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/hackathons/auth"
)

func TestLogin(t *testing.T) {
	// Arrange
	store := new(memStore)
	a := &fakeAuthenticator{token: "abc"}

	// Act
	token, err := auth.Login(context.Background(), a, store, "ada", "hunter2")

	// Assert
	require.Nil(t, err)
	require.Equal(t, auth.Token("abc"), token)
	require.Equal(t, auth.Token("abc"), store.token)

	// Arrange
	store = new(memStore)
	a = &fakeAuthenticator{err: errors.New("bad creds")}

	// Act
	_, err = auth.Login(context.Background(), a, store, "ada", "wrong")

	// Assert
	require.NotNil(t, err)
	require.Zero(t, store.token)
}

func TestLogout(t *testing.T) {
	// Arrange
	store := &memStore{token: "abc"}
	a := &fakeAuthenticator{}

	// Act
	err := auth.Logout(context.Background(), a, store)

	// Assert
	require.Nil(t, err)
	require.Zero(t, store.token)
	require.Equal(t, auth.Token("abc"), a.revoked)

	// Arrange
	store = &memStore{token: "abc"}
	a = &fakeAuthenticator{err: errors.New("backend down")}

	// Act
	err = auth.Logout(context.Background(), a, store)

	// Assert
	require.NotNil(t, err)
	require.Zero(t, store.token)

	// Arrange
	store = new(memStore)

	// Act
	err = auth.Logout(context.Background(), a, store)

	// Assert
	require.ErrorIs(t, err, auth.ErrNoToken)
}

type fakeAuthenticator struct {
	token   auth.Token
	revoked auth.Token
	err     error
}

func (f *fakeAuthenticator) Login(_ context.Context, _, _ string) (auth.Token, error) {
	return f.token, f.err
}

func (f *fakeAuthenticator) Logout(_ context.Context, token auth.Token) error {
	f.revoked = token
	return f.err
}
