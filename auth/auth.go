package auth

import (
	"context"
	"fmt"
)

// An Authenticator exchanges credentials for a Token and revokes it.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (Token, error)
	Logout(ctx context.Context, token Token) error
}

// A TokenStore persists a single Token under a fixed key.
//
// LoadToken returns ErrNoToken when nothing is stored.
type TokenStore interface {
	ClearToken() error
	LoadToken() (Token, error)
	SaveToken(token Token) error
}

// Login authenticates with a and writes the resulting Token to store.
// Nothing is written if authentication fails.
func Login(ctx context.Context, a Authenticator, store TokenStore, username, password string) (Token, error) {
	token, err := a.Login(ctx, username, password)
	if err != nil {
		return "", err
	}

	if err := store.SaveToken(token); err != nil {
		return "", fmt.Errorf("%w: failed saving token: %s", ErrUnexpected, err)
	}

	return token, nil
}

// Logout revokes the stored Token with a and clears it from store.
//
// The Token is cleared even when revoking fails;
// the revocation error is returned afterwards.
func Logout(ctx context.Context, a Authenticator, store TokenStore) error {
	token, err := store.LoadToken()
	if err != nil {
		return err
	}

	revokeErr := a.Logout(ctx, token)
	if err := store.ClearToken(); err != nil {
		return fmt.Errorf("%w: failed clearing token: %s", ErrUnexpected, err)
	}

	return revokeErr
}
