// Package boltstore persists an auth.Token in a local bolt database file.
package boltstore

import (
	"fmt"
	"time"

	"github.com/xy-planning-network/hackathons/auth"
	"go.etcd.io/bbolt"
)

const (
	bucket   = "auth"
	tokenKey = "token"
)

var _ auth.TokenStore = (*Store)(nil)

// A Store keeps a single auth.Token in a bolt file.
type Store struct {
	db *bbolt.DB
}

// Open opens, creating if needed, the bolt file at path.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w: failed opening %s: %s", auth.ErrUnexpected, path, err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: failed creating bucket: %s", auth.ErrUnexpected, err)
	}

	return &Store{db: db}, nil
}

// Close closes the bolt file.
func (s *Store) Close() error { return s.db.Close() }

// ClearToken deletes the stored token, if any.
func (s *Store) ClearToken() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucket)).Delete([]byte(tokenKey))
	})
}

// LoadToken reads the stored token, returning auth.ErrNoToken if there is none.
func (s *Store) LoadToken() (auth.Token, error) {
	var token auth.Token
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(bucket)).Get([]byte(tokenKey))
		if len(v) == 0 {
			return auth.ErrNoToken
		}

		// NOTE: v is only valid inside the transaction
		token = auth.Token(string(v))
		return nil
	})

	return token, err
}

// SaveToken overwrites the stored token.
func (s *Store) SaveToken(token auth.Token) error {
	if token == "" {
		return fmt.Errorf("%w: empty token", auth.ErrNotValid)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucket)).Put([]byte(tokenKey), []byte(token))
	})
}
