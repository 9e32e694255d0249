package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// A JWTExpiryValidator accepts Sessions whose Token is a JWT
// with an exp claim still in the future.
//
// The signature is not checked; the backend remains the authority.
// This only spares a round-trip with a Token the backend will refuse.
type JWTExpiryValidator struct {
	// Leeway tolerates clock drift between client and backend.
	Leeway time.Duration

	// Now returns the current time; time.Now when nil.
	Now func() time.Time

	parser *jwt.Parser
}

// NewJWTExpiryValidator constructs a JWTExpiryValidator with the given leeway.
func NewJWTExpiryValidator(leeway time.Duration) JWTExpiryValidator {
	return JWTExpiryValidator{Leeway: leeway, parser: new(jwt.Parser)}
}

// Validate implements Validator.
func (v JWTExpiryValidator) Validate(s Session) error {
	if err := (PresenceValidator{}).Validate(s); err != nil {
		return err
	}

	p := v.parser
	if p == nil {
		p = new(jwt.Parser)
	}

	claims := new(jwt.RegisteredClaims)
	if _, _, err := p.ParseUnverified(string(s.token), claims); err != nil {
		return fmt.Errorf("%w: token is not a JWT: %s", ErrNotValid, err)
	}

	now := time.Now
	if v.Now != nil {
		now = v.Now
	}

	if !claims.VerifyExpiresAt(now().Add(-v.Leeway), false) {
		return fmt.Errorf("%w: token expired at %s", ErrExpired, claims.ExpiresAt.Time)
	}

	return nil
}
