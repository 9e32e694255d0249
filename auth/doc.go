/*
Package auth models who is making a request in a hackathons app.

# Tokens

A [Token] is the opaque string the backend hands out on login.
A [TokenStore] keeps exactly one Token under a fixed key;
the web front keeps it in a cookie or Redis backed session,
the CLI keeps it in a local bolt file (see package boltstore).

# Sessions

A [Session] is an optional Token.
Whether a Session counts as authenticated is decided by a [Validator].
[PresenceValidator], the default, only checks a Token is present.
[JWTExpiryValidator] additionally rejects JWTs whose exp claim has passed,
for backends that issue JWTs.
*/
package auth
