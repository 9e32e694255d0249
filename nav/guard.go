package nav

import "github.com/xy-planning-network/hackathons/auth"

// A Decision is what a Guard concludes about a navigation.
type Decision struct {
	// RedirectTo is the path to navigate to instead. It is empty when the navigation may proceed.
	RedirectTo string
}

// Proceed lets a navigation continue to its target.
var Proceed = Decision{}

// RedirectTo sends a navigation to path instead of its target.
func RedirectTo(path string) Decision { return Decision{RedirectTo: path} }

// Proceeds asserts whether d lets the navigation continue.
func (d Decision) Proceeds() bool { return d.RedirectTo == "" }

// A Guard keeps unauthenticated sessions out of protected routes.
type Guard struct {
	// Login is the path unauthenticated navigations are redirected to.
	// It defaults to LoginPath.
	Login string

	// Validator decides whether a session is authenticated.
	// It defaults to auth.PresenceValidator.
	Validator auth.Validator
}

// Check decides whether a navigation from one Resolution to another may proceed.
//
// Check redirects to the login path when any route in to.Matched requires authentication
// and sess is not authenticated. The origin of the navigation plays no part.
func (g Guard) Check(to, from Resolution, sess auth.Session) Decision {
	if !to.RequiresAuth() || sess.Authenticated(g.Validator) {
		return Proceed
	}

	login := g.Login
	if login == "" {
		login = LoginPath
	}

	return RedirectTo(login)
}
