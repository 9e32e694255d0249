package hackathons

// A Key stashes values in a context.Context.
type Key string

const (
	// IpAddrKey stashes the IP address of an HTTP request.
	IpAddrKey Key = "IpAddrKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"

	// RouteKey stashes the navigation route an HTTP request resolved to.
	RouteKey Key = "RouteKey"

	// SessionKey stashes the session associated with an HTTP request.
	SessionKey Key = "SessionKey"

	// StoreKey stashes the hackathon store of the session making an HTTP request.
	StoreKey Key = "StoreKey"
)

// Key returns k as a plain string.
func (k Key) Key() string { return string(k) }

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "hackathons context key: " + string(k)
}
