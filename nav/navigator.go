package nav

import (
	"fmt"
	"sync"

	"github.com/xy-planning-network/hackathons/auth"
	"github.com/xy-planning-network/hackathons/logger"
)

// maxRedirects bounds how many times a single navigation follows a Guard's redirect.
const maxRedirects = 3

// A State is a step in the lifecycle of a navigation.
type State int

const (
	Requested State = iota
	Guarded
	Committed
	Redirected
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Requested:
		return "requested"
	case Guarded:
		return "guarded"
	case Committed:
		return "committed"
	case Redirected:
		return "redirected"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// A Navigation reports how a call to Navigate ended.
type Navigation struct {
	// Path is the path originally requested.
	Path string

	// State is Committed when the requested route is shown
	// or Redirected when the Guard replaced it.
	State State

	// From is the route committed before the navigation.
	From Resolution

	// To is the route committed by the navigation.
	// After a redirect, To is the redirect target and not the path requested.
	To Resolution
}

// A Navigator tracks the current route of a single client.
type Navigator struct {
	guard  Guard
	logger logger.Logger
	table  *Table

	mu      sync.Mutex
	current Resolution
}

// A NavigatorOption configures a *Navigator.
type NavigatorOption func(*Navigator)

// WithGuard replaces the zero-value Guard.
func WithGuard(g Guard) NavigatorOption {
	return func(n *Navigator) { n.guard = g }
}

// WithNavLogger logs each navigation at the debug level.
func WithNavLogger(l logger.Logger) NavigatorOption {
	return func(n *Navigator) { n.logger = l }
}

// NewNavigator constructs a *Navigator over t that has yet to navigate anywhere.
func NewNavigator(t *Table, opts ...NavigatorOption) *Navigator {
	n := &Navigator{table: t}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Current returns the route last committed.
func (n *Navigator) Current() Resolution {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Navigate moves the client to path, subject to the Guard.
//
// When path does not resolve, Navigate returns ErrNotFound and the current route stays.
// When the Guard redirects, the redirect target is committed instead
// and nothing of the original path is kept.
func (n *Navigator) Navigate(path string, sess auth.Session) (Navigation, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	nav := Navigation{Path: path, State: Requested, From: n.current}
	to, err := n.table.Resolve(path)
	if err != nil {
		return nav, err
	}

	nav.State = Guarded
	for i := 0; ; i++ {
		d := n.guard.Check(to, nav.From, sess)
		if d.Proceeds() {
			break
		}

		if i == maxRedirects {
			return nav, fmt.Errorf("%w: %s", ErrRedirectLoop, path)
		}

		nav.State = Redirected
		if to, err = n.table.Resolve(d.RedirectTo); err != nil {
			return nav, err
		}
	}

	if nav.State != Redirected {
		nav.State = Committed
	}

	nav.To = to
	n.current = to
	n.log(nav)

	return nav, nil
}

func (n *Navigator) log(nav Navigation) {
	if n.logger == nil {
		return
	}

	n.logger.Debug("navigated", &logger.LogContext{Data: map[string]any{
		"from":  nav.From.Path,
		"path":  nav.Path,
		"state": nav.State.String(),
		"to":    nav.To.Path,
	}})
}
