package ranger

import (
	"context"
	"net/http"

	"github.com/xy-planning-network/hackathons/api"
	"github.com/xy-planning-network/hackathons/hackathon"
	"github.com/xy-planning-network/hackathons/http/middleware"
	"github.com/xy-planning-network/hackathons/http/resp"
	"github.com/xy-planning-network/hackathons/http/session"
	"github.com/xy-planning-network/hackathons/logger"
	"github.com/xy-planning-network/hackathons/nav"
)

// A RangerOption configures a *Ranger either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Some RangerOptions require components New builds afterwards
// and thus an OptFollowup can be returned in order to be called once those exist.
//
// WithConfig is an example of the first.
// An unexported field on the passed in *Ranger is updated with the enclosed value.
//
// WithServer is an example of the second.
// The *http.Server is handed the Router only when the closure it returns is called.
type RangerOption func(rng *Ranger) (OptFollowup, error)
type OptFollowup func() error

// WithAPIClient exposes the provided *api.Client to the hackathons app.
// Stores of every session call the backend through copies of it.
func WithAPIClient(c *api.Client) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.api = c
		return nil, nil
	}
}

// WithConfig uses cfg instead of reading a Config from the environment.
func WithConfig(cfg Config) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.cfg = cfg
		rng.cfgSet = true
		return nil, nil
	}
}

// WithContext exposes the provided context.Context to the hackathons app.
// Cancelling ctx stops Guide.
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.ctx = ctx
		return nil, nil
	}
}

// WithIdempotencyCache sets where responses to idempotent requests are kept.
func WithIdempotencyCache(c middleware.IdempotencyCacher) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.idem = c
		return nil, nil
	}
}

// WithLogger exposes the provided logger.Logger to the hackathons app.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.l = l
		return func() error {
			rng.l.Debug("using provided logger", nil)
			return nil
		}, nil
	}
}

// WithRegistry exposes the provided *hackathon.Registry to the hackathons app.
func WithRegistry(reg *hackathon.Registry) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.reg = reg
		return nil, nil
	}
}

// WithResponder exposes the *resp.Responder to the hackathons app.
func WithResponder(d *resp.Responder) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.Responder = d
		return nil, nil
	}
}

// WithSessionStore exposes the session.SessionStorer to the hackathons app.
func WithSessionStore(store session.SessionStorer) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.sessions = store
		return nil, nil
	}
}

// WithServer exposes the *http.Server to the hackathons app.
// Its Handler is replaced with the Ranger's Router.
func WithServer(s *http.Server) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.srv = s
		return func() error {
			rng.srv.Handler = rng.Router
			return nil
		}, nil
	}
}

// WithTable routes navigation requests through t instead of nav.DefaultTable.
func WithTable(t *nav.Table) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.table = t
		return nil, nil
	}
}
