package ranger

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	// TODO(dlk): configurable env files
	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/hackathons"
	"github.com/xy-planning-network/hackathons/api"
	"github.com/xy-planning-network/hackathons/hackathon"
	"github.com/xy-planning-network/hackathons/http/handler"
	"github.com/xy-planning-network/hackathons/http/middleware"
	"github.com/xy-planning-network/hackathons/http/resp"
	"github.com/xy-planning-network/hackathons/http/router"
	"github.com/xy-planning-network/hackathons/http/session"
	"github.com/xy-planning-network/hackathons/logger"
	"github.com/xy-planning-network/hackathons/nav"
)

// A Ranger manages and exposes all components of a hackathons app to one another.
type Ranger struct {
	*resp.Responder
	*router.Router

	api      *api.Client
	cancel   context.CancelFunc
	cfg      Config
	cfgSet   bool
	ctx      context.Context
	idem     middleware.IdempotencyCacher
	l        logger.Logger
	reg      *hackathon.Registry
	sessions session.SessionStorer
	srv      *http.Server
	table    *nav.Table
	visitors *middleware.Visitors
}

// New constructs a Ranger from the provided options.
//
// Options passed into New are applied first;
// whatever they leave unset is then built from the Config.
// Options returning an OptFollowup are finished once everything is built.
func New(opts ...RangerOption) (*Ranger, error) {
	r := new(Ranger)
	followups := make([]OptFollowup, 0)

	for _, opt := range opts {
		fn, err := opt(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	if err := r.defaults(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadConfig, err)
	}

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrBadConfig, err)
		}
	}

	return r, nil
}

// defaults builds every component an option did not supply.
func (r *Ranger) defaults() error {
	if !r.cfgSet {
		cfg, err := NewConfig()
		if err != nil {
			return err
		}
		r.cfg = cfg
	}

	if err := r.cfg.Env.Valid(); err != nil {
		return fmt.Errorf("%w: environment %q", err, r.cfg.Env)
	}

	if r.ctx == nil {
		r.ctx = context.Background()
	}
	r.ctx, r.cancel = context.WithCancel(r.ctx)

	if r.l == nil {
		r.l = DefaultAppLogger(r.cfg, hackathons.AppLogKind, os.Stdout)
	}

	u, err := r.cfg.URL()
	if err != nil {
		return err
	}

	if r.Responder == nil {
		r.Responder = defaultResponder(r.l, u.String())
	}

	if r.api == nil {
		if r.api, err = DefaultAPIClient(r.cfg, r.l); err != nil {
			return err
		}
	}

	if r.reg == nil {
		r.reg = defaultRegistry(r.api, r.l)
	}

	if r.sessions == nil {
		if r.sessions, err = defaultSessionStore(r.cfg, r.l); err != nil {
			return err
		}
	}

	if r.idem == nil {
		if r.idem, err = defaultIdempotencyCache(r.cfg); err != nil {
			return err
		}
	}

	if r.table == nil {
		r.table = nav.DefaultTable()
	}

	if r.visitors == nil {
		r.visitors = middleware.NewVisitors()
	}

	if r.srv == nil {
		r.srv = defaultServer(r.ctx, r.cfg)
	}

	if r.Router == nil {
		r.Router = r.routes(defaultHTTPLogger(r.cfg, os.Stdout), u.String())
	}
	r.srv.Handler = r.Router

	return nil
}

// routes registers the API proxy and the navigation table.
func (r *Ranger) routes(httpLog *slog.Logger, origin string) *router.Router {
	logReq := middleware.LogRequest(httpLog)
	v := r.cfg.Validator()
	h := handler.New(r.Responder, r.api, r.reg)

	rt := router.New(r.cfg.Env, r.Responder, logReq)
	rt.OnEveryRequest(
		middleware.ForceHTTPS(r.cfg.Env),
		middleware.RateLimit(r.visitors),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		logReq,
		middleware.InjectSession(r.sessions),
	)

	apiRt := rt.Subrouter("/api")
	cors := middleware.CORS(origin)
	store := middleware.InjectStore(r.Responder, r.reg)
	apiRt.HandleRoutes(
		[]router.Route{
			{Path: "/hackathons", Method: http.MethodGet, Handler: h.ListHackathons},
			{
				Path:        "/hackathons",
				Method:      http.MethodPost,
				Handler:     h.CreateHackathon,
				Middlewares: []middleware.Adapter{middleware.Idempotent(r.idem, nil)},
			},
			{Path: "/hackathons/{id:[0-9]+}", Method: http.MethodGet, Handler: h.ViewHackathon},
			{Path: "/hackathons/{id:[0-9]+}", Method: http.MethodPatch, Handler: h.UpdateHackathon},
			{Path: "/hackathons/{id:[0-9]+}", Method: http.MethodDelete, Handler: h.DeleteHackathon},
			{Path: "/login", Method: http.MethodPost, Handler: h.Login},
		},
		cors,
		store,
	)
	apiRt.Handle(router.Route{
		Path:        "/{rest:.*}",
		Method:      http.MethodOptions,
		Handler:     func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) },
		Middlewares: []middleware.Adapter{cors},
	})
	apiRt.AuthedRoutes(
		nav.LoginPath,
		v,
		[]router.Route{{Path: "/logout", Method: http.MethodPost, Handler: h.Logout}},
		cors,
	)

	rt.HandleNav(r.table, nav.Guard{Login: nav.LoginPath, Validator: v}, h.Nav)

	return rt
}

func (r *Ranger) EmitAPI() *api.Client                    { return r.api }
func (r *Ranger) EmitConfig() Config                      { return r.cfg }
func (r *Ranger) EmitLogger() logger.Logger               { return r.l }
func (r *Ranger) EmitRegistry() *hackathon.Registry       { return r.reg }
func (r *Ranger) EmitSessionStore() session.SessionStorer { return r.sessions }
func (r *Ranger) EmitTable() *nav.Table                   { return r.table }

// Guide begins the web server.
//
// These, and (*Ranger).Shutdown, stop Guide:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
//
// While the web server runs, Stores of idle sessions are swept every STORE_SWEEP_INTERVAL.
func (r *Ranger) Guide() error {
	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer signal.Stop(ch)

	go func() {
		select {
		case s := <-ch:
			r.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
			r.cancel()
		case <-r.ctx.Done():
		}
	}()

	go sweepStores(r.ctx, r.reg, r.l, r.cfg.StoreSweepInterval, r.cfg.StoreIdleTimeout)

	errCh := make(chan error, 1)
	go func() {
		r.l.Info(fmt.Sprintf("running web server at %s", r.srv.Addr), nil)
		if err := r.srv.ListenAndServe(); err != http.ErrServerClosed {
			errCh <- fmt.Errorf("could not listen: %w", err)
			r.cancel()
		}
	}()

	<-r.ctx.Done()
	select {
	case err := <-errCh:
		r.l.Error(err.Error(), nil)
		return err
	default:
		return r.Shutdown()
	}
}

// Shutdown shutdowns the web server.
func (r *Ranger) Shutdown() error {
	r.cancel()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	r.l.Info("shutting down web server", nil)
	err := r.srv.Shutdown(shutdownCtx)
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	r.l.Info("web server shutdown successfully", nil)
	return nil
}
