package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/hackathons"
	"github.com/xy-planning-network/hackathons/auth"
	"github.com/xy-planning-network/hackathons/http/middleware"
	"github.com/xy-planning-network/hackathons/http/resp"
	"github.com/xy-planning-network/hackathons/nav"
)

// A Route maps a path and HTTP method to an [http.HandlerFunc].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
type Route struct {
	Path        string
	Method      string
	Handler     http.HandlerFunc
	Middlewares []middleware.Adapter
}

// Router routes requests to the API proxy and to the navigation table.
type Router struct {
	Env           hackathons.Environment
	d             *resp.Responder
	everyReqStack []middleware.Adapter
	logReq        middleware.Adapter
	r             *mux.Router
}

// New constructs a [*Router] for the given environment.
// d answers requests the Router itself turns away; a nil d uses a default [*resp.Responder].
func New(env hackathons.Environment, d *resp.Responder, logReq middleware.Adapter) *Router {
	if d == nil {
		d = resp.NewResponder()
	}

	if logReq == nil {
		logReq = middleware.NoopAdapter
	}

	return &Router{Env: env, d: d, logReq: logReq, r: mux.NewRouter()}
}

// AuthedRoutes registers the set of Routes as those requiring authentication.
// AuthedRoutes applies the given middlewares before performing that check,
// using middleware.RequireAuthed.
//
// middleware.RequireAuthed requires loginUrl to appropriately
// redirect applicable requests, and v to decide what authenticated means.
func (r *Router) AuthedRoutes(
	loginUrl string,
	v auth.Validator,
	routes []Route,
	middlewares ...middleware.Adapter,
) {
	mws := append(middlewares, middleware.RequireAuthed(r.d, loginUrl, v))
	r.HandleRoutes(routes, mws...)
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleNav funnels every GET and HEAD request not matched by a Route registered earlier
// through the navigation table t, guarded by g, to handler.
//
// Since it matches every path, HandleNav is registered after all other Routes.
// handler finds the nav.Resolution under hackathons.RouteKey.
func (r *Router) HandleNav(t *nav.Table, g nav.Guard, handler http.HandlerFunc, middlewares ...middleware.Adapter) {
	mws := append(append([]middleware.Adapter{}, r.everyReqStack...), middlewares...)
	mws = append(mws, middleware.GuardNav(r.d, t, g))
	r.r.PathPrefix("/").
		Methods(http.MethodGet, http.MethodHead).
		Handler(middleware.Chain(middleware.ReportPanic(r.Env)(handler), mws...))
}

// HandleNotFound sets the provided [http.HandlerFunc] as the default function
// for when no other registered Route is matched.
func (r *Router) HandleNotFound(handler http.HandlerFunc) {
	r.r.NotFoundHandler = middleware.Chain(
		middleware.ReportPanic(r.Env)(handler),
		r.logReq,
	)
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		mws := append(append([]middleware.Adapter{}, r.everyReqStack...), middlewares...)
		mws = append(mws, route.Middlewares...)
		handler := middleware.Chain(middleware.ReportPanic(r.Env)(route.Handler), mws...)
		r.r.Handle(route.Path, handler).Methods(route.Method)
	}
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}

// Subrouter constructs a [Router] that handles requests to endpoints matching the prefix.
//
// e.g., r.Subrouter("/api") handles requests to endpoints like /api/hackathons
func (r *Router) Subrouter(prefix string) *Router {
	return &Router{
		Env:           r.Env,
		d:             r.d,
		r:             r.r.PathPrefix(prefix).Subrouter(),
		logReq:        r.logReq,
		everyReqStack: append([]middleware.Adapter{}, r.everyReqStack...),
	}
}
