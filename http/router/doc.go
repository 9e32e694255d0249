/*
Package router defines how the HTTP front routes requests.

[*Router] utilizes [mux.Router] for its implementation,
and so functions as thin wrapper around that package.

A [Router] leverages a standardized data model - a [Route] -
when registering how API requests should be routed.
A path and an HTTP method comprise a [Route].
An implementation of [http.Handler] is the function called when a request matches a Route.
Before a request gets to a handler, though,
any middlewares added to the Route are called in the order they appear.

It is often the case that many routes share identical middleware stacks.
Thus, a [Router] provides conveniences for making a single call to register many logically associated Routes.
AuthedRoutes puts routes behind the authentication check; HandleRoutes does not.

Navigation requests are not registered one by one.
HandleNav hands every remaining GET request to the navigation table,
which alone decides what matches and what is guarded.
*/
package router
