/*
The middleware package defines what a middleware is and a set of basic middlewares.

The available middlewares are:
- CORS
- ForceHTTPS
- GuardNav
- Idempotent
- InjectIPAddress
- InjectSession
- InjectStore
- LogRequest
- RateLimit
- ReportPanic
- RequestID
- RequireAuthed

Due to the amount of configuration required, middleware does not provide a default middleware chain
Instead, the following can be copy-pasted:

	vs := middleware.NewVisitors()
	adpts := []middleware.Adapter{
		middleware.RateLimit(vs),
		middleware.ForceHTTPS(env),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(log),
		middleware.InjectSession(sessionStore),
	}

*/
package middleware
