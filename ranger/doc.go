/*
Package ranger initializes and manages a hackathons app with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type.
A [Ranger] ought to be constructed with [New].

[*Ranger.Guide] begins the web server.
By default, [*Ranger.Guide] listens on [DefaultHost]:[DefaultPort] (localhost:3000),
assuming either a reverse proxy proxies requests
or only a client application makes direct requests to it.

Upon calling [*Ranger.Guide], these routes are active:
  - GET on any path in the navigation table answers with the view it selects, or redirects to /login
  - GET, POST /api/hackathons
  - GET, PATCH, DELETE /api/hackathons/{id}
  - POST /api/login
  - POST /api/logout

Stop that web server with [*Ranger.Shutdown],
cancel the context.Context passed in with [WithContext],
or send a signal [*Ranger.Guide] listens for.

# Configuration

A developer configures a hackathons app through environment variables
and by passing a [RangerOption] into [New].
For environment variables, required values can be discovered by inspecting the errors [New] returns.

Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - API_BASE_URL: the base URL of the backend REST API; default: http://localhost:8000/
  - API_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for each call to the backend; default: 30s
  - APP_TITLE: a short title for the application, naming its session cookie; default: Hackathons
  - BASE_URL: the base URL the application runs on; replaces HOST & PORT
  - ENVIRONMENT: the environment the application is running in; cf. [hackathons.Environment]
  - HOST: the host the application is running on; default: localhost
  - JWT_VALIDATE: whether to treat tokens past their expiry as logged out; default: false
  - JWT_LEEWAY: the clock drift tolerated when JWT_VALIDATE is set; default: 30s
  - LOG_JSON: whether to log JSON in development; default: false
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [log/slog.Level]
  - PORT: the port the application should listen on; default: 3000
  - REDIS_URL: the Redis server storing sessions and idempotent responses; default: none, cookies and memory
  - REDIS_PASSWORD: the password for authenticating to REDIS_URL
  - SENTRY_DSN: the Sentry project errors are reported to
  - SERVER_IDLE_TIMEOUT: the timeout for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout for writing HTTP responses; default: 35s
  - SESSION_AUTH_KEY: a hex-encoded key for authenticating cookies; cf. [encoding/hex]
  - SESSION_ENCRYPTION_KEY: a hex-encoded key for encrypting cookies; cf. [encoding/hex]
  - SESSION_MAX_AGE: the number of seconds a session lasts; default: 604800
  - STORE_IDLE_TIMEOUT: how long a session's cached hackathons are kept unused; default: 30m
  - STORE_SWEEP_INTERVAL: how often idle sessions' caches are dropped; default: 5m
  - TOKEN_DB_PATH: the bolt file the command line keeps its token in; default: .hackathons.db
*/
package ranger
