package ranger

import (
	"context"
	"encoding/hex"
	"io"
	"log/slog"
	"net"
	"net/http"
	"regexp"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/securecookie"
	"github.com/xy-planning-network/hackathons"
	"github.com/xy-planning-network/hackathons/api"
	"github.com/xy-planning-network/hackathons/auth"
	"github.com/xy-planning-network/hackathons/hackathon"
	"github.com/xy-planning-network/hackathons/http/middleware"
	"github.com/xy-planning-network/hackathons/http/resp"
	"github.com/xy-planning-network/hackathons/http/session"
	"github.com/xy-planning-network/hackathons/logger"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const sessionKeyLen = 32

var redisScheme = regexp.MustCompile(`^rediss?://`)

// DefaultAppLogger constructs a [logger.Logger] configured for use in the application.
// With SENTRY_DSN set, errors are also reported to Sentry.
func DefaultAppLogger(cfg Config, kind slog.Value, output io.Writer) logger.Logger {
	slogger := newSlogger(kind, cfg, output)
	var l logger.Logger = logger.New(slogger)
	l.Debug("setting up app logger", nil)
	if cfg.SentryDSN != "" {
		l = logger.NewSentryLogger(cfg.Env, l, cfg.SentryDSN)
		l.Debug("using SentryLogger for app logger", nil)
	}

	return l
}

// defaultHTTPLogger constructs a [*log/slog.Logger] for use in HTTP router logging.
func defaultHTTPLogger(cfg Config, output io.Writer) *slog.Logger {
	sl := newSlogger(hackathons.HTTPLogKind, cfg, output)
	sl.Debug("setting up HTTP router logger")

	return sl
}

// newSlogger toggles contructing the specific [*log/slog.Logger]
// from the given parameters.
//
// Outside development, or with LOG_JSON set, records are JSON.
// HTTP records drop their level and message, since every field lives in attributes.
func newSlogger(kind slog.Value, cfg Config, out io.Writer) *slog.Logger {
	lvl := new(slog.LevelVar)
	lvl.Set(cfg.LogLevel)

	useJSON := !cfg.Env.IsDevelopment() || cfg.LogJSON
	isHTTP := kind.String() == hackathons.HTTPLogKind.String()

	var handler slog.Handler
	switch {
	case useJSON && !isHTTP:
		opts := &slog.HandlerOptions{
			AddSource: true,
			Level:     lvl,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a = logger.LevelName(groups, a)
				return logger.TruncSourceAttr(groups, a)
			},
		}
		handler = slog.NewJSONHandler(out, opts)

	case !useJSON && !isHTTP:
		opts := &slog.HandlerOptions{
			AddSource: true,
			Level:     lvl,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a = logger.ColorizeLevel(groups, a)
				return logger.TruncSourceAttr(groups, a)
			},
		}
		handler = slog.NewTextHandler(out, opts)

	case isHTTP && useJSON:
		opts := &slog.HandlerOptions{
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a = logger.DeleteLevelAttr(groups, a)
				return logger.DeleteMessageAttr(groups, a)
			},
		}
		handler = slog.NewJSONHandler(out, opts)

	default:
		opts := &slog.HandlerOptions{
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a = logger.DeleteLevelAttr(groups, a)
				return logger.DeleteMessageAttr(groups, a)
			},
		}
		handler = slog.NewTextHandler(out, opts)
	}

	handler = handler.WithAttrs([]slog.Attr{
		{Key: hackathons.LogKindKey, Value: kind},
	})

	return slog.New(handler)
}

// DefaultAPIClient constructs the [*api.Client] the app calls the backend with.
// It carries no token; sessions get their own copy holding theirs.
func DefaultAPIClient(cfg Config, l logger.Logger) (*api.Client, error) {
	return api.New(cfg.APIBaseURL, api.WithLogger(l), api.WithTimeout(cfg.APITimeout))
}

// defaultRegistry constructs the [*hackathon.Registry] keeping each session's Store.
func defaultRegistry(c *api.Client, l logger.Logger) *hackathon.Registry {
	return hackathon.NewRegistry(
		func(token auth.Token) hackathon.API { return c.WithToken(token) },
		hackathon.WithLogger(l),
	)
}

// defaultIdempotencyCache constructs where responses to idempotent requests are kept.
// With REDIS_URL set, that is Redis; otherwise, memory.
func defaultIdempotencyCache(cfg Config) (middleware.IdempotencyCacher, error) {
	if cfg.RedisURL == "" {
		return middleware.NewIdemResMap(), nil
	}

	opts, err := redis.ParseURL(redisURL(cfg.RedisURL))
	if err != nil {
		return nil, err
	}

	if cfg.RedisPassword != "" {
		opts.Password = cfg.RedisPassword
	}

	return middleware.NewRedisCache(opts), nil
}

// redisURL prefixes a bare host:port with the redis scheme.
func redisURL(raw string) string {
	if redisScheme.MatchString(raw) {
		return raw
	}

	return "redis://" + raw
}

// redisAddr strips the redis scheme, leaving the host:port redistore dials.
func redisAddr(raw string) string {
	return redisScheme.ReplaceAllString(raw, "")
}

// defaultResponder configures the [*resp.Responder] to be used by http.Handlers.
func defaultResponder(l logger.Logger, rootUrl string) *resp.Responder {
	return resp.NewResponder(resp.WithLogger(l), resp.WithRootUrl(rootUrl))
}

// defaultSessionStore constructs a SessionStorer to be used for storing session data.
//
// defaultSessionStore relies on these env vars:
//   - APP_TITLE
//   - REDIS_URL
//   - REDIS_PASSWORD
//   - SESSION_AUTH_KEY
//   - SESSION_ENCRYPTION_KEY
//   - SESSION_MAX_AGE
//
// Both KEY env vars be valid hex encoded values; cf. [encoding/hex].
// In environments allowing stubs, a missing SESSION_AUTH_KEY is generated,
// so sessions do not outlive the process.
func defaultSessionStore(cfg Config, l logger.Logger) (session.SessionStorer, error) {
	authKey := cfg.SessionAuthKey
	if authKey == "" && cfg.Env.CanUseServiceStub() {
		authKey = hex.EncodeToString(securecookie.GenerateRandomKey(sessionKeyLen))
		l.Warn("SESSION_AUTH_KEY not set, generated one; sessions will not survive a restart", nil)
	}

	sc := session.Config{
		AuthKey:     authKey,
		EncryptKey:  cfg.SessionEncryptKey,
		Env:         cfg.Env,
		SessionName: sessionName(cfg.AppTitle),
	}

	args := []session.ServiceOpt{session.WithMaxAge(cfg.SessionMaxAge)}
	if cfg.RedisURL != "" {
		args = append(args, session.WithRedis(redisAddr(cfg.RedisURL), cfg.RedisPassword))
	} else {
		args = append(args, session.WithCookie())
	}

	return session.NewStoreService(sc, args...)
}

// sessionName derives the name sessions are stored under from the app's title.
func sessionName(title string) string {
	name := cases.Lower(language.English).String(title)
	name = regexp.MustCompile(`[,':]`).ReplaceAllString(name, "")
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, "-")

	return "hackathons-" + name
}

// defaultServer constructs a default [*http.Server].
func defaultServer(ctx context.Context, cfg Config) *http.Server {
	srv := &http.Server{
		Addr:         cfg.Addr(),
		IdleTimeout:  cfg.ServerIdleTimeout,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}

// sweepStores drops the Stores of sessions idle longer than idle, every interval, until ctx is done.
func sweepStores(ctx context.Context, reg *hackathon.Registry, l logger.Logger, interval, idle time.Duration) {
	if interval <= 0 {
		return
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := reg.Sweep(idle); n > 0 {
				l.Debug("swept idle stores", &logger.LogContext{Data: map[string]any{"swept": n, "remaining": reg.Len()}})
			}
		}
	}
}
