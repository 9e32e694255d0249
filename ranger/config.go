package ranger

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/xy-planning-network/hackathons"
	"github.com/xy-planning-network/hackathons/auth"
)

const (
	DefaultHost = "localhost"
	DefaultPort = "3000"
)

// A Config holds everything a hackathons app reads from its environment.
//
// Confer the package docs for each variable.
type Config struct {
	Env hackathons.Environment `env:"ENVIRONMENT" envDefault:"DEVELOPMENT"`

	APIBaseURL string        `env:"API_BASE_URL" envDefault:"http://localhost:8000/"`
	APITimeout time.Duration `env:"API_TIMEOUT" envDefault:"30s"`

	AppTitle string `env:"APP_TITLE" envDefault:"Hackathons"`
	BaseURL  string `env:"BASE_URL"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"3000"`

	ServerIdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ServerReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	ServerWriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"35s"`

	SessionAuthKey    string `env:"SESSION_AUTH_KEY"`
	SessionEncryptKey string `env:"SESSION_ENCRYPTION_KEY"`
	SessionMaxAge     int    `env:"SESSION_MAX_AGE" envDefault:"604800"`

	StoreIdleTimeout   time.Duration `env:"STORE_IDLE_TIMEOUT" envDefault:"30m"`
	StoreSweepInterval time.Duration `env:"STORE_SWEEP_INTERVAL" envDefault:"5m"`

	RedisURL      string `env:"REDIS_URL"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	LogJSON   bool       `env:"LOG_JSON"`
	SentryDSN string     `env:"SENTRY_DSN"`

	JWTValidate bool          `env:"JWT_VALIDATE"`
	JWTLeeway   time.Duration `env:"JWT_LEEWAY" envDefault:"30s"`

	TokenDBPath string `env:"TOKEN_DB_PATH" envDefault:".hackathons.db"`
}

// NewConfig reads a Config from the environment.
// Any .env file in the working directory has already been loaded into it.
func NewConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrBadConfig, err)
	}

	return cfg, nil
}

// Addr is the address the web server listens on.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strings.TrimPrefix(c.Port, ":"))
}

// URL is the base URL the web server is reached at.
// BASE_URL replaces HOST and PORT when set.
func (c Config) URL() (*url.URL, error) {
	raw := c.BaseURL
	if raw == "" {
		raw = "http://" + c.Addr()
	}

	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: BASE_URL %q: %s", ErrNotValid, raw, err)
	}

	return u, nil
}

// Validator decides what an authenticated session is.
// With JWT_VALIDATE set, tokens past their expiry are not.
func (c Config) Validator() auth.Validator {
	if c.JWTValidate {
		return auth.NewJWTExpiryValidator(c.JWTLeeway)
	}

	return auth.PresenceValidator{}
}
