package ranger_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/hackathons"
	"github.com/xy-planning-network/hackathons/logger"
	"github.com/xy-planning-network/hackathons/ranger"
)

// backend stands in for the REST API, recording the Authorization header of each list request.
func backend(t *testing.T, authz *[]string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		require.Nil(t, r.ParseForm())
		if r.PostForm.Get("password") != "pw" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		_, _ = io.WriteString(w, `{"access_token":"tok","token_type":"bearer"}`)
	})
	mux.HandleFunc("/hackathons", func(w http.ResponseWriter, r *http.Request) {
		*authz = append(*authz, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `[{"id":1,"name":"first","theme":null,"created_at":"2025-04-30T12:00:00"}]`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(apiURL string) ranger.Config {
	return ranger.Config{
		Env:                hackathons.Development,
		APIBaseURL:         apiURL,
		APITimeout:         time.Second,
		AppTitle:           "Hackathons Test",
		Host:               ranger.DefaultHost,
		Port:               ranger.DefaultPort,
		SessionAuthKey:     "0123456789abcdef0123456789abcdef",
		SessionMaxAge:      60,
		StoreIdleTimeout:   time.Minute,
		StoreSweepInterval: time.Minute,
	}
}

func newRanger(t *testing.T, cfg ranger.Config) *ranger.Ranger {
	t.Helper()
	l := logger.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	rng, err := ranger.New(ranger.WithConfig(cfg), ranger.WithLogger(l))
	require.Nil(t, err)
	return rng
}

func serve(rng *ranger.Ranger, r *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		r.AddCookie(c)
	}

	w := httptest.NewRecorder()
	rng.ServeHTTP(w, r)
	return w
}

func TestRangerLoginThenNavigate(t *testing.T) {
	// Arrange
	var authz []string
	rng := newRanger(t, testConfig(backend(t, &authz).URL))

	guarded := httptest.NewRequest(http.MethodGet, "/hackathons/5", nil)
	guarded.Header.Set("Accept", "text/html")

	// Act
	w := serve(rng, guarded)

	// Assert
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))

	// Arrange
	form := url.Values{"username": {"ada"}, "password": {"pw"}}
	login := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(form.Encode()))
	login.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// Act
	w = serve(rng, login)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	cookie := cookies[len(cookies)-1]

	// Act
	w = serve(rng, httptest.NewRequest(http.MethodGet, "/hackathons/5", nil), cookie)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"data":{"name":"HackathonDetail","view":"hackathon-detail","params":{"id":"5"}}}`, w.Body.String())

	// Act
	w = serve(rng, httptest.NewRequest(http.MethodGet, "/api/hackathons", nil), cookie)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"data":[{"id":1,"name":"first","theme":null,"created_at":"2025-04-30T12:00:00"}]}`, w.Body.String())
	require.Equal(t, []string{"Bearer tok"}, authz)
	require.Equal(t, 1, rng.EmitRegistry().Len())
}

func TestRangerLoginRejected(t *testing.T) {
	// Arrange
	var authz []string
	rng := newRanger(t, testConfig(backend(t, &authz).URL))

	body, err := json.Marshal(map[string]string{"username": "ada", "password": "wrong"})
	require.Nil(t, err)

	// Act
	w := serve(rng, httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body)))

	// Assert
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRangerNavigation(t *testing.T) {
	for _, tc := range []struct {
		name string
		path string
		code int
	}{
		{"Public", "/hackathons", http.StatusOK},
		{"Guarded", "/profile", http.StatusUnauthorized},
		{"Unmatched", "/nowhere/at/all", http.StatusNotFound},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			var authz []string
			rng := newRanger(t, testConfig(backend(t, &authz).URL))
			r := httptest.NewRequest(http.MethodGet, tc.path, nil)
			r.Header.Set("Accept", "application/json")

			// Act
			w := serve(rng, r)

			// Assert
			require.Equal(t, tc.code, w.Code)
			require.Empty(t, authz)
		})
	}
}

func TestRangerCreateRequiresIdempotencyKey(t *testing.T) {
	// Arrange
	var authz []string
	rng := newRanger(t, testConfig(backend(t, &authz).URL))

	// Act
	w := serve(rng, httptest.NewRequest(http.MethodPost, "/api/hackathons", strings.NewReader(`{"name":"new"}`)))

	// Assert
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNewBadConfig(t *testing.T) {
	for _, tc := range []struct {
		name string
		cfg  func(ranger.Config) ranger.Config
	}{
		{"Bad-Env", func(c ranger.Config) ranger.Config { c.Env = "NOPE"; return c }},
		{"Bad-API-URL", func(c ranger.Config) ranger.Config { c.APIBaseURL = "not a url"; return c }},
		{"Bad-Session-Key", func(c ranger.Config) ranger.Config { c.SessionAuthKey = "zz"; return c }},
		{
			"No-Session-Key-In-Production",
			func(c ranger.Config) ranger.Config { c.Env = hackathons.Production; c.SessionAuthKey = ""; return c },
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			l := logger.New(slog.New(slog.NewTextHandler(io.Discard, nil)))

			// Act
			_, err := ranger.New(ranger.WithConfig(tc.cfg(testConfig("http://localhost:8000/"))), ranger.WithLogger(l))

			// Assert
			require.ErrorIs(t, err, ranger.ErrBadConfig)
		})
	}
}

func TestConfigAddrAndURL(t *testing.T) {
	// Arrange
	cfg := ranger.Config{Host: "localhost", Port: ":3000"}

	// Act
	u, err := cfg.URL()

	// Assert
	require.Nil(t, err)
	require.Equal(t, "localhost:3000", cfg.Addr())
	require.Equal(t, "http://localhost:3000", u.String())

	// Arrange
	cfg.BaseURL = "https://hackathons.example.com"

	// Act
	u, err = cfg.URL()

	// Assert
	require.Nil(t, err)
	require.Equal(t, "https://hackathons.example.com", u.String())
}

func TestNewConfig(t *testing.T) {
	// Arrange
	t.Setenv("ENVIRONMENT", "staging")
	t.Setenv("API_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("JWT_VALIDATE", "true")

	// Act
	cfg, err := ranger.NewConfig()

	// Assert
	require.Nil(t, err)
	require.Equal(t, hackathons.Staging, cfg.Env)
	require.Equal(t, 5*time.Second, cfg.APITimeout)
	require.Equal(t, slog.LevelDebug, cfg.LogLevel)
	require.True(t, cfg.JWTValidate)
	require.Equal(t, ranger.DefaultPort, cfg.Port)

	// Arrange
	t.Setenv("ENVIRONMENT", "nowhere")

	// Act
	_, err = ranger.NewConfig()

	// Assert
	require.ErrorIs(t, err, ranger.ErrBadConfig)
}
