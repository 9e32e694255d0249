package resp_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/hackathons"
	"github.com/xy-planning-network/hackathons/http/resp"
	"github.com/xy-planning-network/hackathons/http/session"
	"github.com/xy-planning-network/hackathons/logger"
)

const jsonMediaType = "application/json; charset=UTF-8"

func TestResponderDo(t *testing.T) {
	t.Run("Cancelled", func(t *testing.T) {
		// Arrange
		r := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
		ctx, cancel := context.WithCancel(r.Context())
		r = r.Clone(ctx)

		w := httptest.NewRecorder()
		w.WriteHeader(http.StatusPaymentRequired)

		cancel()

		d := resp.NewResponder()

		// Act
		err := d.Json(w, r, resp.Code(http.StatusTeapot))

		// Assert
		require.ErrorIs(t, err, resp.ErrDone)
		require.Equal(t, http.StatusPaymentRequired, w.Code)
	})
}

func TestResponderJson(t *testing.T) {
	for _, tc := range []struct {
		name string
		opts []resp.Fn
		code int
		body string
	}{
		{"Zero", nil, http.StatusOK, "{}\n"},
		{"Data", []resp.Fn{resp.Data(map[string]string{"view": "login"})}, http.StatusOK, `{"data":{"view":"login"}}` + "\n"},
		{"Empty-Slice", []resp.Fn{resp.Data([]int{})}, http.StatusOK, `{"data":[]}` + "\n"},
		{"Code", []resp.Fn{resp.Code(http.StatusCreated), resp.Data([]int{1})}, http.StatusCreated, `{"data":[1]}` + "\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			r := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
			w := httptest.NewRecorder()
			d := resp.NewResponder()

			// Act
			err := d.Json(w, r, tc.opts...)

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.code, w.Code)
			require.Equal(t, jsonMediaType, w.Header().Get("Content-Type"))
			require.Equal(t, tc.body, w.Body.String())
		})
	}
}

func TestResponderJsonUnencodable(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	w := httptest.NewRecorder()
	d := resp.NewResponder(resp.WithLogger(logger.New(slog.New(slog.NewTextHandler(new(bytes.Buffer), nil)))))

	// Act
	err := d.Json(w, r, resp.Data(make(chan int)))

	// Assert
	require.NotNil(t, err)
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestResponderRedirect(t *testing.T) {
	for _, tc := range []struct {
		name     string
		opts     []resp.Fn
		code     int
		location string
	}{
		{"Root", nil, http.StatusFound, "/"},
		{"Url", []resp.Fn{resp.Url("/login")}, http.StatusFound, "/login"},
		{"Temporary", []resp.Fn{resp.Url("/login"), resp.Code(http.StatusTemporaryRedirect)}, http.StatusTemporaryRedirect, "/login"},
		{"Client-Error", []resp.Fn{resp.Code(http.StatusUnauthorized)}, http.StatusSeeOther, "/"},
		{"Server-Error", []resp.Fn{resp.Code(http.StatusBadGateway)}, http.StatusTemporaryRedirect, "/"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			r := httptest.NewRequest(http.MethodGet, "http://example.com/profile", nil)
			w := httptest.NewRecorder()
			d := resp.NewResponder()

			// Act
			err := d.Redirect(w, r, tc.opts...)

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.code, w.Code)
			require.Equal(t, tc.location, w.Header().Get("Location"))
		})
	}
}

func TestResponderRedirectBadUrl(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	w := httptest.NewRecorder()
	d := resp.NewResponder(resp.WithRootUrl("not a url"))

	// Act
	err := d.Redirect(w, r, resp.Url("::"))

	// Assert
	require.ErrorIs(t, err, resp.ErrInvalid)
}

func TestResponderErr(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.New(slog.New(slog.NewJSONHandler(b, nil)))
	r := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	w := httptest.NewRecorder()
	d := resp.NewResponder(resp.WithLogger(l))

	// Act
	d.Err(w, r, errors.New("boom"), resp.Code(http.StatusBadGateway))

	// Assert
	require.Equal(t, http.StatusBadGateway, w.Code)
	require.Equal(t, "boom\n", w.Body.String())
	require.Contains(t, b.String(), `"level":"ERROR"`)
	require.Contains(t, b.String(), `"msg":"boom"`)
}

func TestResponderSession(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	s, err := session.NewStub("abc").GetSession(r)
	require.Nil(t, err)
	d := resp.NewResponder()

	// Act
	_, err = d.Session(context.Background())

	// Assert
	require.ErrorIs(t, err, resp.ErrNotFound)

	// Act
	_, err = d.Session(context.WithValue(context.Background(), hackathons.SessionKey, "nope"))

	// Assert
	require.ErrorIs(t, err, resp.ErrInvalid)

	// Act
	got, err := d.Session(context.WithValue(context.Background(), hackathons.SessionKey, s))

	// Assert
	require.Nil(t, err)
	require.True(t, got.Auth().Authenticated(nil))
}
