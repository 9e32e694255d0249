package logger_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/hackathons"
	"github.com/xy-planning-network/hackathons/logger"
)

func TestLogContextString(t *testing.T) {
	for _, tc := range []struct {
		name string
		lc   logger.LogContext
		want string
	}{
		{"zero-value", logger.LogContext{}, `{}`},
		{"data", logger.LogContext{Data: map[string]any{"test": "data"}}, `{"data":{"test":"data"}}`},
		{"error", logger.LogContext{Error: errors.New("test")}, `{"error":"test"}`},
		{"caller", logger.LogContext{Caller: "web/handler.go:12"}, `{"caller":"web/handler.go:12"}`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.JSONEq(t, tc.want, tc.lc.String())
		})
	}
}

func TestLogContextRequest(t *testing.T) {
	// Arrange
	body := `{"username":"ada","password":"hunter2"}`
	r := httptest.NewRequest(http.MethodPost, "https://example.com/api/login", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	lc := logger.LogContext{Request: r}

	// Act
	s := lc.String()

	// Assert
	require.Contains(t, s, `"method":"POST"`)
	require.Contains(t, s, `"url":"https://example.com/api/login"`)
	require.Contains(t, s, hackathons.LogMaskVal)
	require.NotContains(t, s, "hunter2")

	b, err := io.ReadAll(r.Body)
	require.Nil(t, err)
	require.Equal(t, body, string(b))
}

func TestLogContextRequestForm(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodPost, "https://example.com/login", nil)
	r.Form = url.Values{"username": {"ada"}, "password": {"hunter2"}}
	lc := logger.LogContext{Request: r}

	// Act
	s := lc.String()

	// Assert
	require.Contains(t, s, "ada")
	require.NotContains(t, s, "hunter2")
	require.Equal(t, "hunter2", r.Form.Get("password"))
}
