package req_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/hackathons/domain"
	"github.com/xy-planning-network/hackathons/http/req"
)

func TestParseBody(t *testing.T) {
	// Arrange
	type test struct {
		A string `json:"a"`
		B int64  `json:"b"`
		C string `json:"-"`
	}
	var output test

	// Act
	err := req.ParseBody(strings.NewReader(`{"a":"hello"}`), struct{}{})

	// Assert
	require.ErrorIs(t, err, req.ErrBadAny)

	// Arrange
	b := bytes.NewBuffer([]byte{'\x00'})

	// Act
	err = req.ParseBody(b, &output)

	// Assert
	require.ErrorIs(t, err, req.ErrBadFormat)

	// Act
	err = req.ParseBody(strings.NewReader(`{"a":"hello","b":20,"c":"ignored"}`), &output)

	// Assert
	require.Nil(t, err)
	require.Equal(t, test{A: "hello", B: 20}, output)
}

func TestParseForm(t *testing.T) {
	tcs := []struct {
		name     string
		body     string
		expected domain.Form
		err      error
	}{
		{"empty-object", `{}`, domain.Form{}, nil},
		{"object", `{"title":"Hack","max_participants":10}`, domain.Form{"title": "Hack", "max_participants": float64(10)}, nil},
		{"null", `null`, nil, req.ErrBadFormat},
		{"array", `[1]`, nil, req.ErrBadFormat},
		{"garbage", `{`, nil, req.ErrBadFormat},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			r := httptest.NewRequest(http.MethodPost, "/api/hackathons", strings.NewReader(tc.body))

			// Act
			actual, err := req.ParseForm(r)

			// Assert
			require.ErrorIs(t, err, tc.err)
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestParseID(t *testing.T) {
	tcs := []struct {
		name     string
		vars     map[string]string
		expected domain.ID
		err      error
	}{
		{"no-vars", nil, 0, req.ErrNoParam},
		{"other-var", map[string]string{"slug": "5"}, 0, req.ErrNoParam},
		{"not-a-number", map[string]string{"id": "five"}, 0, req.ErrBadFormat},
		{"number", map[string]string{"id": "5"}, domain.ID(5), nil},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			r := httptest.NewRequest(http.MethodGet, "/api/hackathons/x", nil)
			if tc.vars != nil {
				r = mux.SetURLVars(r, tc.vars)
			}

			// Act
			actual, err := req.ParseID(r, "id")

			// Assert
			require.ErrorIs(t, err, tc.err)
			require.Equal(t, tc.expected, actual)
		})
	}
}
