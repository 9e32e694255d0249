package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"runtime"

	"github.com/xy-planning-network/hackathons"
)

const callerTmpl = "%s:%d"

var _ slog.LogValuer = LogContext{}

// A LogContext provides additional information and configuration
// for a [Logger] method that cannot be tersely captured in the message itself.
type LogContext struct {
	// Caller overrides the caller file and line number with the provided value.
	//
	// Caller helps goroutines identify the callers of the process that spawned it.
	Caller string

	// Data is any information pertinent at the time of the logging event.
	Data map[string]any

	// Error is the error that may or may not have instigated a logging event.
	Error error

	// Request is the *http.Request that may or may not have been open during the logging event.
	Request *http.Request
}

// LogValue groups the non-zero fields of the LogContext.
//
// Passwords in a request's form are masked.
// A JSON request body is included and put back so handlers can still read it.
//
// LogValue implements [log/slog.LogValuer].
func (lc LogContext) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0)
	if lc.Caller != "" {
		attrs = append(attrs, slog.String("caller", lc.Caller))
	}

	if lc.Data != nil {
		attrs = append(attrs, slog.Any("data", lc.Data))
	}

	if lc.Error != nil {
		attrs = append(attrs, slog.String("error", lc.Error.Error()))
	}

	if lc.Request != nil {
		attrs = append(attrs, slog.Any("request", requestValue(lc.Request)))
	}

	return slog.GroupValue(attrs...)
}

// String stringifies LogContext as a JSON representation of it.
func (lc LogContext) String() string {
	m := make(map[string]any)
	for _, a := range lc.LogValue().Group() {
		m[a.Key] = a.Value.Resolve().Any()
	}

	b, err := json.Marshal(m)
	if err != nil {
		return ""
	}

	return string(b)
}

func requestValue(r *http.Request) slog.Value {
	attrs := []slog.Attr{
		slog.String("method", r.Method),
		slog.String("url", r.URL.String()),
	}

	if ct := r.Header.Get("Content-Type"); ct == "application/json" && r.Body != nil {
		j := make(map[string]any)
		b := new(bytes.Buffer)
		orig := r.Body
		if err := json.NewDecoder(io.TeeReader(orig, b)).Decode(&j); err == nil {
			if _, ok := j["password"]; ok {
				j["password"] = hackathons.LogMaskVal
			}

			attrs = append(attrs, slog.Any("json", j))
		}

		r.Body = struct {
			io.Reader
			io.Closer
		}{io.MultiReader(b, orig), orig}
	}

	if r.Form != nil {
		form := make(map[string][]string, len(r.Form))
		for k, v := range r.Form {
			form[k] = v
		}

		hackathons.Mask(form, "password")
		attrs = append(attrs, slog.Any("form", form))
	}

	return slog.GroupValue(attrs...)
}

// CurrentCaller retrieves the caller for the caller of CurrentCaller,
// formatted for using as a value in LogContext.Caller.
//
//	myFunc() { 		<- returns this caller
//		func() {
//			CurrentCaller()
//		}()
//	}
func CurrentCaller() string {
	_, file, line, _ := runtime.Caller(2)
	return fmt.Sprintf(callerTmpl, immediateFilepath(file), line)
}

// immediateFilepath trims file down to its parent directory and name:
//
//	/home/dlk/my-project/internal/internal.go => internal/internal.go
func immediateFilepath(file string) string {
	dir, base := filepath.Split(file)
	return filepath.Join(filepath.Base(dir), base)
}
