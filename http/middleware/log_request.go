package middleware

import (
	"log/slog"
	"net/http"

	"github.com/xy-planning-network/hackathons"
)

// A LogRequestRecord is the set of attributes LogRequest logs for each request.
type LogRequestRecord struct {
	BodySize       int    `json:"bodySize"`
	Host           string `json:"host"`
	ID             string `json:"requestID"`
	IPAddr         string `json:"ipAddr,omitempty"`
	Method         string `json:"method"`
	Path           string `json:"path"`
	Protocol       string `json:"protocol"`
	Referrer       string `json:"referrer,omitempty"`
	ReqContentType string `json:"reqContentType,omitempty"`
	Scheme         string `json:"scheme,omitempty"`
	Status         int    `json:"status"`
	URI            string `json:"uri"`
	UserAgent      string `json:"userAgent,omitempty"`
}

func (rec LogRequestRecord) attrs() []slog.Attr {
	attrs := []slog.Attr{
		slog.Any(hackathons.LogKindKey, hackathons.HTTPLogKind),
		slog.Int("bodySize", rec.BodySize),
		slog.String("host", rec.Host),
		slog.String("requestID", rec.ID),
		slog.String("method", rec.Method),
		slog.String("path", rec.Path),
		slog.String("protocol", rec.Protocol),
		slog.Int("status", rec.Status),
		slog.String("uri", rec.URI),
	}

	for _, a := range []slog.Attr{
		slog.String("ipAddr", rec.IPAddr),
		slog.String("referrer", rec.Referrer),
		slog.String("reqContentType", rec.ReqContentType),
		slog.String("scheme", rec.Scheme),
		slog.String("userAgent", rec.UserAgent),
	} {
		if a.Value.String() != "" {
			attrs = append(attrs, a)
		}
	}

	return attrs
}

// LogRequest logs a LogRequestRecord for each request once it has been handled.
//
// LogRequest scrubs the values in the query string for the following keys:
// - password
//
// If l is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(l *slog.Logger) Adapter {
	if l == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w}
			h.ServeHTTP(sw, r)

			q := r.URL.Query()
			hackathons.Mask(q, "password")

			uri := r.URL.Path
			if query := q.Encode(); query != "" {
				uri += "?" + query
			}

			rec := LogRequestRecord{
				BodySize:       sw.size,
				Host:           r.Host,
				Method:         r.Method,
				Path:           r.URL.Path,
				Protocol:       r.Proto,
				Referrer:       r.Referer(),
				ReqContentType: r.Header.Get("Content-Type"),
				Scheme:         r.URL.Scheme,
				Status:         sw.Status(),
				URI:            uri,
				UserAgent:      r.UserAgent(),
			}

			rec.ID, _ = r.Context().Value(hackathons.RequestIDKey).(string)
			rec.IPAddr, _ = r.Context().Value(hackathons.IpAddrKey).(string)

			l.LogAttrs(r.Context(), slog.LevelInfo, "", rec.attrs()...)
		})
	}
}

// A statusWriter records the status code and number of bytes written through it.
type statusWriter struct {
	http.ResponseWriter
	size   int
	status int
}

func (sw *statusWriter) Status() int {
	if sw.status == 0 {
		return http.StatusOK
	}

	return sw.status
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	if sw.status == 0 {
		sw.status = http.StatusOK
	}

	n, err := sw.ResponseWriter.Write(b)
	sw.size += n
	return n, err
}

func (sw *statusWriter) WriteHeader(code int) {
	if sw.status == 0 {
		sw.status = code
	}

	sw.ResponseWriter.WriteHeader(code)
}

// Unwrap exposes the underlying http.ResponseWriter to an http.ResponseController.
func (sw *statusWriter) Unwrap() http.ResponseWriter { return sw.ResponseWriter }
