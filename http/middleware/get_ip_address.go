package middleware

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/xy-planning-network/hackathons"
)

// unknownIP stands in for a client whose address cannot be told.
const unknownIP = "0.0.0.0"

// proxyHeaders are read, in order, for the chain of addresses a request was forwarded through.
var proxyHeaders = []string{"X-Forwarded-For", "X-Real-Ip"}

// nonPublic holds the IANA special-purpose ranges a client address is never taken from,
// beyond what netip.Addr.IsPrivate covers.
var nonPublic = []netip.Prefix{
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("198.18.0.0/15"),
}

// InjectIPAddress stores the client's IP address, as ClientIP tells it,
// in *http.Request.Context under hackathons.IpAddrKey.
func InjectIPAddress() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), hackathons.IpAddrKey, ClientIP(r))))
		})
	}
}

// ClientIP tells the IP address of the client making r.
//
// The forwarding headers are walked right to left, so the address taken
// is the last public one before the front's own proxies.
// Without a public address in them, the connection's remote address is used if public,
// and "0.0.0.0" otherwise.
func ClientIP(r *http.Request) string {
	if ip, ok := forwardedIP(r.Header); ok {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	if addr, ok := publicAddr(host); ok {
		return addr.String()
	}

	return unknownIP
}

func forwardedIP(hm http.Header) (string, bool) {
	for _, h := range proxyHeaders {
		hops := strings.Split(hm.Get(h), ",")
		for i := len(hops) - 1; i >= 0; i-- {
			if addr, ok := publicAddr(hops[i]); ok {
				return addr.String(), true
			}
		}
	}

	return "", false
}

// publicAddr parses s as an IP address routable on the public internet.
func publicAddr(s string) (netip.Addr, bool) {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return netip.Addr{}, false
	}

	addr = addr.Unmap()
	if !addr.IsGlobalUnicast() || addr.IsPrivate() {
		return netip.Addr{}, false
	}

	for _, p := range nonPublic {
		if p.Contains(addr) {
			return netip.Addr{}, false
		}
	}

	return addr, true
}
