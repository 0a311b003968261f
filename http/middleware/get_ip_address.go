package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/xy-planning-network/antsy"
)

// InjectIPAddress promotes the request's originating IP address
// to *http.Request.Context under antsy.IpAddrKey.
func InjectIPAddress() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), antsy.IpAddrKey, GetIPAddress(r))
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIPAddress parses the "X-Forwarded-For" and "X-Real-Ip" headers for the IP address
// the request originated from, skipping addresses in private ranges.
// Without a public address in either header, the host of r.RemoteAddr is used.
func GetIPAddress(r *http.Request) string {
	for _, h := range []string{"X-Forwarded-For", "X-Real-Ip"} {
		addresses := strings.Split(r.Header.Get(h), ",")
		// march from right to left until we get a public address
		// that will be the address right before our proxy.
		for i := len(addresses) - 1; i >= 0; i-- {
			ip := strings.TrimSpace(addresses[i])
			parsed := net.ParseIP(ip)
			if parsed == nil || !parsed.IsGlobalUnicast() || parsed.IsPrivate() {
				continue
			}

			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
