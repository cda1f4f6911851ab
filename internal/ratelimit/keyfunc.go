package ratelimit

import (
	"net"
	"net/http"
	"strings"
)

// ClientKey derives a client identifier for admission control: the first
// comma-separated element of X-Forwarded-For (set by a trusted proxy),
// falling back to the host part of the transport peer address.
func ClientKey(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if ip := strings.TrimSpace(strings.SplitN(xff, ",", 2)[0]); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
