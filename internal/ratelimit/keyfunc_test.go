package ratelimit

import (
	"net/http/httptest"
	"testing"

	"github.com/rabigarip/priceright/internal/tester"
)

func TestClientKey_ForwardedFor(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/analyze", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1, 10.0.0.2")
	tester.Eq(t, ClientKey(r), "203.0.113.9")
}

func TestClientKey_ForwardedForWhitespace(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/analyze", nil)
	r.Header.Set("X-Forwarded-For", "  203.0.113.9  ,10.0.0.1")
	tester.Eq(t, ClientKey(r), "203.0.113.9")
}

func TestClientKey_FallsBackToRemoteAddr(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/analyze", nil)
	r.RemoteAddr = "198.51.100.7:61234"
	tester.Eq(t, ClientKey(r), "198.51.100.7")
}

func TestClientKey_RemoteAddrWithoutPort(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/analyze", nil)
	r.RemoteAddr = "198.51.100.7"
	tester.Eq(t, ClientKey(r), "198.51.100.7")
}
