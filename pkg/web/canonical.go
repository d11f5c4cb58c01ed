package web

import (
	"fmt"
	"net/http"
	"strings"
)

// CanonicalURL derives the externally visible base URL for an inbound
// request. A fixed Override wins when set; otherwise the URL is built
// from forwarding headers with the request itself as fallback.
type CanonicalURL struct {
	Override string
}

// Get returns the canonical base URL for the request, without a
// trailing slash. It returns "" for a nil request with no override.
func (c CanonicalURL) Get(r *http.Request) string {
	if override := strings.TrimRight(strings.TrimSpace(c.Override), "/"); override != "" {
		return override
	}
	if r == nil {
		return ""
	}
	scheme := forwardedProto(r)
	if scheme == "" {
		scheme = "http"
	}
	host := forwardedHost(r)
	if host == "" {
		host = r.Host
	}
	if host == "" {
		return ""
	}
	return fmt.Sprintf("%s://%s", scheme, host)
}

func forwardedProto(r *http.Request) string {
	if proto := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); proto != "" {
		return proto
	}
	if r.TLS != nil {
		return "https"
	}
	return ""
}

func forwardedHost(r *http.Request) string {
	if host := strings.TrimSpace(r.Header.Get("X-Forwarded-Host")); host != "" {
		return host
	}
	return ""
}
