// Package url provides URL normalisation helpers for the request mediation layer.
package url

import (
	"net"
	"net/url"
	"strings"

	"github.com/bnema/netguard/internal/domain/entity"
)

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
	"ws":    "80",
	"wss":   "443",
}

// Parse parses rawURL after trimming whitespace. It never panics.
func Parse(rawURL string) (*url.URL, bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, false
	}
	return u, true
}

// OriginOf derives the scheme://host[:port] origin of rawURL.
// Default ports are dropped so https://a.com:443/x and https://a.com/y share an origin.
// URLs without a network host (file:, data:, garbage) have no origin.
func OriginOf(rawURL string) entity.Origin {
	u, ok := Parse(rawURL)
	if !ok || u.Host == "" || u.Scheme == "" {
		return ""
	}

	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return ""
	}
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}

	port := u.Port()
	if port == "" || defaultPorts[scheme] == port {
		return entity.Origin(scheme + "://" + host)
	}
	return entity.Origin(scheme + "://" + host + ":" + port)
}

// Host returns the lower-cased hostname of rawURL, or "" when it has none.
func Host(rawURL string) string {
	u, ok := Parse(rawURL)
	if !ok {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

// Scheme returns the lower-cased scheme of rawURL, or "".
func Scheme(rawURL string) string {
	u, ok := Parse(rawURL)
	if !ok {
		return ""
	}
	return strings.ToLower(u.Scheme)
}

// RegistrableDomain approximates the registrable domain with the last two labels.
// It is a heuristic: co.uk style suffixes collapse to the suffix itself.
// IP literals are returned unchanged.
func RegistrableDomain(host string) string {
	host = strings.TrimSuffix(strings.ToLower(host), ".")
	if host == "" || net.ParseIP(host) != nil {
		return host
	}
	labels := strings.Split(host, ".")
	if len(labels) <= 2 {
		return host
	}
	return strings.Join(labels[len(labels)-2:], ".")
}

// SameSite reports whether two URLs share a registrable domain.
// Unknown hosts are never same-site.
func SameSite(a, b string) bool {
	ha, hb := Host(a), Host(b)
	if ha == "" || hb == "" {
		return false
	}
	return RegistrableDomain(ha) == RegistrableDomain(hb)
}

// DisplayHost returns the host to show in prompts, falling back to the origin.
func DisplayHost(rawURL string) string {
	if h := Host(rawURL); h != "" {
		return h
	}
	return string(OriginOf(rawURL))
}
