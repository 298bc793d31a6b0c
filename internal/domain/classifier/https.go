package classifier

import (
	"strings"

	neturl "github.com/bnema/netguard/internal/domain/url"
)

const (
	httpPrefix  = "http://"
	httpsPrefix = "https://"
)

// ShouldUpgradeToHTTPS is true when upgrading is enabled, the URL is plain
// http:// and the host is not a loopback name developers run servers on.
func ShouldUpgradeToHTTPS(rawURL string, enabled bool) bool {
	if !enabled || !strings.HasPrefix(rawURL, httpPrefix) {
		return false
	}
	u, ok := neturl.Parse(rawURL)
	if !ok {
		return false
	}
	switch strings.ToLower(u.Hostname()) {
	case "localhost", "127.0.0.1":
		return false
	}
	return true
}

// UpgradeToHTTPS rewrites the scheme prefix and nothing else.
func UpgradeToHTTPS(rawURL string) string {
	if !strings.HasPrefix(rawURL, httpPrefix) {
		return rawURL
	}
	return httpsPrefix + strings.TrimPrefix(rawURL, httpPrefix)
}
