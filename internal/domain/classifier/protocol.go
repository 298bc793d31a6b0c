// Package classifier holds the pure URL checks the request pipeline is built from.
// Nothing here performs I/O or keeps mutable state beyond construction options.
package classifier

import "strings"

// ProtocolClass is the result of the scheme check.
type ProtocolClass int

const (
	ProtocolSafe ProtocolClass = iota
	ProtocolDangerous
)

func (c ProtocolClass) String() string {
	if c == ProtocolDangerous {
		return "dangerous"
	}
	return "safe"
}

// DangerousProtocols are scheme prefixes rejected before any other rule runs.
var DangerousProtocols = []string{"javascript:", "vbscript:", "data:text/html", "file:"}

// ClassifyProtocol rejects URLs whose scheme prefix is on the denylist.
// Comparison is case-insensitive and ignores surrounding whitespace.
func ClassifyProtocol(rawURL string) ProtocolClass {
	u := strings.ToLower(strings.TrimSpace(rawURL))
	for _, proto := range DangerousProtocols {
		if strings.HasPrefix(u, proto) {
			return ProtocolDangerous
		}
	}
	return ProtocolSafe
}

// IsInternal reports whether rawURL is one of the browser's own pages.
// Internal pages are exempt from every other pipeline rule.
func IsInternal(rawURL string) bool {
	return strings.HasPrefix(rawURL, "file://")
}
