package classifier

import (
	"strings"
	"sync/atomic"

	neturl "github.com/bnema/netguard/internal/domain/url"
)

// DefaultBlocklist is the built-in ad/tracker domain list.
var DefaultBlocklist = []string{
	"google-analytics.com", "analytics.google.com", "googletagmanager.com",
	"doubleclick.net", "adservice.google.com", "pagead2.googlesyndication.com",
	"quantserve.com", "pixel.quantserve.com", "scorecardresearch.com",
	"adnxs.com", "ib.adnxs.com", "amazon-adsystem.com", "aax.amazon-adsystem.com",
	"taboola.com", "cdn.taboola.com", "outbrain.com", "widgets.outbrain.com",
	"openx.net", "pubmatic.com", "rubiconproject.com", "criteo.com",
	"casalemedia.com", "yieldmo.com", "indexww.com", "advertising.com",
	"ad.mail.ru", "top-fwz1.mail.ru", "counter.yadro.ru",
}

// FallbackKeywords are matched anywhere in the URL when keyword fallback is on.
// This is deliberately permissive and blocks pages merely mentioning them.
var FallbackKeywords = []string{"doubleclick", "tracker"}

// Blocklist is a read-only set of ad/tracker domains.
type Blocklist struct {
	domains         map[string]struct{}
	keywordFallback atomic.Bool
}

// NewBlocklist builds a blocklist from domains. Entries are lower-cased and
// trimmed; empty entries are ignored.
func NewBlocklist(domains []string, keywordFallback bool) *Blocklist {
	b := &Blocklist{domains: make(map[string]struct{}, len(domains))}
	for _, d := range domains {
		d = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(d)), ".")
		if d != "" {
			b.domains[d] = struct{}{}
		}
	}
	b.keywordFallback.Store(keywordFallback)
	return b
}

// SetKeywordFallback toggles the substring fallback ("aggressive mode").
func (b *Blocklist) SetKeywordFallback(on bool) {
	b.keywordFallback.Store(on)
}

// KeywordFallback reports whether the substring fallback is active.
func (b *Blocklist) KeywordFallback() bool {
	return b.keywordFallback.Load()
}

// Len returns the number of domains.
func (b *Blocklist) Len() int {
	return len(b.domains)
}

// Contains reports an exact domain entry.
func (b *Blocklist) Contains(host string) bool {
	_, ok := b.domains[host]
	return ok
}

// IsAdOrTracker classifies rawURL. It is side-effect free.
// Order: exact host, registrable domain, then keyword fallback.
func (b *Blocklist) IsAdOrTracker(rawURL string, enabled bool) bool {
	if !enabled {
		return false
	}
	u, ok := neturl.Parse(rawURL)
	if !ok || strings.EqualFold(u.Scheme, "file") {
		return false
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return false
	}

	if b.Contains(host) {
		return true
	}
	if b.Contains(neturl.RegistrableDomain(host)) {
		return true
	}
	if !b.KeywordFallback() {
		return false
	}
	for _, kw := range FallbackKeywords {
		if strings.Contains(rawURL, kw) {
			return true
		}
	}
	return false
}
