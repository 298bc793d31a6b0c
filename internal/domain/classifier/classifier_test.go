package classifier_test

import (
	"testing"

	"github.com/bnema/netguard/internal/domain/classifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyProtocol(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want classifier.ProtocolClass
	}{
		{"javascript", "javascript:alert(1)", classifier.ProtocolDangerous},
		{"javascript mixed case", "JaVaScRiPt:alert(1)", classifier.ProtocolDangerous},
		{"javascript padded", "   javascript:alert(1)\n", classifier.ProtocolDangerous},
		{"vbscript", "VBSCRIPT:msgbox", classifier.ProtocolDangerous},
		{"data html", "data:text/html;base64,PHNjcmlwdD4=", classifier.ProtocolDangerous},
		{"data html upper", "DATA:TEXT/HTML,<b>x</b>", classifier.ProtocolDangerous},
		{"file", "file:///etc/passwd", classifier.ProtocolDangerous},
		{"data image is fine", "data:image/png;base64,AAAA", classifier.ProtocolSafe},
		{"https", "https://example.com/", classifier.ProtocolSafe},
		{"empty", "", classifier.ProtocolSafe},
		{"garbage", "%%%::", classifier.ProtocolSafe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.ClassifyProtocol(tt.url))
		})
	}
}

func TestStaticReputationChecker(t *testing.T) {
	c, err := classifier.NewStaticReputationChecker()
	require.NoError(t, err)

	tests := []struct {
		name   string
		url    string
		safe   bool
		reason string
	}{
		{"phishing keyword", "https://PHISHING-site.example/login", false, "phishing"},
		{"malware keyword", "https://example.com/download/malware.bin", false, "malware"},
		{"fake login", "https://fake-login.example.com", false, "fake-login"},
		{"bitly login", "https://bit.ly/abc/login", false, "shortened login link"},
		{"tinyurl account", "https://tinyurl.com/x/account", false, "shortened account link"},
		{"first match wins", "https://phishing.example/malware", false, "phishing"},
		{"bitly without keyword", "https://bit.ly/abc", true, ""},
		{"clean", "https://example.com/", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := c.Check(tt.url)
			assert.Equal(t, tt.safe, v.Safe)
			assert.Equal(t, tt.reason, v.Reason)
		})
	}
}

func TestStaticReputationChecker_ExtraPatterns(t *testing.T) {
	c, err := classifier.NewStaticReputationChecker(`evil\.example`)
	require.NoError(t, err)
	assert.False(t, c.Check("https://EVIL.example/x").Safe)

	_, err = classifier.NewStaticReputationChecker(`(`)
	assert.Error(t, err)
}

func TestShouldUpgradeToHTTPS(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		enabled bool
		want    bool
	}{
		{"plain http", "http://example.com/x", true, true},
		{"disabled", "http://example.com/x", false, false},
		{"already https", "https://example.com/x", true, false},
		{"localhost exempt", "http://localhost:3000/", true, false},
		{"loopback exempt", "http://127.0.0.1:8080/api", true, false},
		{"upper-case scheme is not exactly http://", "HTTP://example.com/", true, false},
		{"unparseable", "http://%zz/", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.ShouldUpgradeToHTTPS(tt.url, tt.enabled))
		})
	}
}

func TestUpgradeToHTTPS_RoundTrip(t *testing.T) {
	upgraded := classifier.UpgradeToHTTPS("http://example.com/x")
	assert.Equal(t, "https://example.com/x", upgraded)
	assert.False(t, classifier.ShouldUpgradeToHTTPS(upgraded, true))
	assert.Equal(t, "https://a.com/", classifier.UpgradeToHTTPS("https://a.com/"))
}

func TestBlocklist_IsAdOrTracker(t *testing.T) {
	b := classifier.NewBlocklist([]string{"doubleclick.net", "Tracker-Free.example ", ""}, true)
	assert.Equal(t, 2, b.Len())

	tests := []struct {
		name    string
		url     string
		enabled bool
		want    bool
	}{
		{"exact host", "https://doubleclick.net/x", true, true},
		{"subdomain via registrable domain", "https://pagead2.doubleclick.net/ads", true, true},
		{"upper-case host", "https://PAGEAD2.DoubleClick.net/ads", true, true},
		{"keyword fallback", "https://example.com/doubleclick-discussion", true, true},
		{"tracker keyword", "https://example.com/js/tracker.js", true, true},
		{"clean", "https://example.com/", true, false},
		{"disabled", "https://doubleclick.net/x", false, false},
		{"file scheme never blocked", "file:///tmp/doubleclick.html", true, false},
		{"unparseable", "http://%zz/doubleclick", true, false},
		{"no host", "mailto:tracker@example.com", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.IsAdOrTracker(tt.url, tt.enabled))
		})
	}
}

func TestBlocklist_KeywordFallbackOff(t *testing.T) {
	b := classifier.NewBlocklist(classifier.DefaultBlocklist, false)

	assert.False(t, b.IsAdOrTracker("https://example.com/doubleclick-discussion", true))
	assert.True(t, b.IsAdOrTracker("https://pagead2.doubleclick.net/ads", true))

	b.SetKeywordFallback(true)
	assert.True(t, b.IsAdOrTracker("https://example.com/doubleclick-discussion", true))
}

func TestBlocklist_IsSideEffectFree(t *testing.T) {
	b := classifier.NewBlocklist(classifier.DefaultBlocklist, true)
	u := "https://pagead2.doubleclick.net/ads"

	first := b.IsAdOrTracker(u, true)
	second := b.IsAdOrTracker(u, true)
	assert.Equal(t, first, second)
}

func TestIsDangerousDownload(t *testing.T) {
	ext, bad := classifier.IsDangerousDownload("setup.EXE")
	assert.True(t, bad)
	assert.Equal(t, ".exe", ext)

	ext, bad = classifier.IsDangerousDownload("report.pdf")
	assert.False(t, bad)
	assert.Equal(t, ".pdf", ext)

	_, bad = classifier.IsDangerousDownload("README")
	assert.False(t, bad)
}

type panickyChecker struct{}

func (panickyChecker) Check(string) classifier.SafetyVerdict { panic("boom") }

func TestClassifier_SafetyNeverPanics(t *testing.T) {
	c := classifier.New(panickyChecker{}, nil)
	assert.True(t, c.ClassifySafety("https://phishing.example").Safe)
}

func TestClassifier_Defaults(t *testing.T) {
	c := classifier.New(nil, nil)
	assert.False(t, c.ClassifySafety("https://phishing.example").Safe)
	assert.True(t, c.IsAdOrTracker("https://ib.adnxs.com/x", true))
	assert.True(t, c.IsInternal("file:///app/index.html"))
	assert.Equal(t, classifier.ProtocolDangerous, c.ClassifyProtocol("javascript:void(0)"))
}
