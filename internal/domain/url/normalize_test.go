package url

import (
	"testing"

	"github.com/bnema/netguard/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestOriginOf(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  entity.Origin
	}{
		{name: "plain https", input: "https://example.com/a/b?c=d", want: "https://example.com"},
		{name: "path does not matter", input: "https://example.com/other", want: "https://example.com"},
		{name: "default port dropped", input: "https://example.com:443/x", want: "https://example.com"},
		{name: "custom port kept", input: "http://localhost:3000/", want: "http://localhost:3000"},
		{name: "case folded", input: "HTTPS://Example.COM/Path", want: "https://example.com"},
		{name: "whitespace trimmed", input: "  https://a.com/x  ", want: "https://a.com"},
		{name: "ipv6", input: "http://[::1]:8080/", want: "http://[::1]:8080"},
		{name: "file has no origin", input: "file:///etc/passwd", want: ""},
		{name: "garbage", input: "%%%", want: ""},
		{name: "empty", input: "", want: ""},
		{name: "no scheme", input: "example.com/x", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OriginOf(tt.input))
		})
	}
}

func TestOriginOf_SameOriginDifferentPaths(t *testing.T) {
	assert.Equal(t, OriginOf("https://a.com/one"), OriginOf("https://a.com/two?q=1#frag"))
}

func TestRegistrableDomain(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{"pagead2.doubleclick.net", "doubleclick.net"},
		{"doubleclick.net", "doubleclick.net"},
		{"a.b.c.example.org", "example.org"},
		{"localhost", "localhost"},
		{"127.0.0.1", "127.0.0.1"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			assert.Equal(t, tt.want, RegistrableDomain(tt.host))
		})
	}
}

func TestSameSite(t *testing.T) {
	assert.True(t, SameSite("https://www.example.com/", "https://cdn.example.com/x.js"))
	assert.False(t, SameSite("https://example.com/", "https://tracker.net/p.gif"))
	assert.False(t, SameSite("", "https://tracker.net/p.gif"))
}

func TestHostAndScheme(t *testing.T) {
	assert.Equal(t, "example.com", Host("https://Example.com:8443/x"))
	assert.Equal(t, "", Host("::not a url"))
	assert.Equal(t, "https", Scheme("HTTPS://x"))
	assert.Equal(t, "this-host.org", DisplayHost("https://this-host.org/x"))
}
