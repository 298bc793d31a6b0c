package proxy_test

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/netguard/internal/application/port/mocks"
	"github.com/bnema/netguard/internal/domain/entity"
	"github.com/bnema/netguard/internal/infrastructure/proxy"
	"github.com/bnema/netguard/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const partition = "persist:netguard"

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// startProxy serves a proxy for partition and returns a client routed through it.
func startProxy(t *testing.T, hooks *mocks.MockSessionHooks) (*httptest.Server, *http.Client) {
	t.Helper()
	engine := proxy.NewEngine()
	if hooks != nil {
		require.NoError(t, engine.AttachSession(testContext(), partition, hooks))
	}

	srv := httptest.NewServer(proxy.NewServer(engine, partition))
	t.Cleanup(srv.Close)

	proxyURL, err := url.Parse(srv.URL)
	require.NoError(t, err)

	client := &http.Client{
		Transport: &http.Transport{Proxy: http.ProxyURL(proxyURL)},
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
		Timeout: 5 * time.Second,
	}
	t.Cleanup(client.CloseIdleConnections)
	return srv, client
}

func allow() entity.Verdict {
	return entity.Verdict{Action: entity.ActionAllow, Stage: entity.StagePassed}
}

func TestServer_ForwardsAllowedRequest(t *testing.T) {
	seen := make(chan http.Header, 1)
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen <- r.Header.Clone()
		w.Header().Set("Set-Cookie", "id=1")
		_, _ = io.WriteString(w, "hello")
	}))
	defer upstream.Close()

	hooks := mocks.NewMockSessionHooks(t)
	hooks.EXPECT().BeforeRequest(mock.Anything, mock.MatchedBy(func(req *entity.Request) bool {
		return req.URL == upstream.URL+"/page" && req.ResourceType == entity.ResourceMainFrame
	})).Return(allow()).Once()
	hooks.EXPECT().BeforeSendHeaders(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req *entity.Request) http.Header {
			h := req.Headers.Clone()
			h.Set("DNT", "1")
			h.Del("Cookie")
			return h
		}).Once()
	hooks.EXPECT().HeadersReceived(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ *entity.Request, h http.Header) http.Header {
			out := h.Clone()
			out.Del("Set-Cookie")
			out.Set("X-Checked", "yes")
			return out
		}).Once()

	_, client := startProxy(t, hooks)

	req, err := http.NewRequest(http.MethodGet, upstream.URL+"/page", nil)
	require.NoError(t, err)
	req.Header.Set("Sec-Fetch-Dest", "document")
	req.Header.Set("Cookie", "tracking=1")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello", string(body))
	sent := <-seen
	assert.Equal(t, "1", sent.Get("DNT"))
	assert.Empty(t, sent.Get("Cookie"))
	assert.Empty(t, resp.Header.Get("Set-Cookie"))
	assert.Equal(t, "yes", resp.Header.Get("X-Checked"))
}

func TestServer_BlockedRequestNeverReachesUpstream(t *testing.T) {
	var hit atomic.Bool
	upstream := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { hit.Store(true) }))
	defer upstream.Close()

	hooks := mocks.NewMockSessionHooks(t)
	hooks.EXPECT().BeforeRequest(mock.Anything, mock.Anything).
		Return(entity.Verdict{Action: entity.ActionCancel, Stage: entity.StageBlockedAsAd}).Once()

	_, client := startProxy(t, hooks)

	resp, err := client.Get(upstream.URL + "/ad.js")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "blocked-ad", resp.Header.Get("X-Netguard-Stage"))
	assert.False(t, hit.Load())
}

func TestServer_RedirectVerdict(t *testing.T) {
	hooks := mocks.NewMockSessionHooks(t)
	hooks.EXPECT().BeforeRequest(mock.Anything, mock.Anything).Return(entity.Verdict{
		Action:      entity.ActionRedirect,
		Stage:       entity.StageUpgraded,
		RedirectURL: "https://example.com/",
	}).Once()

	_, client := startProxy(t, hooks)

	resp, err := client.Get("http://example.com/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	assert.Equal(t, "https://example.com/", resp.Header.Get("Location"))
}

func TestServer_FlagsDownloads(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="setup.exe"`)
		_, _ = io.WriteString(w, "MZ")
	}))
	defer upstream.Close()

	hooks := mocks.NewMockSessionHooks(t)
	hooks.EXPECT().BeforeRequest(mock.Anything, mock.Anything).Return(allow()).Once()
	hooks.EXPECT().BeforeSendHeaders(mock.Anything, mock.Anything).Return(http.Header{}).Once()
	hooks.EXPECT().WillDownload(mock.Anything, upstream.URL+"/dl", "setup.exe").
		Return(entity.DownloadVerdict{Filename: "setup.exe", Extension: ".exe", Dangerous: true}).Once()
	hooks.EXPECT().HeadersReceived(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ *entity.Request, h http.Header) http.Header { return h }).Once()

	_, client := startProxy(t, hooks)

	resp, err := client.Get(upstream.URL + "/dl")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "MZ", string(body), "downloads are flagged, not cancelled")
}

func TestServer_UpstreamUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	deadURL := "http://" + ln.Addr().String() + "/"
	require.NoError(t, ln.Close())

	hooks := mocks.NewMockSessionHooks(t)
	hooks.EXPECT().BeforeRequest(mock.Anything, mock.Anything).Return(allow()).Once()
	hooks.EXPECT().BeforeSendHeaders(mock.Anything, mock.Anything).Return(nil).Once()

	_, client := startProxy(t, hooks)

	resp, err := client.Get(deadURL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestServer_UnconfiguredPartition(t *testing.T) {
	_, client := startProxy(t, nil)

	resp, err := client.Get("http://example.com/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestServer_RejectsOriginFormRequests(t *testing.T) {
	srv, _ := startProxy(t, mocks.NewMockSessionHooks(t))

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// startEcho returns the address of a TCP server echoing everything back.
func startEcho(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			go func() {
				defer c.Close()
				_, _ = io.Copy(c, c)
			}()
		}
	}()
	return ln.Addr().String()
}

func connect(t *testing.T, proxyAddr, target string) (net.Conn, *bufio.Reader, *http.Response) {
	t.Helper()
	conn, err := net.DialTimeout("tcp", proxyAddr, 5*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, conn.SetDeadline(time.Now().Add(5*time.Second)))

	_, err = fmt.Fprintf(conn, "CONNECT %s HTTP/1.1\r\nHost: %s\r\n\r\n", target, target)
	require.NoError(t, err)

	br := bufio.NewReader(conn)
	resp, err := http.ReadResponse(br, &http.Request{Method: http.MethodConnect})
	require.NoError(t, err)
	return conn, br, resp
}

func TestServer_ConnectTunnel(t *testing.T) {
	echo := startEcho(t)

	hooks := mocks.NewMockSessionHooks(t)
	hooks.EXPECT().BeforeRequest(mock.Anything, mock.MatchedBy(func(req *entity.Request) bool {
		return req.Method == http.MethodConnect && req.URL == "https://"+echo+"/"
	})).Return(allow()).Once()

	srv, _ := startProxy(t, hooks)

	conn, br, resp := connect(t, strings.TrimPrefix(srv.URL, "http://"), echo)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, err := io.WriteString(conn, "ping")
	require.NoError(t, err)

	buf := make([]byte, 4)
	_, err = io.ReadFull(br, buf)
	require.NoError(t, err)
	assert.Equal(t, "ping", string(buf))
}

func TestServer_ConnectBlocked(t *testing.T) {
	hooks := mocks.NewMockSessionHooks(t)
	hooks.EXPECT().BeforeRequest(mock.Anything, mock.MatchedBy(func(req *entity.Request) bool {
		return req.URL == "https://doubleclick.net/"
	})).Return(entity.Verdict{Action: entity.ActionCancel, Stage: entity.StageBlockedAsAd}).Once()

	srv, _ := startProxy(t, hooks)

	_, _, resp := connect(t, strings.TrimPrefix(srv.URL, "http://"), "doubleclick.net:443")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestEngine_AttachSession(t *testing.T) {
	ctx := testContext()
	engine := proxy.NewEngine()
	hooks := mocks.NewMockSessionHooks(t)

	require.NoError(t, engine.AttachSession(ctx, partition, hooks))
	require.NoError(t, engine.AttachSession(ctx, "incognito", hooks))

	err := engine.AttachSession(ctx, partition, hooks)
	assert.ErrorIs(t, err, proxy.ErrAlreadyAttached)
	assert.Error(t, engine.AttachSession(ctx, "other", nil))

	got, ok := engine.Hooks(partition)
	assert.True(t, ok)
	assert.Same(t, hooks, got)

	_, ok = engine.Hooks("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"incognito", partition}, engine.Partitions())
}

func TestServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- proxy.Serve(ctx, ln, http.NotFoundHandler())
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
