package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/netguard/internal/domain/entity"
	"github.com/bnema/netguard/internal/infrastructure/config"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	a, err := NewApp(Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestNewApp_OpensDatabaseLazily(t *testing.T) {
	isolateXDG(t)

	a := newTestApp(t)

	assert.False(t, a.db.IsInitialized())
	assert.Positive(t, a.Classifier.Blocklist().Len())

	_, err := a.PermissionsUC.List(a.Ctx(), "")
	require.NoError(t, err)
	assert.True(t, a.db.IsInitialized())
}

func TestApp_CloseFlushesLifetimeCounter(t *testing.T) {
	isolateXDG(t)

	a, err := NewApp(Options{})
	require.NoError(t, err)
	h, err := a.Sessions.Configure(a.Ctx(), entity.DefaultPartition)
	require.NoError(t, err)

	v := h.BeforeRequest(a.Ctx(), &entity.Request{URL: "https://doubleclick.net/ad.js"})
	require.True(t, v.Cancelled())
	require.NoError(t, a.Close())

	reopened := newTestApp(t)
	total, err := reopened.BlockStats.Total(reopened.Ctx())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestApp_IncognitoBlocksAreNotPersisted(t *testing.T) {
	isolateXDG(t)

	a, err := NewApp(Options{})
	require.NoError(t, err)
	h, err := a.Sessions.Configure(a.Ctx(), entity.IncognitoPartition)
	require.NoError(t, err)

	require.True(t, h.BeforeRequest(a.Ctx(), &entity.Request{URL: "https://doubleclick.net/ad.js"}).Cancelled())
	assert.Equal(t, int64(1), a.AdblockUC.GetStats(a.Ctx()).SessionBlocked)
	require.NoError(t, a.Close())

	reopened := newTestApp(t)
	assert.Zero(t, reopened.AdblockUC.GetStats(reopened.Ctx()).TotalBlocked)
}

func TestApp_ApplyConfig(t *testing.T) {
	isolateXDG(t)
	a := newTestApp(t)
	h, err := a.Sessions.Configure(a.Ctx(), entity.DefaultPartition)
	require.NoError(t, err)

	cfg := a.Config.Get()
	cfg.ContentFiltering.Enabled = false
	cfg.ContentFiltering.KeywordFallback = false
	a.ApplyConfig(cfg)

	assert.False(t, a.Classifier.Blocklist().KeywordFallback())
	assert.False(t, h.Config().Flags.AdBlockEnabled)
	assert.False(t, h.BeforeRequest(a.Ctx(), &entity.Request{URL: "https://doubleclick.net/ad.js"}).Cancelled())
}

func TestApp_ToggleWhileConfigWatched(t *testing.T) {
	isolateXDG(t)
	a := newTestApp(t)
	require.NoError(t, a.Config.Watch())
	h, err := a.Sessions.Configure(a.Ctx(), entity.DefaultPartition)
	require.NoError(t, err)

	enabled, err := a.AdblockUC.Toggle(a.Ctx(), false)
	require.NoError(t, err)

	assert.False(t, enabled)
	assert.False(t, h.Config().Flags.AdBlockEnabled)
	assert.False(t, h.BeforeRequest(a.Ctx(), &entity.Request{URL: "https://doubleclick.net/ad.js"}).Cancelled())
}

func TestApp_StatusHandler(t *testing.T) {
	isolateXDG(t)
	a := newTestApp(t)
	_, err := a.Sessions.Configure(a.Ctx(), entity.DefaultPartition)
	require.NoError(t, err)
	_, err = a.Sessions.Configure(a.Ctx(), entity.IncognitoPartition)
	require.NoError(t, err)

	srv := httptest.NewServer(a.StatusHandler())
	t.Cleanup(srv.Close)

	t.Run("metrics", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/metrics")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, float64(1), gaugeValue(t, a, entity.SessionIncognito))
		assert.Equal(t, float64(1), gaugeValue(t, a, entity.SessionPersistent))
	})

	t.Run("stats", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/stats")
		require.NoError(t, err)
		defer resp.Body.Close()

		var body struct {
			Adblock entity.AdblockStats    `json:"adblock"`
			Posture entity.SecurityPosture `json:"posture"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.Adblock.Enabled)
		assert.NotEmpty(t, body.Posture.Checks)
	})

	t.Run("unknown path", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/nope")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestNewApp_RejectsBadSafeBrowsingPattern(t *testing.T) {
	cfg := defaultTestConfig(t)
	cfg.SafeBrowsing.ExtraPatterns = []string{"("}

	_, err := newClassifier(cfg)

	assert.Error(t, err)
}

func TestNewClassifier_ExtraDomains(t *testing.T) {
	cfg := defaultTestConfig(t)
	cfg.ContentFiltering.ExtraDomains = []string{"ads.example"}

	c, err := newClassifier(cfg)
	require.NoError(t, err)

	assert.True(t, c.IsAdOrTracker("https://ads.example/banner.png", true))
	assert.False(t, c.IsAdOrTracker("https://ads.example/banner.png", false))
}

func defaultTestConfig(t *testing.T) *config.Config {
	t.Helper()
	return config.DefaultConfig()
}

func gaugeValue(t *testing.T, a *App, kind entity.SessionKind) float64 {
	t.Helper()
	return testutil.ToFloat64(a.Metrics.Sessions.WithLabelValues(string(kind)))
}
