package monitoring_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bnema/netguard/internal/domain/entity"
	"github.com/bnema/netguard/internal/infrastructure/monitoring"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := monitoring.NewMetrics(prometheus.NewRegistry())

	m.ObserveDecision(entity.SessionPersistent, entity.StageBlockedAsAd)
	m.ObserveDecision(entity.SessionPersistent, entity.StageBlockedAsAd)
	m.ObserveDecision(entity.SessionIncognito, entity.StagePassed)
	m.ObservePrompt(entity.PermissionGeolocation, true)
	m.ObservePrompt(entity.PermissionGeolocation, false)
	m.ObserveSecurityEvent(entity.SecurityEventSafeBrowsing)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Decisions.WithLabelValues("persistent", "blocked-ad")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Decisions.WithLabelValues("incognito", "passed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Prompts.WithLabelValues("geolocation", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Prompts.WithLabelValues("geolocation", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SecurityEvents.WithLabelValues("safe-browsing")))
}

func TestMetrics_Gauges(t *testing.T) {
	m := monitoring.NewMetrics(prometheus.NewRegistry())

	m.SetSessions(entity.SessionIncognito, 2)
	m.SetPendingPrompts(3)
	m.SetPendingPrompts(1)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Sessions.WithLabelValues("incognito")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PendingPrompts))
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		monitoring.NewMetrics(prometheus.NewRegistry())
		monitoring.NewMetrics(prometheus.NewRegistry())
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := monitoring.NewMetrics(prometheus.NewRegistry())
	m.ObserveSecurityEvent(entity.SecurityEventCertificate)

	srv := httptest.NewServer(m.Handler(func(m *monitoring.Metrics) {
		m.SetPendingPrompts(4)
	}))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `netguard_security_events_total{kind="certificate"} 1`)
	assert.Contains(t, string(body), `netguard_permission_prompts_pending 4`)
}
