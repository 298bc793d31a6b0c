package cli

import (
	"encoding/json"
	"net/http"

	"github.com/bnema/netguard/internal/application/usecase"
	"github.com/bnema/netguard/internal/domain/entity"
	"github.com/bnema/netguard/internal/infrastructure/monitoring"
	"github.com/bnema/netguard/internal/logging"
)

// StatusHandler serves Prometheus metrics on /metrics and the shield
// counters and security posture as JSON on /stats.
func (a *App) StatusHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", a.Metrics.Handler(a.refreshMetrics))
	mux.HandleFunc("GET /stats", func(w http.ResponseWriter, r *http.Request) {
		body := struct {
			Adblock entity.AdblockStats    `json:"adblock"`
			Posture entity.SecurityPosture `json:"posture"`
		}{
			Adblock: a.AdblockUC.GetStats(r.Context()),
			Posture: usecase.GetSecurityPosture(a.Config.Snapshot()),
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logging.FromContext(r.Context()).Debug().Err(err).Msg("write stats response")
		}
	})
	return mux
}

func (a *App) refreshMetrics(m *monitoring.Metrics) {
	counts := map[entity.SessionKind]int{
		entity.SessionPersistent: 0,
		entity.SessionIncognito:  0,
	}
	for _, h := range a.Sessions.Sessions() {
		counts[h.Kind()]++
	}
	for kind, n := range counts {
		m.SetSessions(kind, n)
	}
	m.SetPendingPrompts(a.Prompts.Pending())
}
