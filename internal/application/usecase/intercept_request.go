package usecase

import (
	"context"
	"net/http"

	"github.com/bnema/netguard/internal/application/port"
	"github.com/bnema/netguard/internal/domain/classifier"
	"github.com/bnema/netguard/internal/domain/entity"
	"github.com/bnema/netguard/internal/logging"
)

// Header names set on allowed requests.
const (
	HeaderUserAgent = "User-Agent"
	HeaderDNT       = "DNT"
	HeaderGPC       = "Sec-GPC"
)

const logURLLen = 80

// BlockRecorder is told about every request the pipeline blocked as an ad or tracker.
type BlockRecorder interface {
	RecordBlocked()
}

// RequestInterceptor is the per-request policy pipeline.
// The order of checks is fixed: internal pages, dangerous protocols,
// safe browsing, HTTPS upgrade, ad blocking. Reordering them changes
// what is guaranteed, e.g. a javascript: URL must never reach the ad-block stage.
type RequestInterceptor struct {
	classifier port.URLClassifier
	events     port.SecurityEventPublisher
	metrics    port.InterceptMetrics
}

// NewRequestInterceptor creates a new request interceptor.
func NewRequestInterceptor(
	urlClassifier port.URLClassifier,
	events port.SecurityEventPublisher,
	metrics port.InterceptMetrics,
) *RequestInterceptor {
	if urlClassifier == nil {
		urlClassifier = classifier.New(nil, nil)
	}
	if events == nil {
		events = port.NopSecurityEventPublisher{}
	}
	if metrics == nil {
		metrics = port.NopMetrics{}
	}
	return &RequestInterceptor{
		classifier: urlClassifier,
		events:     events,
		metrics:    metrics,
	}
}

// Decide evaluates req against cfg. It has no side effects and performs no I/O.
func (i *RequestInterceptor) Decide(req *entity.Request, cfg entity.SessionConfig) entity.Verdict {
	if req == nil {
		return entity.Verdict{Action: entity.ActionAllow, Stage: entity.StagePassed}
	}
	rawURL := req.URL

	if i.classifier.IsInternal(rawURL) {
		return entity.Verdict{
			Action:  entity.ActionAllow,
			Stage:   entity.StageInternal,
			Headers: cloneHeader(req.Headers),
		}
	}

	if i.classifier.ClassifyProtocol(rawURL) == classifier.ProtocolDangerous {
		return entity.Verdict{Action: entity.ActionCancel, Stage: entity.StageRejectedProtocol}
	}

	if safety := i.classifier.ClassifySafety(rawURL); !safety.Safe {
		return entity.Verdict{
			Action: entity.ActionCancel,
			Stage:  entity.StageRejectedUnsafe,
			Reason: safety.Reason,
		}
	}

	if i.classifier.ShouldUpgradeToHTTPS(rawURL, cfg.Flags.HTTPSUpgradeEnabled) {
		return entity.Verdict{
			Action:      entity.ActionRedirect,
			Stage:       entity.StageUpgraded,
			RedirectURL: classifier.UpgradeToHTTPS(rawURL),
		}
	}

	if i.classifier.IsAdOrTracker(rawURL, cfg.Flags.AdBlockEnabled) {
		return entity.Verdict{Action: entity.ActionCancel, Stage: entity.StageBlockedAsAd}
	}

	return entity.Verdict{
		Action:  entity.ActionAllow,
		Stage:   entity.StagePassed,
		Headers: PrivacyHeaders(req.Headers, cfg),
	}
}

// Intercept runs Decide and applies its side effects: the safe-browsing event,
// the block counter and metrics.
func (i *RequestInterceptor) Intercept(
	ctx context.Context,
	cfg entity.SessionConfig,
	req *entity.Request,
	blocked BlockRecorder,
) entity.Verdict {
	v := i.Decide(req, cfg)
	i.metrics.ObserveDecision(cfg.Kind, v.Stage)

	if req == nil {
		return v
	}
	log := logging.FromContext(ctx)

	switch v.Stage {
	case entity.StageRejectedProtocol:
		log.Warn().
			Str("partition", cfg.Partition).
			Str("url", entity.TruncateURL(req.URL, logURLLen)).
			Msg("blocked dangerous protocol")
	case entity.StageRejectedUnsafe:
		log.Warn().
			Str("partition", cfg.Partition).
			Str("url", entity.TruncateURL(req.URL, logURLLen)).
			Str("reason", v.Reason).
			Msg("safe browsing blocked request")
		i.publish(cfg, entity.NewSecurityEvent(entity.SecurityEventSafeBrowsing, req.URL, map[string]string{
			"reason": v.Reason,
		}))
	case entity.StageUpgraded:
		log.Debug().
			Str("partition", cfg.Partition).
			Str("redirect", v.RedirectURL).
			Msg("upgrading request to https")
	case entity.StageBlockedAsAd:
		if blocked != nil {
			blocked.RecordBlocked()
		}
		log.Debug().
			Str("partition", cfg.Partition).
			Str("url", entity.TruncateURL(req.URL, logURLLen)).
			Msg("blocked ad or tracker")
	}

	return v
}

// ScreenPopup decides what happens to a window.open request.
func (i *RequestInterceptor) ScreenPopup(ctx context.Context, cfg entity.SessionConfig, rawURL string) entity.PopupAction {
	if i.classifier.ClassifyProtocol(rawURL) == classifier.ProtocolDangerous {
		logging.FromContext(ctx).Warn().
			Str("partition", cfg.Partition).
			Str("url", entity.TruncateURL(rawURL, logURLLen)).
			Msg("blocked popup with dangerous protocol")
		i.publish(cfg, entity.NewSecurityEvent(entity.SecurityEventPopupBlocked, rawURL, nil))
		return entity.PopupDeny
	}
	return entity.PopupOpenInTab
}

// ScreenDownload flags downloads that can execute code when opened.
// The download is not cancelled; the event lets the UI warn the user.
func (i *RequestInterceptor) ScreenDownload(
	ctx context.Context,
	cfg entity.SessionConfig,
	rawURL, filename string,
) entity.DownloadVerdict {
	ext, dangerous := classifier.IsDangerousDownload(filename)
	verdict := entity.DownloadVerdict{Filename: filename, Extension: ext, Dangerous: dangerous}
	if !dangerous {
		return verdict
	}

	logging.FromContext(ctx).Warn().
		Str("partition", cfg.Partition).
		Str("filename", filename).
		Msg("dangerous download")
	i.publish(cfg, entity.NewSecurityEvent(entity.SecurityEventDangerousDownload, rawURL, map[string]string{
		"filename":  filename,
		"extension": ext,
	}))
	return verdict
}

func (i *RequestInterceptor) publish(cfg entity.SessionConfig, ev entity.SecurityEvent) {
	ev.Partition = cfg.Partition
	ev.Incognito = cfg.IsIncognito()
	i.metrics.ObserveSecurityEvent(ev.Kind)
	i.events.Publish(ev)
}

// PrivacyHeaders returns a copy of h with the session's privacy headers applied.
func PrivacyHeaders(h http.Header, cfg entity.SessionConfig) http.Header {
	out := cloneHeader(h)
	if cfg.UserAgent != "" {
		out.Set(HeaderUserAgent, cfg.UserAgent)
		for name, value := range cfg.ClientHints {
			out.Set(name, value)
		}
	}
	if cfg.Flags.DoNotTrack {
		out.Set(HeaderDNT, "1")
	}
	if cfg.Flags.FingerprintProtection {
		out.Set(HeaderGPC, "1")
	}
	return out
}

func cloneHeader(h http.Header) http.Header {
	if h == nil {
		return make(http.Header)
	}
	return h.Clone()
}
