package usecase_test

import (
	"net/http"
	"strings"
	"testing"

	portmocks "github.com/bnema/netguard/internal/application/port/mocks"
	"github.com/bnema/netguard/internal/application/usecase"
	"github.com/bnema/netguard/internal/domain/classifier"
	"github.com/bnema/netguard/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func persistentConfig(flags entity.PrivacyFlags) entity.SessionConfig {
	return entity.SessionConfig{
		Partition: entity.DefaultPartition,
		Kind:      entity.SessionPersistent,
		Flags:     flags,
	}
}

func allFlags() entity.PrivacyFlags {
	return entity.PrivacyFlags{
		AdBlockEnabled:         true,
		HTTPSUpgradeEnabled:    true,
		DoNotTrack:             true,
		BlockThirdPartyCookies: true,
		FingerprintProtection:  true,
	}
}

func TestRequestInterceptor_DangerousProtocolShortCircuits(t *testing.T) {
	urls := []string{
		"javascript:alert(1)",
		"JAVASCRIPT:alert(1)",
		"  VbScript:msgbox(1)",
		"Data:Text/Html,<script>x</script>",
		"\tjavascript:void(0)\n",
	}

	for _, u := range urls {
		t.Run(u, func(t *testing.T) {
			spy := portmocks.NewMockURLClassifier(t)
			spy.EXPECT().IsInternal(u).Return(false).Once()
			spy.EXPECT().ClassifyProtocol(u).Return(classifier.ClassifyProtocol(u)).Once()

			interceptor := usecase.NewRequestInterceptor(spy, nil, nil)
			v := interceptor.Decide(&entity.Request{URL: u}, persistentConfig(allFlags()))

			assert.Equal(t, entity.ActionCancel, v.Action)
			assert.Equal(t, entity.StageRejectedProtocol, v.Stage)
			spy.AssertNotCalled(t, "ClassifySafety", mock.Anything)
			spy.AssertNotCalled(t, "ShouldUpgradeToHTTPS", mock.Anything, mock.Anything)
			spy.AssertNotCalled(t, "IsAdOrTracker", mock.Anything, mock.Anything)
		})
	}
}

func TestRequestInterceptor_DangerousProtocolEmitsNoEvent(t *testing.T) {
	ctx := testContext()
	events := portmocks.NewMockSecurityEventPublisher(t)
	rec := &countingRecorder{}

	interceptor := usecase.NewRequestInterceptor(nil, events, nil)
	v := interceptor.Intercept(ctx, persistentConfig(allFlags()), &entity.Request{URL: "javascript:tracker()"}, rec)

	assert.True(t, v.Cancelled())
	assert.Zero(t, rec.n.Load())
	events.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestRequestInterceptor_SafeBrowsingEmitsExactlyOneEvent(t *testing.T) {
	ctx := testContext()
	events := portmocks.NewMockSecurityEventPublisher(t)

	var got entity.SecurityEvent
	events.EXPECT().Publish(mock.Anything).Run(func(ev entity.SecurityEvent) {
		got = ev
	}).Once()

	interceptor := usecase.NewRequestInterceptor(nil, events, nil)
	cfg := persistentConfig(allFlags())
	v := interceptor.Intercept(ctx, cfg, &entity.Request{URL: "http://login.phishing-example.com/account"}, nil)

	assert.Equal(t, entity.ActionCancel, v.Action)
	assert.Equal(t, entity.StageRejectedUnsafe, v.Stage)
	assert.Equal(t, "phishing", v.Reason)

	assert.Equal(t, entity.SecurityEventSafeBrowsing, got.Kind)
	assert.Equal(t, "phishing", got.Detail["reason"])
	assert.Equal(t, entity.DefaultPartition, got.Partition)
	assert.NotEmpty(t, got.ID)
}

func TestRequestInterceptor_SafeBrowsingTruncatesEventURL(t *testing.T) {
	ctx := testContext()
	events := portmocks.NewMockSecurityEventPublisher(t)

	long := "https://example.com/malware/" + strings.Repeat("a", 200)
	events.EXPECT().Publish(mock.MatchedBy(func(ev entity.SecurityEvent) bool {
		return len([]rune(ev.URL)) == 100
	})).Once()

	interceptor := usecase.NewRequestInterceptor(nil, events, nil)
	v := interceptor.Intercept(ctx, persistentConfig(allFlags()), &entity.Request{URL: long}, nil)
	assert.True(t, v.Cancelled())
}

func TestRequestInterceptor_SafeBrowsingRunsBeforeUpgrade(t *testing.T) {
	interceptor := usecase.NewRequestInterceptor(nil, nil, nil)
	v := interceptor.Decide(&entity.Request{URL: "http://malware.example.com/"}, persistentConfig(allFlags()))
	assert.Equal(t, entity.StageRejectedUnsafe, v.Stage)
}

func TestRequestInterceptor_UpgradeRoundTrip(t *testing.T) {
	interceptor := usecase.NewRequestInterceptor(nil, nil, nil)
	cfg := persistentConfig(entity.PrivacyFlags{HTTPSUpgradeEnabled: true, AdBlockEnabled: true})

	first := interceptor.Decide(&entity.Request{URL: "http://example.com/x"}, cfg)
	require.Equal(t, entity.ActionRedirect, first.Action)
	assert.Equal(t, entity.StageUpgraded, first.Stage)
	assert.Equal(t, "https://example.com/x", first.RedirectURL)

	second := interceptor.Decide(&entity.Request{URL: first.RedirectURL}, cfg)
	assert.Equal(t, entity.ActionAllow, second.Action)
	assert.Equal(t, entity.StagePassed, second.Stage)
}

func TestRequestInterceptor_UpgradeSkipsAdBlock(t *testing.T) {
	spy := portmocks.NewMockURLClassifier(t)
	u := "http://pagead2.doubleclick.net/ads"
	spy.EXPECT().IsInternal(u).Return(false)
	spy.EXPECT().ClassifyProtocol(u).Return(classifier.ProtocolSafe)
	spy.EXPECT().ClassifySafety(u).Return(classifier.Safe)
	spy.EXPECT().ShouldUpgradeToHTTPS(u, true).Return(true)

	interceptor := usecase.NewRequestInterceptor(spy, nil, nil)
	v := interceptor.Decide(&entity.Request{URL: u}, persistentConfig(allFlags()))

	assert.Equal(t, entity.ActionRedirect, v.Action)
	assert.Equal(t, "https://pagead2.doubleclick.net/ads", v.RedirectURL)
	spy.AssertNotCalled(t, "IsAdOrTracker", mock.Anything, mock.Anything)
}

func TestRequestInterceptor_LocalhostNotUpgraded(t *testing.T) {
	interceptor := usecase.NewRequestInterceptor(nil, nil, nil)
	cfg := persistentConfig(entity.PrivacyFlags{HTTPSUpgradeEnabled: true})

	v := interceptor.Decide(&entity.Request{URL: "http://localhost:3000/"}, cfg)

	assert.Equal(t, entity.ActionAllow, v.Action)
	assert.Equal(t, entity.StagePassed, v.Stage)
	assert.Empty(t, v.RedirectURL)
}

func TestRequestInterceptor_AdBlockScenario(t *testing.T) {
	ctx := testContext()
	rec := &countingRecorder{}
	interceptor := usecase.NewRequestInterceptor(nil, nil, nil)
	cfg := persistentConfig(entity.PrivacyFlags{AdBlockEnabled: true})

	v := interceptor.Intercept(ctx, cfg, &entity.Request{URL: "https://pagead2.doubleclick.net/ads"}, rec)
	assert.Equal(t, entity.StageBlockedAsAd, v.Stage)
	assert.True(t, v.Cancelled())
	assert.Equal(t, int64(1), rec.n.Load())

	v = interceptor.Intercept(ctx, cfg, &entity.Request{URL: "https://example.com/doubleclick-discussion"}, rec)
	assert.Equal(t, entity.StageBlockedAsAd, v.Stage)
	assert.Equal(t, int64(2), rec.n.Load())
}

func TestRequestInterceptor_KeywordFallbackDisabled(t *testing.T) {
	c := classifier.New(nil, classifier.NewBlocklist(classifier.DefaultBlocklist, false))
	interceptor := usecase.NewRequestInterceptor(c, nil, nil)
	cfg := persistentConfig(entity.PrivacyFlags{AdBlockEnabled: true})

	v := interceptor.Decide(&entity.Request{URL: "https://example.com/doubleclick-discussion"}, cfg)
	assert.Equal(t, entity.StagePassed, v.Stage)
}

func TestRequestInterceptor_ClassificationHasNoSideEffects(t *testing.T) {
	ctx := testContext()
	c := classifier.New(nil, nil)
	rec := &countingRecorder{}
	interceptor := usecase.NewRequestInterceptor(c, nil, nil)
	u := "https://pagead2.doubleclick.net/ads"

	assert.Equal(t, c.IsAdOrTracker(u, true), c.IsAdOrTracker(u, true))
	assert.Zero(t, rec.n.Load())

	interceptor.Intercept(ctx, persistentConfig(entity.PrivacyFlags{AdBlockEnabled: true}), &entity.Request{URL: u}, rec)
	assert.Equal(t, int64(1), rec.n.Load())

	interceptor.Intercept(ctx, persistentConfig(entity.PrivacyFlags{AdBlockEnabled: true}), &entity.Request{URL: u}, rec)
	assert.Equal(t, int64(2), rec.n.Load())
}

func TestRequestInterceptor_AdBlockDisabled(t *testing.T) {
	interceptor := usecase.NewRequestInterceptor(nil, nil, nil)
	v := interceptor.Decide(&entity.Request{URL: "https://pagead2.doubleclick.net/ads"}, persistentConfig(entity.PrivacyFlags{}))
	assert.Equal(t, entity.StagePassed, v.Stage)
}

func TestRequestInterceptor_InternalPagesExempt(t *testing.T) {
	spy := portmocks.NewMockURLClassifier(t)
	u := "file:///opt/netguard/index.html"
	spy.EXPECT().IsInternal(u).Return(true)

	interceptor := usecase.NewRequestInterceptor(spy, nil, nil)
	v := interceptor.Decide(&entity.Request{URL: u}, persistentConfig(allFlags()))

	assert.Equal(t, entity.ActionAllow, v.Action)
	assert.Equal(t, entity.StageInternal, v.Stage)
	spy.AssertNotCalled(t, "ClassifyProtocol", mock.Anything)
}

func TestRequestInterceptor_PassedAttachesPrivacyHeaders(t *testing.T) {
	interceptor := usecase.NewRequestInterceptor(nil, nil, nil)
	cfg := persistentConfig(entity.PrivacyFlags{DoNotTrack: true, FingerprintProtection: true})
	cfg.UserAgent = "TestAgent/1.0"
	cfg.ClientHints = map[string]string{"Sec-CH-UA-Mobile": "?0"}

	in := http.Header{"Accept": {"text/html"}}
	v := interceptor.Decide(&entity.Request{URL: "https://example.com/", Headers: in}, cfg)

	require.Equal(t, entity.ActionAllow, v.Action)
	assert.Equal(t, "TestAgent/1.0", v.Headers.Get("User-Agent"))
	assert.Equal(t, "?0", v.Headers.Get("Sec-CH-UA-Mobile"))
	assert.Equal(t, "1", v.Headers.Get("DNT"))
	assert.Equal(t, "1", v.Headers.Get("Sec-GPC"))
	assert.Equal(t, "text/html", v.Headers.Get("Accept"))
	assert.Empty(t, in.Get("DNT"), "input headers must not be modified")
}

func TestRequestInterceptor_NoPrivacyHeadersWhenDisabled(t *testing.T) {
	interceptor := usecase.NewRequestInterceptor(nil, nil, nil)
	v := interceptor.Decide(&entity.Request{URL: "https://example.com/"}, persistentConfig(entity.PrivacyFlags{}))

	assert.Empty(t, v.Headers.Get("DNT"))
	assert.Empty(t, v.Headers.Get("Sec-GPC"))
	assert.Empty(t, v.Headers.Get("User-Agent"))
}

func TestRequestInterceptor_MalformedURLPasses(t *testing.T) {
	interceptor := usecase.NewRequestInterceptor(nil, nil, nil)
	cfg := persistentConfig(allFlags())

	for _, u := range []string{"", "::::", "http://%zz/", "https://[::1"} {
		v := interceptor.Decide(&entity.Request{URL: u}, cfg)
		assert.Equal(t, entity.ActionAllow, v.Action, u)
	}
	assert.Equal(t, entity.ActionAllow, interceptor.Decide(nil, cfg).Action)
}

func TestRequestInterceptor_ScreenPopup(t *testing.T) {
	ctx := testContext()
	events := portmocks.NewMockSecurityEventPublisher(t)
	events.EXPECT().Publish(mock.MatchedBy(func(ev entity.SecurityEvent) bool {
		return ev.Kind == entity.SecurityEventPopupBlocked
	})).Once()

	interceptor := usecase.NewRequestInterceptor(nil, events, nil)
	cfg := persistentConfig(allFlags())

	assert.Equal(t, entity.PopupDeny, interceptor.ScreenPopup(ctx, cfg, "javascript:open()"))
	assert.Equal(t, entity.PopupOpenInTab, interceptor.ScreenPopup(ctx, cfg, "https://example.com/popup"))
}

func TestRequestInterceptor_ScreenDownload(t *testing.T) {
	ctx := testContext()
	events := portmocks.NewMockSecurityEventPublisher(t)
	events.EXPECT().Publish(mock.MatchedBy(func(ev entity.SecurityEvent) bool {
		return ev.Kind == entity.SecurityEventDangerousDownload &&
			ev.Detail["filename"] == "setup.exe" &&
			ev.Detail["extension"] == ".exe"
	})).Once()

	interceptor := usecase.NewRequestInterceptor(nil, events, nil)
	cfg := persistentConfig(allFlags())

	v := interceptor.ScreenDownload(ctx, cfg, "https://example.com/setup.exe", "setup.exe")
	assert.True(t, v.Dangerous)

	v = interceptor.ScreenDownload(ctx, cfg, "https://example.com/report.pdf", "report.pdf")
	assert.False(t, v.Dangerous)
	assert.Equal(t, ".pdf", v.Extension)
}

func TestRequestInterceptor_ObservesMetrics(t *testing.T) {
	ctx := testContext()
	metrics := portmocks.NewMockInterceptMetrics(t)
	metrics.EXPECT().ObserveDecision(entity.SessionPersistent, entity.StageBlockedAsAd).Once()

	interceptor := usecase.NewRequestInterceptor(nil, nil, metrics)
	interceptor.Intercept(ctx, persistentConfig(entity.PrivacyFlags{AdBlockEnabled: true}),
		&entity.Request{URL: "https://ib.adnxs.com/x"}, nil)
}
