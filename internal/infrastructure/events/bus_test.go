package events_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bnema/netguard/internal/domain/entity"
	"github.com/bnema/netguard/internal/infrastructure/events"
	"github.com/bnema/netguard/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func receive(t *testing.T, ch <-chan entity.SecurityEvent) entity.SecurityEvent {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "channel closed")
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return entity.SecurityEvent{}
	}
}

func TestBus_FanOut(t *testing.T) {
	bus := events.NewBus(testContext())
	t.Cleanup(bus.Close)

	a, cancelA := bus.Subscribe(4)
	defer cancelA()
	b, cancelB := bus.Subscribe(4)
	defer cancelB()

	ev := entity.NewSecurityEvent(entity.SecurityEventSafeBrowsing, "https://phishing.example/", map[string]string{"reason": "phishing"})
	bus.Publish(ev)

	assert.Equal(t, ev.ID, receive(t, a).ID)
	assert.Equal(t, ev.ID, receive(t, b).ID)
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	bus := events.NewBus(testContext())
	assert.NotPanics(t, func() {
		bus.Publish(entity.NewSecurityEvent(entity.SecurityEventCertificate, "https://self-signed.example/", nil))
	})
}

func TestBus_FullSubscriberDoesNotBlock(t *testing.T) {
	bus := events.NewBus(testContext())
	t.Cleanup(bus.Close)

	ch, cancel := bus.Subscribe(1)
	defer cancel()

	done := make(chan struct{})
	go func() {
		for range 5 {
			bus.Publish(entity.NewSecurityEvent(entity.SecurityEventPopupBlocked, "javascript:alert(1)", nil))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full subscriber")
	}

	assert.Equal(t, int64(4), bus.Dropped())
	receive(t, ch)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := events.NewBus(testContext())

	ch, cancel := bus.Subscribe(0)
	assert.Equal(t, 1, bus.Subscribers())

	cancel()
	cancel()
	assert.Equal(t, 0, bus.Subscribers())

	_, ok := <-ch
	assert.False(t, ok)

	bus.Publish(entity.NewSecurityEvent(entity.SecurityEventCertificate, "https://x.example/", nil))
	assert.Zero(t, bus.Dropped())
}

func TestBus_Close(t *testing.T) {
	bus := events.NewBus(testContext())
	ch, cancel := bus.Subscribe(1)

	bus.Close()
	bus.Close()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)

	late, _ := bus.Subscribe(1)
	_, ok = <-late
	assert.False(t, ok)
}

func TestBus_ConcurrentPublishAndUnsubscribe(t *testing.T) {
	bus := events.NewBus(testContext())
	t.Cleanup(bus.Close)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ch, cancel := bus.Subscribe(2)
			bus.Publish(entity.NewSecurityEvent(entity.SecurityEventDangerousDownload, "https://dl.example/setup.exe", nil))
			cancel()
			for range ch {
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, bus.Subscribers())
}
