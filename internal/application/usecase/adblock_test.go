package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/netguard/internal/application/port"
	portmocks "github.com/bnema/netguard/internal/application/port/mocks"
	"github.com/bnema/netguard/internal/application/usecase"
	"github.com/bnema/netguard/internal/domain/entity"
	repomocks "github.com/bnema/netguard/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdblockUseCase_GetStats(t *testing.T) {
	ctx := testContext()
	statsRepo := repomocks.NewMockBlockStatsRepository(t)
	statsRepo.EXPECT().Total(mock.Anything).Return(int64(40), nil)

	settings := settingsStore(t, defaultSettings())
	counter := usecase.NewBlockCounter(statsRepo, 0)
	registry := usecase.NewSessionRegistry(usecase.SessionRegistryDeps{Settings: settings, Lifetime: counter})

	h, err := registry.Configure(ctx, entity.DefaultPartition)
	require.NoError(t, err)
	h.BeforeRequest(ctx, &entity.Request{URL: "https://pagead2.doubleclick.net/ads"})
	h.BeforeRequest(ctx, &entity.Request{URL: "https://cdn.taboola.com/x.js"})

	uc := usecase.NewAdblockUseCase(registry, statsRepo, counter, settings)
	stats := uc.GetStats(ctx)

	assert.Equal(t, int64(2), stats.SessionBlocked)
	assert.Equal(t, int64(42), stats.TotalBlocked)
	assert.True(t, stats.Enabled)
}

func TestAdblockUseCase_GetStatsStoreError(t *testing.T) {
	ctx := testContext()
	statsRepo := repomocks.NewMockBlockStatsRepository(t)
	statsRepo.EXPECT().Total(mock.Anything).Return(int64(0), errors.New("no such table"))

	uc := usecase.NewAdblockUseCase(nil, statsRepo, nil, settingsStore(t, defaultSettings()))
	stats := uc.GetStats(ctx)

	assert.Zero(t, stats.TotalBlocked)
	assert.Zero(t, stats.SessionBlocked)
}

func TestAdblockUseCase_Toggle(t *testing.T) {
	ctx := testContext()
	current := defaultSettings()

	settings := portmocks.NewMockSettingsStore(t)
	settings.EXPECT().Snapshot().RunAndReturn(func() port.Settings { return current })
	settings.EXPECT().SetAdBlockEnabled(mock.Anything, false).
		Run(func(_ context.Context, enabled bool) { current.Privacy.AdBlockEnabled = enabled }).
		Return(nil).Once()

	registry := usecase.NewSessionRegistry(usecase.SessionRegistryDeps{Settings: settings})
	h, err := registry.Configure(ctx, entity.DefaultPartition)
	require.NoError(t, err)

	uc := usecase.NewAdblockUseCase(registry, nil, nil, settings)
	enabled, err := uc.Toggle(ctx, false)

	require.NoError(t, err)
	assert.False(t, enabled)
	assert.False(t, h.Config().Flags.AdBlockEnabled)
	assert.False(t, h.BeforeRequest(ctx, &entity.Request{URL: "https://pagead2.doubleclick.net/ads"}).Cancelled())
}

func TestAdblockUseCase_ToggleError(t *testing.T) {
	ctx := testContext()
	settings := portmocks.NewMockSettingsStore(t)
	settings.EXPECT().Snapshot().Return(defaultSettings())
	settings.EXPECT().SetAdBlockEnabled(mock.Anything, false).Return(errors.New("read-only file system"))

	uc := usecase.NewAdblockUseCase(nil, nil, nil, settings)
	enabled, err := uc.Toggle(ctx, false)

	require.Error(t, err)
	assert.True(t, enabled, "state is unchanged when saving fails")
}
