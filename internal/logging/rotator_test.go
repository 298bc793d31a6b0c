package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRotator_RollsWhenFull(t *testing.T) {
	dir := t.TempDir()

	r, err := NewLogRotator(dir, 1, 5, 0, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	tick := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}

	chunk := []byte(strings.Repeat("x", 700*1024))
	_, err = r.Write(chunk)
	require.NoError(t, err)
	_, err = r.Write(chunk)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var rolled int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), logFileName+".") {
			rolled++
		}
	}
	assert.Equal(t, 1, rolled)

	info, err := os.Stat(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), info.Size())
}

func TestLogRotator_PrunesBeyondMaxBackups(t *testing.T) {
	dir := t.TempDir()

	r, err := NewLogRotator(dir, 1, 1, 0, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	tick := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}

	chunk := []byte(strings.Repeat("y", 600*1024))
	for range 4 {
		_, err = r.Write(chunk)
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var rolled int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), logFileName+".") {
			rolled++
		}
	}
	assert.Equal(t, 1, rolled)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "debug", ParseLevel("DEBUG").String())
	assert.Equal(t, "warn", ParseLevel("warning").String())
	assert.Equal(t, "info", ParseLevel("nonsense").String())
}
