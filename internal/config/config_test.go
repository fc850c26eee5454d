package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SirTuppy/route-setter-scheduler/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scheduler.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadSchedulerFromPath(t *testing.T) {
	t.Run("valid file with defaults", func(t *testing.T) {
		path := writeConfig(t, `
holidays:
  - date: "2025-07-04"
    name: Independence Day
gyms:
  - id: design
    name: Design District
    pairedGymID: denton
    walls:
      - name: Cardinal
        type: rope
        difficulty: 1
        climbsPerSetter: 2
  - id: denton
    name: Denton
`)

		s, err := config.LoadSchedulerFromPath(path)

		require.NoError(t, err)
		assert.Len(t, s.Gyms, 2)
		assert.Equal(t, "Cardinal", s.Gyms[0].Walls[0].Name)
		assert.Equal(t, 60*time.Second, s.Presence.ActivityTimeout)
		assert.Equal(t, 30*time.Second, s.Presence.Heartbeat)
		assert.Equal(t, 500*time.Millisecond, s.Realtime.Debounce)
	})

	t.Run("durations are parsed", func(t *testing.T) {
		path := writeConfig(t, `
presence:
  activityTimeout: 90s
realtime:
  debounce: 250ms
`)

		s, err := config.LoadSchedulerFromPath(path)

		require.NoError(t, err)
		assert.Equal(t, 90*time.Second, s.Presence.ActivityTimeout)
		assert.Equal(t, 45*time.Second, s.Presence.Heartbeat)
		assert.Equal(t, 250*time.Millisecond, s.Realtime.Debounce)
	})

	t.Run("invalid wall type", func(t *testing.T) {
		path := writeConfig(t, `
gyms:
  - id: plano
    name: Plano
    walls:
      - name: Cave
        type: trad
`)

		_, err := config.LoadSchedulerFromPath(path)

		assert.ErrorContains(t, err, "config validation failed")
	})

	t.Run("invalid holiday date", func(t *testing.T) {
		path := writeConfig(t, `
holidays:
  - date: "July 4"
    name: Independence Day
`)

		_, err := config.LoadSchedulerFromPath(path)

		assert.Error(t, err)
	})

	t.Run("unknown paired gym", func(t *testing.T) {
		path := writeConfig(t, `
gyms:
  - id: hill
    name: The Hill
    pairedGymID: nowhere
`)

		_, err := config.LoadSchedulerFromPath(path)

		assert.ErrorContains(t, err, "unknown gym")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadSchedulerFromPath(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.ErrorContains(t, err, "failed to read config file")
	})
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "")

	cfg := config.FromEnv()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "5432", cfg.DB.Port)
}
