package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads values from the yaml file", func(t *testing.T) {
		// Given: a config file overriding a few values
		path := writeConfig(t, `
log-level: debug
window:
  title: Noughts
  mode: windowed
events:
  enabled: true
  publish-timeout: 500ms
redis:
  host: cache
  port: "6380"
`)

		// When: loading it
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: file values win and the rest are defaults
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "Noughts", conf.Window.Title)
		assert.Equal(t, WindowModeWindowed, conf.Window.Mode)
		assert.Equal(t, 800, conf.Window.Width)
		assert.True(t, conf.Events.Enabled)
		assert.Equal(t, "tictactoe:events", conf.Events.Channel)
		assert.Equal(t, 500*time.Millisecond, conf.Events.PublishTimeout)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Missing file falls back to defaults", func(t *testing.T) {
		// When: loading a path that does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
		require.NoError(t, err)

		// Then: defaults are applied
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "Tic Tac Toe", conf.Window.Title)
		assert.Equal(t, WindowModeMaximized, conf.Window.Mode)
		assert.Equal(t, "Created by Jeel & Khushal", conf.Home.Subtitle)
		assert.False(t, conf.Events.Enabled)
		assert.Equal(t, 64, conf.Events.Buffer)
		assert.Equal(t, 2*time.Second, conf.Events.PublishTimeout)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Shipped config.yml credits the authors", func(t *testing.T) {
		conf, err := Load(filepath.Join("..", "..", "config.yml"))
		require.NoError(t, err)

		assert.Equal(t, "Created by Jeel & Khushal", conf.Home.Subtitle)
		assert.Equal(t, WindowModeMaximized, conf.Window.Mode)
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		t.Setenv("TICTACTOE_WINDOW_MODE", WindowModeFullscreen)

		conf, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
		require.NoError(t, err)

		assert.Equal(t, WindowModeFullscreen, conf.Window.Mode)
	})

	t.Run("Unknown window mode is an error", func(t *testing.T) {
		path := writeConfig(t, "window:\n  mode: zoomed\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrUnknownWindowMode)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("Panics on malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "window: [")

		assert.Panics(t, func() { MustLoad(path) })
	})
}
