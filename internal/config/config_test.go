package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(ConfigPathEnv, "")
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "Cacaroids", cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.False(t, cfg.Window.Fullscreen)
	assert.Equal(t, 5, cfg.Game.InitialAsteroids)
	assert.Equal(t, 150.0, cfg.Game.SafeRadius)
	assert.Equal(t, FrontendTcell, cfg.Game.Frontend)
	assert.Equal(t, "2222", cfg.SSH.Port)
	assert.Equal(t, "8080", cfg.Web.Port)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cacaroids.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
window:
  title: Rocks
  fullscreen: true
game:
  initial_asteroids: 3
  seed: 42
  frontend: ansi
log:
  level: debug
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Rocks", cfg.Window.Title)
	assert.True(t, cfg.Window.Fullscreen)
	assert.Equal(t, 1280, cfg.Window.Width, "unset keys keep defaults")
	assert.Equal(t, 3, cfg.Game.InitialAsteroids)
	assert.Equal(t, uint64(42), cfg.Game.Seed)
	assert.Equal(t, FrontendANSI, cfg.Game.Frontend)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFileFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cacaroids.toml")
	require.NoError(t, os.WriteFile(path, []byte("[game]\ninitial_asteroids = 8\n"), 0o600))
	t.Setenv(ConfigPathEnv, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Game.InitialAsteroids)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv(ConfigPathEnv, "")
	t.Setenv("SSH_PORT", "2323")
	t.Setenv("WEB_HOST", "127.0.0.1")
	t.Setenv("CACAROIDS_GAME_SAFE_RADIUS", "100")
	t.Setenv("CACAROIDS_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "2323", cfg.SSH.Port)
	assert.Equal(t, "127.0.0.1", cfg.Web.Host)
	assert.Equal(t, 100.0, cfg.Game.SafeRadius)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func validConfig(t *testing.T) Config {
	t.Helper()
	t.Setenv(ConfigPathEnv, "")
	cfg, err := Load("")
	require.NoError(t, err)
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative height", func(c *Config) { c.Window.Height = -1 }},
		{"no asteroids", func(c *Config) { c.Game.InitialAsteroids = 0 }},
		{"clearance beyond arena", func(c *Config) { c.Game.SafeRadius = 800 }},
		{"negative clearance", func(c *Config) { c.Game.SafeRadius = -1 }},
		{"unknown frontend", func(c *Config) { c.Game.Frontend = "opengl" }},
		{"unknown log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestSettings(t *testing.T) {
	cfg := validConfig(t)

	s := cfg.Settings()
	assert.Equal(t, 1280.0, s.Arena.Width)
	assert.Equal(t, 720.0, s.Arena.Height)
	assert.Equal(t, 640.0, s.StartX)
	assert.Equal(t, 360.0, s.StartY)
	assert.Equal(t, 5, s.InitialAsteroids)
	assert.Equal(t, 150.0, s.SafeRadius)
}

func TestSettingsFor(t *testing.T) {
	cfg := validConfig(t)

	// A big terminal is clamped to the configured window.
	s := cfg.SettingsFor(300, 100)
	assert.Equal(t, 1280.0, s.Arena.Width)
	assert.Equal(t, 720.0, s.Arena.Height)

	// A small one shows less arena; the ship starts in its centre.
	s = cfg.SettingsFor(80, 24)
	assert.Equal(t, 640.0, s.Arena.Width)
	assert.Equal(t, 384.0, s.Arena.Height)
	assert.Equal(t, 320.0, s.StartX)
	assert.Equal(t, 192.0, s.StartY)

	cfg.Window.Fullscreen = true
	s = cfg.SettingsFor(300, 100)
	assert.Equal(t, 2400.0, s.Arena.Width)

	s = cfg.SettingsFor(0, 0)
	assert.Equal(t, 1280.0, s.Arena.Width)
}

func TestRenderLimit(t *testing.T) {
	w := WindowConfig{Width: 1280, Height: 720}
	cols, rows := w.RenderLimit()
	assert.Equal(t, 160, cols)
	assert.Equal(t, 45, rows)

	w.Fullscreen = true
	cols, rows = w.RenderLimit()
	assert.Zero(t, cols)
	assert.Zero(t, rows)
}

func TestNewRandIsDeterministicWithSeed(t *testing.T) {
	g := GameConfig{Seed: 9}
	a, b := g.NewRand(1), g.NewRand(1)
	assert.Equal(t, a.Float64(), b.Float64())

	c := g.NewRand(2)
	assert.NotEqual(t, g.NewRand(1).Float64(), c.Float64())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("CACAROIDS_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnv("CACAROIDS_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("CACAROIDS_TEST_UNSET_VALUE", "fallback"))
}
