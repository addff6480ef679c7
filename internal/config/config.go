// Package config loads the bootstrap configuration shared by the binaries.
package config

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/fcarvajalbrown/Cacaroids/internal/draw"
	"github.com/fcarvajalbrown/Cacaroids/internal/loop"
	"github.com/fcarvajalbrown/Cacaroids/internal/object"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Frontends the local binary can draw with.
const (
	FrontendTcell = "tcell"
	FrontendANSI  = "ansi"
)

// Config is the full bootstrap configuration.
type Config struct {
	Window WindowConfig `mapstructure:"window"`
	Game   GameConfig   `mapstructure:"game"`
	SSH    SSHConfig    `mapstructure:"ssh"`
	Web    WebConfig    `mapstructure:"web"`
	Log    LogConfig    `mapstructure:"log"`
}

// WindowConfig describes the play area. Width and Height are logical units.
type WindowConfig struct {
	Title      string `mapstructure:"title"`
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Fullscreen bool   `mapstructure:"fullscreen"`
}

// GameConfig holds the knobs of a single game.
type GameConfig struct {
	InitialAsteroids int     `mapstructure:"initial_asteroids"`
	SafeRadius       float64 `mapstructure:"safe_radius"`
	Seed             uint64  `mapstructure:"seed"` // 0 = seeded from the clock
	Frontend         string  `mapstructure:"frontend"`
}

// SSHConfig configures the SSH server.
type SSHConfig struct {
	Host        string `mapstructure:"host"`
	Port        string `mapstructure:"port"`
	HostKey     string `mapstructure:"host_key"`
	DisplayHost string `mapstructure:"display_host"` // Advertised on the web page
}

// WebConfig configures the landing page server.
type WebConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.title", "Cacaroids")
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.fullscreen", false)

	v.SetDefault("game.initial_asteroids", 5)
	v.SetDefault("game.safe_radius", 150.0)
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.frontend", FrontendTcell)

	v.SetDefault("ssh.host", "::")
	v.SetDefault("ssh.port", "2222")
	v.SetDefault("ssh.host_key", "/app/keys/host_key")
	v.SetDefault("ssh.display_host", "your-server.com")

	v.SetDefault("web.host", "0.0.0.0")
	v.SetDefault("web.port", "8080")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// Load reads the configuration file at path (or the one named by
// CACAROIDS_CONFIG when path is empty), applies environment overrides and
// validates the result. With no file, defaults and environment are used.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("CACAROIDS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, "CACAROIDS_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if path == "" {
		path = GetEnv(ConfigPathEnv, "")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the game cannot start with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Game.InitialAsteroids <= 0 {
		return fmt.Errorf("%w: game.initial_asteroids must be positive, got %d", ErrInvalid, c.Game.InitialAsteroids)
	}
	halfDiagonal := math.Hypot(float64(c.Window.Width), float64(c.Window.Height)) / 2
	if c.Game.SafeRadius < 0 || c.Game.SafeRadius >= halfDiagonal {
		return fmt.Errorf("%w: game.safe_radius %.0f must be in [0, %.0f)", ErrInvalid, c.Game.SafeRadius, halfDiagonal)
	}
	switch c.Game.Frontend {
	case FrontendTcell, FrontendANSI:
	default:
		return fmt.Errorf("%w: game.frontend %q (want %q or %q)", ErrInvalid, c.Game.Frontend, FrontendTcell, FrontendANSI)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	return nil
}

// Settings turns the configuration into the settings of a new game. The
// player reference is the centre of the configured arena.
func (c Config) Settings() loop.Settings {
	arena := object.Screen{Width: float64(c.Window.Width), Height: float64(c.Window.Height)}
	x, y := arena.Center()
	return loop.Settings{
		Arena:            arena,
		StartX:           x,
		StartY:           y,
		InitialAsteroids: c.Game.InitialAsteroids,
		SafeRadius:       c.Game.SafeRadius,
	}
}

// SettingsFor returns the settings of a game played on a terminal of
// cols x rows cells: the arena is the area the frontend will show, with the
// player reference at its centre. An unknown size falls back to Settings.
func (c Config) SettingsFor(cols, rows int) loop.Settings {
	if cols <= 0 || rows <= 0 {
		return c.Settings()
	}
	maxCols, maxRows := c.Window.RenderLimit()
	renderCols, renderRows, _, _ := draw.ClampTermSize(cols, rows, maxCols, maxRows)
	w, h := draw.ArenaSize(renderCols, renderRows)

	settings := c.Settings()
	settings.Arena = object.Screen{Width: w, Height: h}
	settings.StartX, settings.StartY = settings.Arena.Center()
	return settings
}

// RenderLimit returns the terminal cells the window size covers, or zeros
// for fullscreen.
func (w WindowConfig) RenderLimit() (cols, rows int) {
	if w.Fullscreen {
		return 0, 0
	}
	cols = int(math.Ceil(float64(w.Width) / draw.UnitsPerSubPixel))
	rows = int(math.Ceil(float64(w.Height) / (2 * draw.UnitsPerSubPixel)))
	return cols, rows
}

// NewRand creates the random source of one game. stream separates games
// sharing a seed, such as concurrent SSH sessions.
func (g GameConfig) NewRand(stream uint64) *rand.Rand {
	seed := g.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, stream))
}
