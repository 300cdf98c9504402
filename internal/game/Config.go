package game

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	GameTickDuration     = 1 * time.Second
	AutoPilotInterval    = 150 * time.Millisecond
	DefaultGridWidth     = 10
	DefaultGridHeight    = 20
	MinGridSize          = 4
	MaxGridSize          = 64
	UpdateChannelBacklog = 16

	DefaultHost = "0.0.0.0"
	DefaultPort = "6997"
)

const envPrefix = "SSHTETRIS_"

// Config is read once at startup. Grid dimensions are fixed for the lifetime
// of every game created from it.
type Config struct {
	Host                string
	Port                string
	PrivateKeyPath      string
	GridWidth           int
	GridHeight          int
	Gravity             time.Duration
	AutoPilotInterval   time.Duration
	AutoPilotScriptPath string
}

func DefaultConfig() Config {
	return Config{
		Host:              DefaultHost,
		Port:              DefaultPort,
		GridWidth:         DefaultGridWidth,
		GridHeight:        DefaultGridHeight,
		Gravity:           GameTickDuration,
		AutoPilotInterval: AutoPilotInterval,
	}
}

// LoadConfigFromEnv overlays SSHTETRIS_* environment variables on the defaults.
func LoadConfigFromEnv() (Config, error) {
	return LoadConfig(os.Getenv)
}

func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if v := getenv(envPrefix + "HOST"); v != "" {
		cfg.Host = v
	}
	if v := getenv(envPrefix + "PORT"); v != "" {
		cfg.Port = v
	}
	cfg.PrivateKeyPath = getenv(envPrefix + "PRIVATE_KEY_PATH")
	cfg.AutoPilotScriptPath = getenv(envPrefix + "AUTOPILOT_SCRIPT")

	var err error
	if cfg.GridWidth, err = intFromEnv(getenv, "GRID_WIDTH", cfg.GridWidth); err != nil {
		return cfg, err
	}
	if cfg.GridHeight, err = intFromEnv(getenv, "GRID_HEIGHT", cfg.GridHeight); err != nil {
		return cfg, err
	}

	gravityMs, err := intFromEnv(getenv, "GRAVITY_MS", int(cfg.Gravity/time.Millisecond))
	if err != nil {
		return cfg, err
	}
	cfg.Gravity = time.Duration(gravityMs) * time.Millisecond

	pilotMs, err := intFromEnv(getenv, "AUTOPILOT_MS", int(cfg.AutoPilotInterval/time.Millisecond))
	if err != nil {
		return cfg, err
	}
	cfg.AutoPilotInterval = time.Duration(pilotMs) * time.Millisecond

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.GridWidth < MinGridSize || c.GridWidth > MaxGridSize {
		return fmt.Errorf("grid width %d out of range [%d, %d]", c.GridWidth, MinGridSize, MaxGridSize)
	}
	if c.GridHeight < MinGridSize || c.GridHeight > MaxGridSize {
		return fmt.Errorf("grid height %d out of range [%d, %d]", c.GridHeight, MinGridSize, MaxGridSize)
	}
	if c.Gravity <= 0 {
		return fmt.Errorf("gravity interval must be positive, got %s", c.Gravity)
	}
	if c.AutoPilotInterval <= 0 {
		return fmt.Errorf("autopilot interval must be positive, got %s", c.AutoPilotInterval)
	}
	return nil
}

func (c Config) Address() string {
	return c.Host + ":" + c.Port
}

func intFromEnv(getenv func(string) string, key string, fallback int) (int, error) {
	raw := getenv(envPrefix + key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback, fmt.Errorf("failed to parse %s%s=%q: %w", envPrefix, key, raw, err)
	}
	return value, nil
}
