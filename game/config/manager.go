package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrConfigNotFound = errors.New("configuration not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// EnvPrefix is prepended to every environment override, e.g. ROVER_LOGLEVEL
const EnvPrefix = "ROVER"

// Settings holds everything the simulator front ends can tune
type Settings struct {
	LogLevel  string          `mapstructure:"logLevel"`
	LogFormat string          `mapstructure:"logFormat"`
	Sentinel  string          `mapstructure:"sentinel"`
	Trace     bool            `mapstructure:"trace"`
	Plateau   PlateauSettings `mapstructure:"plateau"`
	Start     StartSettings   `mapstructure:"start"`
}

// PlateauSettings controls how the plateau line is read
type PlateauSettings struct {
	// MultiDigit reads "10 12" as (10,12) instead of one digit per axis
	MultiDigit bool `mapstructure:"multiDigit"`
}

// StartSettings controls start position validation
type StartSettings struct {
	// RejectNegative also checks the start against the lower-left corner
	RejectNegative bool `mapstructure:"rejectNegative"`
}

// Manager loads settings from defaults, an optional file and the environment
type Manager struct {
	v        *viper.Viper
	settings Settings
	mu       sync.RWMutex
}

// NewManager creates a settings manager. An empty configFile means defaults
// and environment only; a named file that does not exist is an error.
func NewManager(configFile string) (*Manager, error) {
	m := &Manager{v: viper.New()}
	setDefaults(m.v)

	m.v.SetEnvPrefix(EnvPrefix)
	m.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	m.v.AutomaticEnv()

	if configFile != "" {
		if _, err := os.Stat(configFile); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configFile)
		}
		m.v.SetConfigFile(configFile)
		if err := m.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := m.reload(); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadDotEnv loads a .env file into the process environment if present.
// Variables already set are not overridden.
func LoadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFormat", "console")
	v.SetDefault("sentinel", "d")
	v.SetDefault("trace", false)
	v.SetDefault("plateau.multiDigit", false)
	v.SetDefault("start.rejectNegative", false)
}

// Settings returns a copy of the current settings
func (m *Manager) Settings() Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings
}

// Set overrides a single key, typically from a command-line flag
func (m *Manager) Set(key string, value interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.v.Set(key, value)
	return m.reloadLocked()
}

// ConfigFile returns the settings file in use, or "" when none was read
func (m *Manager) ConfigFile() string {
	return m.v.ConfigFileUsed()
}

func (m *Manager) reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reloadLocked()
}

func (m *Manager) reloadLocked() error {
	var s Settings
	if err := m.v.Unmarshal(&s); err != nil {
		return fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := Validate(s); err != nil {
		return err
	}
	m.settings = s
	return nil
}

// Validate checks settings for values the front ends cannot work with
func Validate(s Settings) error {
	switch strings.ToLower(s.LogLevel) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logLevel must be one of trace, debug, info, warn, error, got %q", ErrInvalidConfig, s.LogLevel)
	}

	switch strings.ToLower(s.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logFormat must be console or json, got %q", ErrInvalidConfig, s.LogFormat)
	}

	if strings.TrimSpace(s.Sentinel) == "" {
		return fmt.Errorf("%w: sentinel is required", ErrInvalidConfig)
	}
	return nil
}
