package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewManager_Defaults(t *testing.T) {
	m, err := NewManager("")
	require.NoError(t, err)

	s := m.Settings()
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "console", s.LogFormat)
	assert.Equal(t, "d", s.Sentinel)
	assert.False(t, s.Trace)
	assert.False(t, s.Plateau.MultiDigit)
	assert.False(t, s.Start.RejectNegative)
	assert.Equal(t, "", m.ConfigFile())
}

func TestNewManager_JSONFile(t *testing.T) {
	path := writeFile(t, "rover.json", `{
		"logLevel": "debug",
		"sentinel": "done",
		"plateau": { "multiDigit": true }
	}`)

	m, err := NewManager(path)
	require.NoError(t, err)

	s := m.Settings()
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "done", s.Sentinel)
	assert.True(t, s.Plateau.MultiDigit)
	assert.False(t, s.Start.RejectNegative)
	assert.Equal(t, path, m.ConfigFile())
}

func TestNewManager_YAMLFile(t *testing.T) {
	path := writeFile(t, "rover.yaml", "logFormat: json\nstart:\n  rejectNegative: true\n")

	m, err := NewManager(path)
	require.NoError(t, err)

	s := m.Settings()
	assert.Equal(t, "json", s.LogFormat)
	assert.True(t, s.Start.RejectNegative)
}

func TestNewManager_MissingFile(t *testing.T) {
	_, err := NewManager(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}

func TestNewManager_BrokenFile(t *testing.T) {
	path := writeFile(t, "rover.json", `{ not json`)

	_, err := NewManager(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestNewManager_InvalidValues(t *testing.T) {
	path := writeFile(t, "rover.json", `{ "logLevel": "loud" }`)

	_, err := NewManager(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestNewManager_EnvironmentOverrides(t *testing.T) {
	t.Setenv("ROVER_LOGLEVEL", "warn")
	t.Setenv("ROVER_PLATEAU_MULTIDIGIT", "true")
	t.Setenv("ROVER_SENTINEL", "q")

	m, err := NewManager("")
	require.NoError(t, err)

	s := m.Settings()
	assert.Equal(t, "warn", s.LogLevel)
	assert.True(t, s.Plateau.MultiDigit)
	assert.Equal(t, "q", s.Sentinel)
}

func TestManager_Set(t *testing.T) {
	m, err := NewManager("")
	require.NoError(t, err)

	require.NoError(t, m.Set("start.rejectNegative", true))
	assert.True(t, m.Settings().Start.RejectNegative)

	err = m.Set("logFormat", "xml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	// The last good settings are kept
	assert.Equal(t, "console", m.Settings().LogFormat)
}

func TestValidate(t *testing.T) {
	good := Settings{LogLevel: "INFO", LogFormat: "json", Sentinel: "d"}
	assert.NoError(t, Validate(good))

	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{"bad level", func(s *Settings) { s.LogLevel = "verbose" }},
		{"bad format", func(s *Settings) { s.LogFormat = "" }},
		{"blank sentinel", func(s *Settings) { s.Sentinel = "  " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := good
			tt.modify(&s)
			assert.ErrorIs(t, Validate(s), ErrInvalidConfig)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	// Missing files are not an error
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))

	path := writeFile(t, ".env", "ROVER_TEST_DOTENV=loaded\n")
	t.Setenv("ROVER_TEST_DOTENV", "")
	os.Unsetenv("ROVER_TEST_DOTENV")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("ROVER_TEST_DOTENV"))
}
