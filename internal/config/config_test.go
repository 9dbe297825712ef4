package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 120, cfg.Server.RateLimitPerMinute)
	assert.Empty(t, cfg.Server.AccessPassword)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
log:
  level: debug
  format: console
server:
  port: 9090
  access_password: hemmeligt
  allowed_origins:
    - https://rapport.example.dk
  rate_limit_per_minute: 30
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "hemmeligt", cfg.Server.AccessPassword)
	assert.Equal(t, []string{"https://rapport.example.dk"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 30, cfg.Server.RateLimitPerMinute)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
log:
  level: debug
server:
  port: 9090
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("CSRD_LOG_LEVEL", "warn")
	t.Setenv("CSRD_SERVER_PORT", "3000")

	cfg, err := Load()
	require.NoError(t, err)

	// Env overrides file
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	t.Setenv("CSRD_SERVER_ACCESS_PASSWORD", "adgangskode")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "adgangskode", cfg.Server.AccessPassword)
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}

func TestValidateServe_ValidPort(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Port: 9090, RateLimitPerMinute: 60}}
	assert.NoError(t, cfg.Validate("serve"))
}

func TestValidateServe_InvalidPort(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Port: 0, RateLimitPerMinute: 60}}

	err := cfg.Validate("serve")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "server.port must be > 0")
}

func TestValidateServe_RateLimitBounds(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Port: 8080}}

	cfg.Server.RateLimitPerMinute = 0
	err := cfg.Validate("serve")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "rate_limit_per_minute must be between 1 and 10000")

	cfg.Server.RateLimitPerMinute = 10001
	err = cfg.Validate("serve")
	assert.Error(t, err)

	cfg.Server.RateLimitPerMinute = 10000
	assert.NoError(t, cfg.Validate("serve"))
}

func TestValidateCLI(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate("cli"))
}

func TestValidateUnknownMode(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate("unknown")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}
