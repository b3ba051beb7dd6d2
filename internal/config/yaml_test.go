// SPDX-License-Identifier: MIT
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bitkit/internal/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	tmp := t.TempDir()
	path := filepath.Join(tmp, "bitkit.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoadConfig_SearchPath(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("display:\n  width: 16\n"), 0644))

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Display.Width)
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	t.Parallel()
	cfg, err := LoadConfig("nonexistent.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_UnmarshalError(t *testing.T) {
	t.Parallel()
	path := writeTempConfig(t, ":\n:bad")
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "failed to parse config file") {
		t.Error("expected unmarshal error, got nil or wrong error")
	}
}

func TestLoadConfig_File(t *testing.T) {
	t.Parallel()
	path := writeTempConfig(t, `
debug: true
log_level: warn
display:
  width: 32
  color: false
demo:
  value: -3
limits:
  max_powerset_elements: 4
  verify_limit: 10
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 32, cfg.Display.Width)
	assert.False(t, cfg.Display.Color)
	assert.Equal(t, int64(-3), cfg.Demo.Value)
	assert.Equal(t, 4, cfg.Limits.MaxPowerSetElements)
	assert.Equal(t, int64(10), cfg.Limits.VerifyLimit)
	assert.Equal(t, log.LevelDebug, cfg.Level())
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"Width", "display:\n  width: 12\n", "display.width"},
		{"LogLevel", "log_level: loud\n", "log_level"},
		{"PowerSet", "limits:\n  max_powerset_elements: 30\n", "max_powerset_elements"},
		{"Verify", "limits:\n  verify_limit: -1\n", "verify_limit"},
		{"VerifyTooLarge", "limits:\n  verify_limit: 9223372036854775807\n", "verify_limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeTempConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv(EnvDebug, "true")
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvDisplayWidth, "64")

	cfg, err := LoadConfig(writeTempConfig(t, "display:\n  width: 8\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, 64, cfg.Display.Width)
}

func TestLoadConfig_EnvOverrideIgnoredWhenMalformed(t *testing.T) {
	t.Setenv(EnvDisplayWidth, "wide")

	cfg, err := LoadConfig(writeTempConfig(t, "display:\n  width: 16\n"))
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Display.Width)
}

func TestConfigLevel(t *testing.T) {
	t.Parallel()
	cfg := NewConfig()
	assert.Equal(t, log.LevelInfo, cfg.Level())
	cfg.LogLevel = "error"
	assert.Equal(t, log.LevelError, cfg.Level())
}

func TestConfigString(t *testing.T) {
	t.Parallel()
	out := NewConfig().String()
	assert.Contains(t, out, "width: 8")
	assert.Contains(t, out, "max_powerset_elements: 16")
}
