package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jroosing/dnsname/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigPath(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		envValue string
		want     string
	}{
		{"flag takes precedence", "/path/from/flag", "/path/from/env", "/path/from/flag"},
		{"env when no flag", "", "/path/from/env", "/path/from/env"},
		{"empty when neither", "", "", ""},
		{"whitespace flag", "  ", "/path/from/env", "/path/from/env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(config.EnvConfigPath, tt.envValue)
			assert.Equal(t, tt.want, config.ResolveConfigPath(tt.flag))
		})
	}
}

func TestLoadDefault(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.StructuredFormat)
	assert.NotNil(t, cfg.Logging.ExtraFields)
	assert.Equal(t, config.InputHex, cfg.Input.Format)
	assert.False(t, cfg.Input.Relative)
	assert.Equal(t, config.DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, config.DefaultAPIHost, cfg.API.Host)
	assert.Equal(t, config.DefaultAPIPort, cfg.API.Port)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dnamectl.yaml")
	data := `
logging:
  level: debug
  structured: true
  structured_format: text
  extra_fields:
    env: test
input:
  format: TEXT
  relative: true
database:
  path: /tmp/names.db
api:
  host: 0.0.0.0
  port: 9000
  api_key: secret
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Structured)
	assert.Equal(t, "text", cfg.Logging.StructuredFormat)
	assert.Equal(t, map[string]string{"env": "test"}, cfg.Logging.ExtraFields)
	assert.Equal(t, config.InputText, cfg.Input.Format)
	assert.True(t, cfg.Input.Relative)
	assert.Equal(t, "/tmp/names.db", cfg.Database.Path)
	assert.Equal(t, "0.0.0.0", cfg.API.Host)
	assert.Equal(t, 9000, cfg.API.Port)
	assert.Equal(t, "secret", cfg.API.APIKey)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("logging: [unterminated"), 0o600))
	_, err = config.Load(bad)
	assert.Error(t, err)

	format := filepath.Join(dir, "format.yaml")
	require.NoError(t, os.WriteFile(format, []byte("input:\n  format: base64\n"), 0o600))
	_, err = config.Load(format)
	assert.ErrorContains(t, err, "input.format")
}

func TestValidate_Port(t *testing.T) {
	cfg := &config.Config{API: config.APIConfig{Port: 70000}}
	assert.Error(t, cfg.Validate())

	cfg = &config.Config{API: config.APIConfig{Port: -1}}
	assert.Error(t, cfg.Validate())
}

func TestValidate_Idempotent(t *testing.T) {
	cfg := &config.Config{}
	require.NoError(t, cfg.Validate())
	first := *cfg
	require.NoError(t, cfg.Validate())
	assert.Equal(t, first, *cfg)
}
