package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.Strict)
	assert.Equal(t, 10000, cfg.MaxDepth)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "json", cfg.Format)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "zero max depth", mutate: func(c *Config) { c.MaxDepth = 0 }, wantErr: true},
		{name: "negative chunk size", mutate: func(c *Config) { c.ChunkSize = -1 }, wantErr: true},
		{name: "unknown format", mutate: func(c *Config) { c.Format = "xml" }, wantErr: true},
		{name: "yaml format", mutate: func(c *Config) { c.Format = "yaml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	require.NoError(t, Init(v, ""))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TAGPATH_STRICT", "true")
	t.Setenv("TAGPATH_MAX_DEPTH", "7")

	v := viper.New()
	require.NoError(t, Init(v, ""))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 7, cfg.MaxDepth)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tagpath.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_depth: 5\nformat: cbor\nlog_level: debug\n"), 0o600))

	v := viper.New()
	require.NoError(t, Init(v, path))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MaxDepth)
	assert.Equal(t, "cbor", cfg.Format)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tagpath.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: xml\n"), 0o600))

	v := viper.New()
	require.NoError(t, Init(v, path))

	_, err := Load(v)
	assert.Error(t, err)
}

func TestInitMissingFile(t *testing.T) {
	v := viper.New()
	assert.Error(t, Init(v, filepath.Join(t.TempDir(), "absent.yaml")))
}
