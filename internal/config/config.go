package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. TAGPATH_STRICT.
const EnvPrefix = "TAGPATH"

// Keys shared by flags, environment and config file.
const (
	KeyStrict    = "strict"
	KeyMaxDepth  = "max_depth"
	KeyLogLevel  = "log_level"
	KeyUserAgent = "user_agent"
	KeyChunkSize = "chunk_size"
	KeyCookieJar = "cookie_jar"
	KeyFormat    = "format"
)

// Config is the resolved runtime configuration of the tagpath CLI
type Config struct {
	Strict    bool   `mapstructure:"strict"`
	MaxDepth  int    `mapstructure:"max_depth"`
	LogLevel  string `mapstructure:"log_level"`
	UserAgent string `mapstructure:"user_agent"`
	ChunkSize int    `mapstructure:"chunk_size"`
	CookieJar string `mapstructure:"cookie_jar"`
	Format    string `mapstructure:"format"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Strict:    false,
		MaxDepth:  10000,
		LogLevel:  "warn",
		UserAgent: "tagpath/1.0",
		ChunkSize: 64000,
		CookieJar: "",
		Format:    "json",
	}
}

// SetDefaults registers the defaults on v so unset keys resolve.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault(KeyStrict, d.Strict)
	v.SetDefault(KeyMaxDepth, d.MaxDepth)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyUserAgent, d.UserAgent)
	v.SetDefault(KeyChunkSize, d.ChunkSize)
	v.SetDefault(KeyCookieJar, d.CookieJar)
	v.SetDefault(KeyFormat, d.Format)
}

// Init wires environment lookup and, when path is set, a config file.
func Init(v *viper.Viper, path string) error {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path == "" {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return nil
}

// Load resolves the configuration from v and validates it.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.MaxDepth <= 0 {
		return errors.New("max_depth must be positive")
	}
	if c.ChunkSize <= 0 {
		return errors.New("chunk_size must be positive")
	}
	switch c.Format {
	case "json", "yaml", "cbor":
	default:
		return fmt.Errorf("format must be json, yaml or cbor, got %q", c.Format)
	}
	return nil
}
