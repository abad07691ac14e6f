// Package config loads regform settings from defaults, an optional YAML file,
// an optional .env file and REGFORM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. REGFORM_ADDR.
const EnvPrefix = "REGFORM"

// Config holds all runtime settings.
type Config struct {
	Addr            string        `mapstructure:"addr"`
	SessionTTL      time.Duration `mapstructure:"session_ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	SecureCookies   bool          `mapstructure:"secure_cookies"`
	Theme           string        `mapstructure:"theme"`
	Variant         string        `mapstructure:"variant"`
	LogLevel        string        `mapstructure:"log_level"`
	LogFormat       string        `mapstructure:"log_format"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		Addr:            ":8080",
		SessionTTL:      30 * time.Minute,
		CleanupInterval: 10 * time.Minute,
		Theme:           "regform",
		LogLevel:        "info",
		LogFormat:       "json",
	}
}

// SetDefaults registers Defaults on v and enables environment overrides.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("addr", d.Addr)
	v.SetDefault("session_ttl", d.SessionTTL)
	v.SetDefault("cleanup_interval", d.CleanupInterval)
	v.SetDefault("secure_cookies", d.SecureCookies)
	v.SetDefault("theme", d.Theme)
	v.SetDefault("variant", d.Variant)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// Load reads path into v when given; otherwise it looks for regform.yaml in
// the working directory and carries on without one. Flags bound to v before
// the call take precedence.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("regform")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("config: read regform.yaml: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDotEnv loads the given .env files into the process environment. Missing
// files are skipped; variables already set are kept.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("config: addr is required")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("config: session_ttl must be positive, got %s", c.SessionTTL)
	}
	if c.CleanupInterval < 0 {
		return fmt.Errorf("config: cleanup_interval must not be negative, got %s", c.CleanupInterval)
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return fmt.Errorf("config: log_format must be json or text, got %q", c.LogFormat)
	}
	return nil
}
