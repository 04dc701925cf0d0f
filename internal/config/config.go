// Package config loads the application configuration from file and
// environment.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds the resolved application configuration.
type Config struct {
	// Theme name: "dark" (default) or "light".
	Theme string `mapstructure:"theme"`
	// Editor to use for commit messages (falls back to $EDITOR, then vi).
	Editor string `mapstructure:"editor"`
	// Watch enables the filesystem watcher for automatic refresh.
	Watch bool `mapstructure:"watch"`
	// WatchCooldownMs is the refresh debounce window in milliseconds.
	WatchCooldownMs int `mapstructure:"watch_cooldown_ms"`
	// ConfirmDiscard prompts before discarding working tree changes.
	ConfirmDiscard bool `mapstructure:"confirm_discard"`
	// SideBySideDiff enables side-by-side diff mode by default.
	SideBySideDiff bool `mapstructure:"side_by_side_diff"`
}

// Cooldown returns the watcher debounce window as a duration.
func (c *Config) Cooldown() time.Duration {
	return time.Duration(c.WatchCooldownMs) * time.Millisecond
}

// Load reads configuration from ~/.config/zgs/config.yaml (or TOML/JSON).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	configDir := configDirectory()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix("ZGS")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is fine, use defaults.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("theme", "dark")
	v.SetDefault("editor", "")
	v.SetDefault("watch", true)
	v.SetDefault("watch_cooldown_ms", 200)
	v.SetDefault("confirm_discard", true)
	v.SetDefault("side_by_side_diff", false)
}

func configDirectory() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "zgs")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "zgs")
}
