package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for fitloop.
type Config struct {
	Timezone string         `mapstructure:"timezone"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Settle   SettleConfig   `mapstructure:"settle"`
	Tracking TrackingConfig `mapstructure:"tracking"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DataDir    string `mapstructure:"data_dir"`
	SQLitePath string `mapstructure:"sqlite_path"`
	BadgerPath string `mapstructure:"badger_path"`
}

// SettleConfig holds the daily settle scheduler settings.
type SettleConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Cron spec for the daily absence-penalty settle run.
	Schedule string `mapstructure:"schedule"`
}

// TrackingConfig holds per-activity tunables.
type TrackingConfig struct {
	// Daily hydration goal in milliliters, the fixed ratio target.
	HydrationGoalML float64 `mapstructure:"hydration_goal_ml"`
}

// Load loads configuration from file, env, and defaults.
func Load(configPath, dataDir string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if dataDir == "" {
		dataDir = getDefaultDataDir()
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	v.Set("storage.data_dir", dataDir)
	v.Set("storage.sqlite_path", filepath.Join(dataDir, "fitloop.db"))
	v.Set("storage.badger_path", filepath.Join(dataDir, "badger"))

	if configPath == "" {
		configPath = filepath.Join(dataDir, "fitloop.yaml")
	}

	if _, err := os.Stat(configPath); err == nil {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// Environment variables (FITLOOP_TIMEZONE, FITLOOP_SETTLE_SCHEDULE, etc.)
	v.SetEnvPrefix("FITLOOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("timezone", "Asia/Taipei")

	v.SetDefault("settle.enabled", true)
	v.SetDefault("settle.schedule", "5 0 * * *")

	v.SetDefault("tracking.hydration_goal_ml", 3000.0)
}

func getDefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "fitloop")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "./data"
	}

	return filepath.Join(home, ".local", "share", "fitloop")
}

func validate(cfg *Config) error {
	if cfg.Timezone == "" {
		return fmt.Errorf("timezone must not be empty")
	}
	if cfg.Tracking.HydrationGoalML <= 0 {
		return fmt.Errorf("tracking.hydration_goal_ml must be positive, got %v", cfg.Tracking.HydrationGoalML)
	}
	return nil
}
