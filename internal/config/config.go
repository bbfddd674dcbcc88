// Package config loads founderpulse settings from an optional YAML file and
// FOUNDERPULSE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/founderpulse/internal/llm"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix namespaces environment overrides, e.g. FOUNDERPULSE_DB_PATH.
const EnvPrefix = "FOUNDERPULSE"

type Config struct {
	DB        DBConfig        `mapstructure:"db"`
	User      UserConfig      `mapstructure:"user"`
	Timezone  string          `mapstructure:"timezone"`
	Log       LogConfig       `mapstructure:"log"`
	LLM       llm.LLMConfig   `mapstructure:"llm"`
	Server    ServerConfig    `mapstructure:"server"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Engine    EngineConfig    `mapstructure:"engine"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type UserConfig struct {
	ID string `mapstructure:"id"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	// File enables a rotated JSON log alongside the console output.
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type SchedulerConfig struct {
	Enabled   bool `mapstructure:"enabled"`
	DailyHour int  `mapstructure:"daily_hour"`
}

type EngineConfig struct {
	TrendWindowDays  int `mapstructure:"trend_window_days"`
	StatsWindowDays  int `mapstructure:"stats_window_days"`
	NotesMaxLen      int `mapstructure:"notes_max_len"`
	InsightTimeoutMs int `mapstructure:"insight_timeout_ms"`
}

// Location resolves Timezone. An empty value means UTC.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}

// DefaultDBPath is ~/.founderpulse/founderpulse.db.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "founderpulse.db"
	}
	return filepath.Join(home, ".founderpulse", "founderpulse.db")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.path", DefaultDBPath())
	v.SetDefault("user.id", "")
	v.SetDefault("timezone", "UTC")

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 20)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)

	def := llm.DefaultConfig()
	v.SetDefault("llm.enabled", def.Enabled)
	v.SetDefault("llm.log_calls", def.LogCalls)
	v.SetDefault("llm.endpoint", def.Endpoint)
	v.SetDefault("llm.model", def.Model)
	v.SetDefault("llm.timeout_ms", def.TimeoutMs)
	v.SetDefault("llm.max_retries", def.MaxRetries)
	for task, tc := range def.Tasks {
		prefix := "llm.tasks." + string(task)
		v.SetDefault(prefix+".temperature", tc.Temperature)
		v.SetDefault(prefix+".max_tokens", tc.MaxTokens)
		v.SetDefault(prefix+".timeout_ms", tc.TimeoutMs)
	}

	v.SetDefault("server.addr", "127.0.0.1:8080")
	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.daily_hour", 6)

	v.SetDefault("engine.trend_window_days", 14)
	v.SetDefault("engine.stats_window_days", 7)
	v.SetDefault("engine.notes_max_len", 500)
	v.SetDefault("engine.insight_timeout_ms", 3000)
}

// Load reads path when given. Without a path it looks for founderpulse.yaml in
// the working directory and ~/.founderpulse, and a missing file is not an
// error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("founderpulse")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".founderpulse"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.Location(); err != nil {
		errs = append(errs, fmt.Errorf("timezone %q: %w", c.Timezone, err))
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Scheduler.DailyHour < 0 || c.Scheduler.DailyHour > 23 {
		errs = append(errs, fmt.Errorf("scheduler.daily_hour %d is outside 0-23", c.Scheduler.DailyHour))
	}
	if c.Engine.TrendWindowDays < 2 {
		errs = append(errs, fmt.Errorf("engine.trend_window_days must be at least 2, got %d", c.Engine.TrendWindowDays))
	}
	if c.Engine.StatsWindowDays < 1 || c.Engine.StatsWindowDays > 365 {
		errs = append(errs, fmt.Errorf("engine.stats_window_days %d is outside 1-365", c.Engine.StatsWindowDays))
	}
	if c.Engine.NotesMaxLen < 1 {
		errs = append(errs, fmt.Errorf("engine.notes_max_len must be positive"))
	}
	if c.DB.Path == "" {
		errs = append(errs, errors.New("db.path is required"))
	}
	return errors.Join(errs...)
}
