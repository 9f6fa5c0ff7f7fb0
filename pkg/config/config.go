package config

import "time"

// Config holds runtime configuration for the bot process.
type Config struct {
	AppEnv string

	Bot       BotConfig       `mapstructure:"bot" validate:"required"`
	Owner     OwnerConfig     `mapstructure:"owner" validate:"required"`
	Data      DataConfig      `mapstructure:"data"`
	APIs      APIConfig       `mapstructure:"apis" validate:"required"`
	Log       LogConfig       `mapstructure:"log"`
	Sentry    SentryConfig    `mapstructure:"sentry"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Server    ServerConfig    `mapstructure:"server"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// BotConfig configures the Telegram connection.
type BotConfig struct {
	Token    string        `mapstructure:"token" validate:"required"`
	Mode     string        `mapstructure:"mode" validate:"omitempty,oneof=polling webhook"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Name     string        `mapstructure:"name"`
	Username string        `mapstructure:"username"`
}

// OwnerConfig identifies the bot owner and the contact block shown in /help.
type OwnerConfig struct {
	ID       int64  `mapstructure:"id" validate:"required"`
	Name     string `mapstructure:"name"`
	Username string `mapstructure:"username"`
	Link     string `mapstructure:"link"`
	Bio      string `mapstructure:"bio"`
}

// DataConfig locates the JSON document directory.
type DataConfig struct {
	Dir string `mapstructure:"dir"`
}

// APIConfig holds the external service endpoints.
type APIConfig struct {
	ImageURL  string `mapstructure:"image_url" validate:"required,url"`
	StylesURL string `mapstructure:"styles_url" validate:"required,url"`
	TTSURL    string `mapstructure:"tts_url" validate:"required,url"`
	SearchURL string `mapstructure:"search_url" validate:"required,url"`
}

// LogConfig controls slog output.
type LogConfig struct {
	Level      string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	Format     string `mapstructure:"format" validate:"omitempty,oneof=text json"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// SentryConfig controls error reporting.
type SentryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	DSN     string `mapstructure:"dsn" validate:"required_if=Enabled true"`
}

// RedisConfig enables the optional Redis backends for flow state, flood
// limiting, and update dedup. When disabled, in-memory fallbacks are used.
type RedisConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Addr         string        `mapstructure:"addr" validate:"required_if=Enabled true"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	PoolTimeout  time.Duration `mapstructure:"pool_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	MaxRetries   int           `mapstructure:"max_retries"`
}

// ServerConfig configures the ops HTTP server (health + metrics).
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// RateLimitRule is one flood-limit rule: at most Limit updates per Window.
type RateLimitRule struct {
	Limit  int    `mapstructure:"limit"`
	Window string `mapstructure:"window"`
}

// CommandLimits holds optional per-command flood rules.
type CommandLimits struct {
	Gen    RateLimitRule `mapstructure:"gen"`
	TTS    RateLimitRule `mapstructure:"tts"`
	Search RateLimitRule `mapstructure:"search"`
}

// RateLimitConfig configures the per-update flood limiter. This is separate
// from the domain cooldown and daily quota, which live in Settings.
type RateLimitConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	PerUser   RateLimitRule `mapstructure:"per_user"`
	Commands  CommandLimits `mapstructure:"commands"`
	Whitelist []int64       `mapstructure:"whitelist"`
}

func applyDefaults(cfg *Config) {
	if cfg.Bot.Mode == "" {
		cfg.Bot.Mode = "polling"
	}
	if cfg.Bot.Timeout <= 0 {
		cfg.Bot.Timeout = 10 * time.Second
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = ".data"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = ":8080"
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
	if cfg.RateLimit.PerUser.Limit <= 0 {
		cfg.RateLimit.PerUser = RateLimitRule{Limit: 20, Window: "1m"}
	}
}
