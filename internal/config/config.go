package config

import (
	"time"
)

// Config is the root configuration of the watch-mode scheduler.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	LLM      LLMConfig      `yaml:"llm"`
	Watch    WatchConfig    `yaml:"watch"`
	Schedule ScheduleConfig `yaml:"schedule"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// LLM providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
	ProviderNone      = "none"
)

// LLMConfig selects and configures the generative text service.
// Provider "none" disables generation: every message uses the fallback template.
type LLMConfig struct {
	Provider  string `yaml:"provider"   env:"LLM_PROVIDER"   env-default:"anthropic"`
	APIKey    string `yaml:"api_key"    env:"LLM_API_KEY"`
	Model     string `yaml:"model"      env:"LLM_MODEL"`
	BaseURL   string `yaml:"base_url"   env:"LLM_BASE_URL"`
	MaxTokens int64  `yaml:"max_tokens" env:"LLM_MAX_TOKENS" env-default:"256"`
}

// WatchConfig holds batch orchestration settings.
type WatchConfig struct {
	// Timezone defines the civil "today" for trigger resolution and idempotency.
	Timezone         string        `yaml:"timezone"           env:"WATCH_TIMEZONE"           env-default:"Asia/Tokyo"`
	Concurrency      int           `yaml:"concurrency"        env:"WATCH_CONCURRENCY"        env-default:"4"`
	GenerateTimeout  time.Duration `yaml:"generate_timeout"   env:"WATCH_GENERATE_TIMEOUT"   env-default:"15s"`
	BatchTimeout     time.Duration `yaml:"batch_timeout"      env:"WATCH_BATCH_TIMEOUT"      env-default:"30m"`
	DefaultPersonaID string        `yaml:"default_persona_id" env:"WATCH_DEFAULT_PERSONA_ID" env-default:"tsukuyo"`
	// EventsPath and PersonasPath override the embedded catalogs when set.
	EventsPath   string `yaml:"events_path"   env:"WATCH_EVENTS_PATH"`
	PersonasPath string `yaml:"personas_path" env:"WATCH_PERSONAS_PATH"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// ScheduleConfig holds crontab specs used by the in-process scheduler.
type ScheduleConfig struct {
	Calendar    string `yaml:"calendar"    env:"SCHEDULE_CALENDAR"    env-default:"0 8 * * *"`
	Anniversary string `yaml:"anniversary" env:"SCHEDULE_ANNIVERSARY" env-default:"5 8 * * *"`
	Daily       string `yaml:"daily"       env:"SCHEDULE_DAILY"       env-default:"0 7 * * *"`
	// HealthAddr is where the daemon serves /live, /ready and /health.
	HealthAddr string `yaml:"health_addr" env:"SCHEDULE_HEALTH_ADDR" env-default:":8081"`
}
