package config

import (
	"time"

	"github.com/heartmarshall/question-scorer/internal/domain"
	"github.com/heartmarshall/question-scorer/internal/scoring"
)

// Supported generation backends.
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	LLM       LLMConfig       `yaml:"llm"`
	Budget    BudgetConfig    `yaml:"budget"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"5m"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// TrustProxy takes the client address from X-Forwarded-For / X-Real-IP.
	// Enable only behind a proxy that overwrites those headers.
	TrustProxy bool `yaml:"trust_proxy" env:"SERVER_TRUST_PROXY" env-default:"false"`
}

// LLMConfig holds generation backend settings.
type LLMConfig struct {
	Provider    string        `yaml:"provider"    env:"LLM_PROVIDER"    env-default:"anthropic"`
	APIKey      string        `yaml:"api_key"     env:"LLM_API_KEY"`
	Model       string        `yaml:"model"       env:"LLM_MODEL"`
	BaseURL     string        `yaml:"base_url"    env:"LLM_BASE_URL"`
	MaxTokens   int           `yaml:"max_tokens"  env:"LLM_MAX_TOKENS"  env-default:"4096"`
	Temperature float64       `yaml:"temperature" env:"LLM_TEMPERATURE" env-default:"0.2"`
	Timeout     time.Duration `yaml:"timeout"     env:"LLM_TIMEOUT"     env-default:"90s"`
}

// BudgetConfig holds the backend call ceiling.
type BudgetConfig struct {
	MaxCalls int `yaml:"max_calls" env:"MAX_CALLS" env-default:"100"`
}

// ScoringConfig holds rank thresholds and optional pipeline stages.
type ScoringConfig struct {
	RankThresholdsRaw   string `yaml:"rank_thresholds"      env:"SCORING_RANK_THRESHOLDS"      env-default:"270:S,240:A,210:B,180:C,150:D"`
	FloorRank           string `yaml:"floor_rank"           env:"SCORING_FLOOR_RANK"           env-default:"E"`
	PassThreshold       int    `yaml:"pass_threshold"       env:"SCORING_PASS_THRESHOLD"       env-default:"210"`
	BorderlineThreshold int    `yaml:"borderline_threshold" env:"SCORING_BORDERLINE_THRESHOLD" env-default:"180"`
	ShortfallCount      int    `yaml:"shortfall_count"      env:"SCORING_SHORTFALL_COUNT"      env-default:"3"`
	Summary             bool   `yaml:"summary"              env:"SCORING_SUMMARY"              env-default:"false"`
	Precedents          bool   `yaml:"precedents"           env:"SCORING_PRECEDENTS"           env-default:"true"`
	FocusItems          int    `yaml:"focus_items"          env:"SCORING_FOCUS_ITEMS"          env-default:"3"`
	MaxTextLength       int    `yaml:"max_text_length"      env:"SCORING_MAX_TEXT_LENGTH"      env-default:"20000"`

	// RankBreakpoints is parsed from RankThresholdsRaw during validation.
	RankBreakpoints []domain.RankBreakpoint `yaml:"-" env:"-"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP limits for the scoring endpoints.
type RateLimitConfig struct {
	PerMinute       int           `yaml:"per_minute"       env:"RATE_LIMIT_PER_MINUTE"       env-default:"30"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// RankTable builds the rank table from the validated thresholds.
func (s ScoringConfig) RankTable() (scoring.RankTable, error) {
	return scoring.NewRankTable(s.RankBreakpoints, domain.Rank(s.FloorRank), s.PassThreshold, s.BorderlineThreshold)
}

// DefaultModel returns the model used when none is configured.
func (c LLMConfig) DefaultModel() string {
	switch c.Provider {
	case ProviderGemini:
		return "gemini-2.0-flash"
	default:
		return "claude-sonnet-4-5"
	}
}
