// Package config provides configuration loading and validation for the screening service and CLI.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. ATS_SCREENING_NAME_SCAN_LINES.
const EnvPrefix = "ATS"

// Defaults for the outer surfaces.
const (
	DefaultPort             = 8080
	DefaultFetchTimeout     = 30 * time.Second
	DefaultMaxDocumentBytes = 10 << 20
)

// Config is the full application configuration.
// All fields are optional in the file; missing values use defaults.
type Config struct {
	Screening        ScreeningConfig `mapstructure:"screening"`
	DatabaseURL      string          `mapstructure:"database_url"`
	Port             int             `mapstructure:"port" validate:"gte=1,lte=65535"`
	FetchTimeout     time.Duration   `mapstructure:"fetch_timeout" validate:"gt=0"`
	MaxDocumentBytes int64           `mapstructure:"max_document_bytes" validate:"gt=0"`
	Log              LogConfig       `mapstructure:"log"`
	RateLimit        RateLimitConfig `mapstructure:"rate_limit"`
}

// LogConfig controls logger construction.
type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

// RateLimitConfig sets the per-client request budgets of the HTTP API.
type RateLimitConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Read    RatePolicy    `mapstructure:"read"`
	Submit  RatePolicy    `mapstructure:"submit"`
	Batch   RatePolicy    `mapstructure:"batch"`
	IdleTTL time.Duration `mapstructure:"idle_ttl" validate:"gt=0"`
	Exempt  []string      `mapstructure:"exempt"`
}

// RatePolicy is a token bucket refilled at PerMinute with room for Burst requests.
// PerMinute 0 means unlimited; Burst 0 means PerMinute.
type RatePolicy struct {
	PerMinute int `mapstructure:"per_minute" validate:"gte=0"`
	Burst     int `mapstructure:"burst" validate:"gte=0"`
}

// DefaultRateLimitConfig returns the budgets used when nothing is configured.
// Submissions fetch and decode documents, so they get the tightest budgets.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled: true,
		Read:    RatePolicy{PerMinute: 1000},
		Submit:  RatePolicy{PerMinute: 120, Burst: 20},
		Batch:   RatePolicy{PerMinute: 10, Burst: 2},
		IdleTTL: time.Hour,
	}
}

// Default returns a Config populated with defaults only.
func Default() *Config {
	return &Config{
		Screening:        DefaultScreeningConfig(),
		Port:             DefaultPort,
		FetchTimeout:     DefaultFetchTimeout,
		MaxDocumentBytes: DefaultMaxDocumentBytes,
		RateLimit:        DefaultRateLimitConfig(),
	}
}

// Load reads configuration from an optional file plus ATS_* environment variables.
// An empty path loads defaults and environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Conventional names used by hosting platforms
	if err := v.BindEnv("database_url", EnvPrefix+"_DATABASE_URL", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind database_url: %w", err)
	}
	if err := v.BindEnv("port", EnvPrefix+"_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind port: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if err := rejectFixedPolicy(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Screening.ShortlistThreshold = DefaultShortlistThreshold
	cfg.Screening.SimilarityThreshold = DefaultSimilarityThreshold

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// fixedPolicyKeys are the screening thresholds. They are part of the scoring
// contract and only change with a new release, never through a file or the environment.
var fixedPolicyKeys = []string{
	"screening.shortlist_threshold",
	"screening.similarity_threshold",
}

func rejectFixedPolicy(v *viper.Viper) error {
	for _, key := range fixedPolicyKeys {
		if v.IsSet(key) {
			return fmt.Errorf("config error: %s is fixed and cannot be overridden", key)
		}
	}
	return nil
}

// setDefaults registers every key so environment overrides are picked up by Unmarshal.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("screening.skill_vocabulary", d.Screening.SkillVocabulary)
	v.SetDefault("screening.name_scan_lines", d.Screening.NameScanLines)
	v.SetDefault("screening.default_country_code", d.Screening.DefaultCountryCode)
	v.SetDefault("screening.locations", d.Screening.Locations)
	v.SetDefault("database_url", "")
	v.SetDefault("port", d.Port)
	v.SetDefault("fetch_timeout", d.FetchTimeout)
	v.SetDefault("max_document_bytes", d.MaxDocumentBytes)
	v.SetDefault("log.json", false)
	v.SetDefault("log.debug", false)
	v.SetDefault("rate_limit.enabled", d.RateLimit.Enabled)
	for name, policy := range map[string]RatePolicy{
		"read":   d.RateLimit.Read,
		"submit": d.RateLimit.Submit,
		"batch":  d.RateLimit.Batch,
	} {
		v.SetDefault("rate_limit."+name+".per_minute", policy.PerMinute)
		v.SetDefault("rate_limit."+name+".burst", policy.Burst)
	}
	v.SetDefault("rate_limit.idle_ttl", d.RateLimit.IdleTTL)
	v.SetDefault("rate_limit.exempt", []string{})
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// Validate checks the screening policy on its own, for callers that build it in code.
func (c ScreeningConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("screening config error: %w", err)
	}
	return nil
}
