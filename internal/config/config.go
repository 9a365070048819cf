package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	MetricsPort int    `toml:"metrics_port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost string `toml:"postgres_host"`
	PostgresPort string `toml:"postgres_port"`
	PostgresDB   string `toml:"postgres_db"`
	PostgresUser string `toml:"postgres_user"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// limits
	DailyRequestQuota      int      `toml:"daily_request_quota"`
	RequestsPerMinuteBurst int      `toml:"requests_per_minute_burst"`
	VideoLookupConcurrency int      `toml:"video_lookup_concurrency"`
	ProfileCacheSizeBytes  int      `toml:"profile_cache_size_bytes"`
	ProfileCacheTTLSeconds int      `toml:"profile_cache_ttl_seconds"`
	UpstreamMaxRetries     int      `toml:"upstream_max_retries"`
	DefaultTimezone        string   `toml:"default_timezone"`
	VideoCacheTTL          Duration `toml:"video_cache_ttl"`
	GenerationTimeout      Duration `toml:"generation_timeout"`
	VideoSearchTimeout     Duration `toml:"video_search_timeout"`
	YouTubeEndpoint        string   `toml:"youtube_endpoint"`
	// text generation
	LLMBaseURL     string  `toml:"llm_base_url"`
	LLMModel       string  `toml:"llm_model"`
	LLMTemperature float64 `toml:"llm_temperature"`
	LLMMaxTokens   int     `toml:"llm_max_tokens"`
	// cors
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Duration parses toml strings like "720h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(path, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode toml file %s: %w", path, err)
	}

	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env %s missing in %s", env, path)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.DailyRequestQuota <= 0 {
		c.DailyRequestQuota = 20
	}
	if c.RequestsPerMinuteBurst <= 0 {
		c.RequestsPerMinuteBurst = 60
	}
	if c.VideoLookupConcurrency <= 0 {
		c.VideoLookupConcurrency = 4
	}
	if c.ProfileCacheSizeBytes <= 0 {
		c.ProfileCacheSizeBytes = 1024 * 1024
	}
	if c.ProfileCacheTTLSeconds <= 0 {
		c.ProfileCacheTTLSeconds = 60
	}
	if c.UpstreamMaxRetries <= 0 {
		c.UpstreamMaxRetries = 3
	}
	if c.DefaultTimezone == "" {
		c.DefaultTimezone = "UTC"
	}
	if c.VideoCacheTTL.Duration <= 0 {
		c.VideoCacheTTL.Duration = 30 * 24 * time.Hour
	}
	if c.GenerationTimeout.Duration <= 0 {
		c.GenerationTimeout.Duration = 90 * time.Second
	}
	if c.VideoSearchTimeout.Duration <= 0 {
		c.VideoSearchTimeout.Duration = 10 * time.Second
	}
	if c.LLMMaxTokens <= 0 {
		c.LLMMaxTokens = 4096
	}
}
