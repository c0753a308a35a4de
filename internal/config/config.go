package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Redis     RedisConfig     `mapstructure:"redis"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	Intel     IntelConfig     `mapstructure:"intel"`
	Analysis  AnalysisConfig  `mapstructure:"analysis"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Version     string `mapstructure:"version"`
	Debug       bool   `mapstructure:"debug"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	HTTPPort        int           `mapstructure:"http_port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type RedisConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	TimeFormat string `mapstructure:"time_format"`
}

// IntelConfig configures the external threat-intelligence providers.
// Missing API keys disable the corresponding lookup rather than
// failing requests.
type IntelConfig struct {
	VirusTotalAPIKey   string        `mapstructure:"virustotal_api_key"`
	VirusTotalBaseURL  string        `mapstructure:"virustotal_base_url"`
	URLScanAPIKey      string        `mapstructure:"urlscan_api_key"`
	URLScanBaseURL     string        `mapstructure:"urlscan_base_url"`
	AllowActiveURLScan bool          `mapstructure:"allow_active_url_scan"`
	PollAttempts       int           `mapstructure:"poll_attempts"`
	PollDelay          time.Duration `mapstructure:"poll_delay"`
	RequestTimeout     time.Duration `mapstructure:"request_timeout"`
}

type AnalysisConfig struct {
	MaxURLsPerRequest int           `mapstructure:"max_urls_per_request"`
	IntelConcurrency  int           `mapstructure:"intel_concurrency"`
	CacheTTL          time.Duration `mapstructure:"cache_ttl"`
}

// Load reads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/scamintel-lab")
	}

	v.SetEnvPrefix("SCAMINTEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind nested env vars explicitly (viper doesn't auto-bind nested struct fields)
	v.BindEnv("redis.enabled", "SCAMINTEL_REDIS_ENABLED")
	v.BindEnv("redis.host", "SCAMINTEL_REDIS_HOST")
	v.BindEnv("redis.port", "SCAMINTEL_REDIS_PORT")
	v.BindEnv("redis.password", "SCAMINTEL_REDIS_PASSWORD")
	v.BindEnv("intel.virustotal_api_key", "SCAMINTEL_INTEL_VIRUSTOTAL_API_KEY")
	v.BindEnv("intel.urlscan_api_key", "SCAMINTEL_INTEL_URLSCAN_API_KEY")
	v.BindEnv("intel.allow_active_url_scan", "SCAMINTEL_INTEL_ALLOW_ACTIVE_URL_SCAN")
	v.BindEnv("app.environment", "SCAMINTEL_APP_ENVIRONMENT")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine: defaults plus env vars are a
		// complete configuration.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadDefault loads configuration with default path
func LoadDefault() (*Config, error) {
	return Load("")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "scamintel-lab")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.version", "1.0.0")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.http_port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.key_prefix", "scamintel:")

	v.SetDefault("ratelimit.enabled", false)
	v.SetDefault("ratelimit.requests_per_minute", 60)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")

	v.SetDefault("intel.virustotal_base_url", "https://www.virustotal.com/api/v3")
	v.SetDefault("intel.urlscan_base_url", "https://urlscan.io/api/v1")
	v.SetDefault("intel.allow_active_url_scan", false)
	v.SetDefault("intel.poll_attempts", 5)
	v.SetDefault("intel.poll_delay", 2*time.Second)
	v.SetDefault("intel.request_timeout", 60*time.Second)

	v.SetDefault("analysis.max_urls_per_request", 10)
	v.SetDefault("analysis.intel_concurrency", 4)
	v.SetDefault("analysis.cache_ttl", time.Hour)
}
