package config

import (
	"testing"
	"time"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("missing config file must not fail: %v", err)
	}

	if cfg.Server.HTTPPort != 8080 {
		t.Errorf("http_port = %d", cfg.Server.HTTPPort)
	}
	if cfg.Intel.AllowActiveURLScan {
		t.Error("active scanning must default to off")
	}
	if cfg.Intel.PollAttempts != 5 {
		t.Errorf("poll_attempts = %d", cfg.Intel.PollAttempts)
	}
	if cfg.Intel.PollDelay != 2*time.Second {
		t.Errorf("poll_delay = %s", cfg.Intel.PollDelay)
	}
	if cfg.Analysis.MaxURLsPerRequest != 10 {
		t.Errorf("max_urls_per_request = %d", cfg.Analysis.MaxURLsPerRequest)
	}
	if cfg.Redis.Enabled {
		t.Error("redis must default to disabled")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SCAMINTEL_INTEL_VIRUSTOTAL_API_KEY", "from-env")
	t.Setenv("SCAMINTEL_INTEL_ALLOW_ACTIVE_URL_SCAN", "true")
	t.Setenv("SCAMINTEL_REDIS_HOST", "redis.internal")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Intel.VirusTotalAPIKey != "from-env" {
		t.Errorf("virustotal key = %q", cfg.Intel.VirusTotalAPIKey)
	}
	if !cfg.Intel.AllowActiveURLScan {
		t.Error("env kill-switch override not applied")
	}
	if cfg.Redis.Host != "redis.internal" {
		t.Errorf("redis host = %q", cfg.Redis.Host)
	}
}

func TestRedisConfig_Addr(t *testing.T) {
	c := RedisConfig{Host: "localhost", Port: 6379}
	if c.Addr() != "localhost:6379" {
		t.Errorf("addr = %s", c.Addr())
	}
}
