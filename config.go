package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings, loaded from environment variables.
type Config struct {
	HTTPAddr        string `env:"HTTP_ADDR" envDefault:":9090"`
	RedisAddr       string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	OrchestratorURL string `env:"ORCHESTRATOR_URL" envDefault:"http://mcp-orchestrator:9000/webhook"`
	SiteURL         string `env:"SITE_URL" envDefault:"http://wordpress"`
	BasicUser       string `env:"BASIC_AUTH_USER" envDefault:"mcp"`
	BasicPass       string `env:"BASIC_AUTH_PASS" envDefault:"agent"`

	// OrchestratorTimeout bounds the single outbound trigger call.
	OrchestratorTimeout time.Duration `env:"ORCHESTRATOR_TIMEOUT" envDefault:"30s"`
}

// LoadConfig parses the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
