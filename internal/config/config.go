package config

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the process configuration read from the environment.
type Config struct {
	Port   string `env:"PORT" envDefault:"8080"`
	AppURL string `env:"APP_URL" envDefault:"http://localhost:8080"`

	// Optional backends; an empty value disables the feature.
	DatabaseURL string `env:"DATABASE_URL"`
	RedisURL    string `env:"REDIS_URL"`

	ToolsConfigPath string `env:"TOOLS_CONFIG_PATH"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// DotenvLoaded reports whether a .env file was found.
	DotenvLoaded bool
}

// Load reads an optional .env file and then parses the environment.
func Load() (Config, error) {
	loaded := godotenv.Load() == nil

	cfg, err := Parse()
	if err != nil {
		return Config{}, err
	}
	cfg.DotenvLoaded = loaded
	return cfg, nil
}

// Parse reads the environment and rejects values the server cannot start
// with. The sitemap builds absolute links from APP_URL, so it must carry a
// scheme and host.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port < 1 || port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %q", cfg.Port)
	}

	u, err := url.Parse(cfg.AppURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Config{}, fmt.Errorf("invalid APP_URL %q: want an absolute http(s) URL", cfg.AppURL)
	}
	return cfg, nil
}
