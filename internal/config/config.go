package config

import (
	"flag"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Addr             string   `env:"RUN_ADDRESS" env-default:"localhost:8080"`
	DatabaseURL      string   `env:"DATABASE_URI"`
	PrivateKey       string   `env:"PRIVATE_KEY" env-default:"privatekey"`
	BcryptCost       int      `env:"BCRYPT_COST" env-default:"10"`
	AuthDisabledURLs []string `env:"AUTH_DISABLED_URLS" env-default:"/api/users,/api/sessions" env-separator:","`
}

func Load() (*Config, error) {
	cfg := &Config{}

	flag.StringVar(&cfg.Addr, "a", "localhost:8080", "HTTP server address")
	flag.StringVar(&cfg.DatabaseURL, "d", "", "database URL, in-memory storage when empty")

	flag.Parse()

	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, fmt.Errorf("couldn't read environment variables: %w", err)
	}

	return cfg, nil
}
