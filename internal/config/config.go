package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	cerr "github.com/saeidalz13/seabattle/internal/error"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

type Config struct {
	Stage string `env:"STAGE" envDefault:"dev"`

	// 0 picks a random seed
	Seed int64 `env:"SEED" envDefault:"0"`

	// 0 disables the spectator feed
	SpectatorPort int `env:"SPECTATOR_PORT" envDefault:"0"`

	// empty disables analytics
	DatabaseURL string `env:"DATABASE_URL"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads .env outside prod, then the environment.
func Load(envFile string) (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		// a missing .env is fine in dev; the defaults cover it
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, cerr.ErrStage(cfg.Stage)
	}
	return cfg, nil
}

func MustLoad(envFile string) Config {
	cfg, err := Load(envFile)
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c Config) SpectatorEnabled() bool {
	return c.SpectatorPort != 0
}

func (c Config) AnalyticsEnabled() bool {
	return c.DatabaseURL != ""
}

func (c Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
