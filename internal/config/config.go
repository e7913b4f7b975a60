package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds everything the client needs to reach a Shorty service.
type Config struct {
	BaseURL  string        `env:"SHORTY_BASE_URL" envDefault:"http://localhost:3000" validate:"required,url"`
	Endpoint string        `env:"SHORTY_ENDPOINT" envDefault:"/s" validate:"required,startswith=/"`
	Timeout  time.Duration `env:"SHORTY_TIMEOUT" envDefault:"0s" validate:"gte=0"`
	LogLevel string        `env:"SHORTY_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogFile  string        `env:"SHORTY_LOG_FILE"`
}

// Load reads an optional .env file, then the environment, then flags from
// args; later sources win. The -b, -l and -log-file flags are registered on
// fs, so subcommands add their own flags before calling Load.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	// .env is optional, but a broken one is an error
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.BaseURL, "b", cfg.BaseURL, "base url of the shorty service")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log file path")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.LogFile == "" {
		cfg.LogFile = defaultLogFile()
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags of cfg.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func defaultLogFile() string {
	if d := os.Getenv("XDG_STATE_HOME"); d != "" {
		return filepath.Join(d, "shorty", "shorty.log")
	}
	if d, err := os.UserCacheDir(); err == nil {
		return filepath.Join(d, "shorty", "shorty.log")
	}
	return filepath.Join(os.TempDir(), "shorty.log")
}
