package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	HTTPAddr    string   `env:"PORTFOLIO_HTTP_ADDR" envDefault:":8080"`
	DataPath    string   `env:"PORTFOLIO_DATA_PATH" envDefault:"data/portfolio.json"`
	DataURL     string   `env:"PORTFOLIO_DATA_URL"`
	ResumePath  string   `env:"PORTFOLIO_RESUME_PATH" envDefault:"data/resume.pdf"`
	StaticDir   string   `env:"PORTFOLIO_STATIC_DIR" envDefault:"static"`
	DBPath      string   `env:"PORTFOLIO_DB_PATH" envDefault:"data/drafts.db"`
	CORSOrigins []string `env:"PORTFOLIO_CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	GitHub      GitHubConfig
}

// GitHubConfig holds settings for the GitHub activity page
type GitHubConfig struct {
	Username  string        `env:"PORTFOLIO_GITHUB_USERNAME" envDefault:"praveenjadhav1510"`
	Token     string        `env:"GITHUB_TOKEN"`
	APIURL    string        `env:"PORTFOLIO_GITHUB_API_URL" envDefault:"https://api.github.com"`
	CacheTTL  time.Duration `env:"PORTFOLIO_GITHUB_CACHE_TTL" envDefault:"10m"`
	RepoCount int           `env:"PORTFOLIO_GITHUB_REPO_COUNT" envDefault:"6"`
}

// Load reads optional .env files, then parses the environment. Missing
// files are skipped; variables already set in the environment win.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.GitHub.RepoCount <= 0 {
		return nil, fmt.Errorf("PORTFOLIO_GITHUB_REPO_COUNT must be positive, got %d", cfg.GitHub.RepoCount)
	}
	return &cfg, nil
}

// ParseFlags applies command-line overrides on top of cfg
func ParseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DataPath, "data", cfg.DataPath, "Path of the portfolio JSON document")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path of the SQLite draft database")
	return fs.Parse(args)
}
