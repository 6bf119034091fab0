package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"AuctionBidder/internal/history"
	"AuctionBidder/internal/model"
	"AuctionBidder/internal/opponent"
	"AuctionBidder/internal/strategy"
)

// Config holds all application configuration.
type Config struct {
	Auction struct {
		Quantity int `yaml:"quantity"`
		Cash     int `yaml:"cash"`
	} `yaml:"auction"`
	Strategy   strategy.Tuning `yaml:"strategy"`
	Tournament struct {
		Runs      int      `yaml:"runs"`
		Seed      int64    `yaml:"seed"`
		Workers   int      `yaml:"workers"`
		Opponents []string `yaml:"opponents"`
	} `yaml:"tournament"`
	Storage struct {
		Driver     string `yaml:"driver"`
		SQLitePath string `yaml:"sqlite_path"`
		MySQLDSN   string `yaml:"mysql_dsn"`
		Redis      struct {
			Address  string `yaml:"address"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"storage"`
	Recorder struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"recorder"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
	Report struct {
		SVGPath string `yaml:"svg_path"`
	} `yaml:"report"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	// Defaults
	if cfg.Auction.Quantity == 0 {
		cfg.Auction.Quantity = 10
	}
	if cfg.Auction.Cash == 0 {
		cfg.Auction.Cash = 1000
	}
	cfg.Strategy = cfg.Strategy.WithDefaults()
	if cfg.Tournament.Runs == 0 {
		cfg.Tournament.Runs = 100
	}
	if cfg.Tournament.Seed == 0 {
		cfg.Tournament.Seed = 42
	}
	if len(cfg.Tournament.Opponents) == 0 {
		cfg.Tournament.Opponents = opponent.Kinds()
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "memory"
	}
	if cfg.Storage.SQLitePath == "" {
		cfg.Storage.SQLitePath = "data/rounds.db"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"AUCTION_QUANTITY", &cfg.Auction.Quantity},
		{"AUCTION_CASH", &cfg.Auction.Cash},
		{"TOURNAMENT_RUNS", &cfg.Tournament.Runs},
		{"TOURNAMENT_WORKERS", &cfg.Tournament.Workers},
		{"REDIS_DB", &cfg.Storage.Redis.DB},
	}
	for _, e := range ints {
		if v := os.Getenv(e.key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("parse %s: %w", e.key, err)
			}
			*e.dst = n
		}
	}
	if v := os.Getenv("TOURNAMENT_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse TOURNAMENT_SEED: %w", err)
		}
		cfg.Tournament.Seed = seed
	}
	if v := os.Getenv("TOURNAMENT_OPPONENTS"); v != "" {
		cfg.Tournament.Opponents = strings.Split(v, ",")
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"STORAGE_DRIVER", &cfg.Storage.Driver},
		{"SQLITE_PATH", &cfg.Storage.SQLitePath},
		{"MYSQL_DSN", &cfg.Storage.MySQLDSN},
		{"REDIS_ADDRESS", &cfg.Storage.Redis.Address},
		{"REDIS_PASSWORD", &cfg.Storage.Redis.Password},
		{"RECORDER_SQLITE_PATH", &cfg.Recorder.SQLitePath},
		{"CRON_SCHEDULE", &cfg.Schedule.Cron},
		{"REPORT_SVG_PATH", &cfg.Report.SVGPath},
		{"LOG_LEVEL", &cfg.Log.Level},
	}
	for _, e := range strs {
		if v := os.Getenv(e.key); v != "" {
			*e.dst = v
		}
	}
	return nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Auction.Quantity < 0 || c.Auction.Cash < 0 {
		return fmt.Errorf("auction.quantity and auction.cash must not be negative")
	}
	if c.Auction.Quantity%model.RoundQuantity != 0 {
		return fmt.Errorf("auction.quantity must be a multiple of %d", model.RoundQuantity)
	}
	if err := c.Strategy.Validate(); err != nil {
		return fmt.Errorf("strategy: %w", err)
	}
	if c.Tournament.Runs <= 0 {
		return fmt.Errorf("tournament.runs must be positive")
	}
	for _, kind := range c.Tournament.Opponents {
		if _, err := opponent.Build(kind, 0); err != nil {
			return fmt.Errorf("tournament.opponents: %w", err)
		}
	}
	switch c.Storage.Driver {
	case "memory", "sqlite":
	case "mysql":
		if c.Storage.MySQLDSN == "" {
			return fmt.Errorf("storage.mysql_dsn is required for the mysql driver")
		}
	case "redis":
		if c.Storage.Redis.Address == "" {
			return fmt.Errorf("storage.redis.address is required for the redis driver")
		}
	default:
		return fmt.Errorf("storage.driver: %w: %q", history.ErrUnknownDriver, c.Storage.Driver)
	}
	return nil
}

// HistoryOptions maps the storage section onto history.Options.
func (c *Config) HistoryOptions() history.Options {
	return history.Options{
		Driver:     c.Storage.Driver,
		SQLitePath: c.Storage.SQLitePath,
		MySQLDSN:   c.Storage.MySQLDSN,
		Redis: history.RedisOptions{
			Address:  c.Storage.Redis.Address,
			Password: c.Storage.Redis.Password,
			DB:       c.Storage.Redis.DB,
			Prefix:   c.Storage.Redis.Prefix,
		},
	}
}
