package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

// Config is the bootstrap configuration needed before the database is open.
// Per-install preferences live in the app_config table instead.
type Config struct {
	DBPath        string `yaml:"db_path"`
	Store         string `yaml:"store"`
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
	LogLevel      string `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{Store: StoreSQLite, LogLevel: "warn"}
}

// LoadConfig layers defaults, the YAML file at path, a .env file in the
// working directory and CALTRACK_* environment variables, in that order.
// A missing YAML or .env file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	explicit := path != ""
	if !explicit {
		p, err := DefaultConfigPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Store = NormalizeStore(cfg.Store)
	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("CALTRACK_DB"); ok {
		cfg.DBPath = v
	}
	if v, ok := os.LookupEnv("CALTRACK_STORE"); ok {
		cfg.Store = v
	}
	if v, ok := os.LookupEnv("CALTRACK_REDIS_ADDR"); ok {
		cfg.RedisAddr = v
	}
	if v, ok := os.LookupEnv("CALTRACK_REDIS_PASSWORD"); ok {
		cfg.RedisPassword = v
	}
	if v, ok := os.LookupEnv("CALTRACK_REDIS_DB"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid CALTRACK_REDIS_DB %q", v)
		}
		cfg.RedisDB = n
	}
	if v, ok := os.LookupEnv("CALTRACK_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	return nil
}

// NormalizeStore folds a store name to the lower-case form the store
// constants use.
func NormalizeStore(kind string) string {
	return strings.ToLower(strings.TrimSpace(kind))
}

func (c Config) Validate() error {
	switch NormalizeStore(c.Store) {
	case StoreSQLite:
	case StoreRedis:
		if strings.TrimSpace(c.RedisAddr) == "" {
			return fmt.Errorf("redis store requires a redis address")
		}
	default:
		return fmt.Errorf("invalid store %q (use sqlite or redis)", c.Store)
	}
	if c.RedisDB < 0 {
		return fmt.Errorf("redis db must be >= 0")
	}
	return nil
}
