// Package config handles loading and parsing application configuration.
// It supports three sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//  3. Neither: defaults from env-default tags, overridable per field by
//     the environment (ENV, STORAGE_DRIVER, STORAGE_PATH)
//
// The program runs with no flags and no environment at all; a config
// file is only needed to change the defaults.
package config

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aanand-mishra/student-records/internal/storage"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	// Storage is embedded so cfg.Storage.Path and cfg.Path both work.
	Storage `yaml:"storage"`
}

// Storage selects the record-store backend.
type Storage struct {
	// Driver is "memory" (default) or "sqlite".
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`

	// Path is the SQLite data source. ":memory:" keeps records in RAM
	// only. Ignored by the memory driver.
	Path string `yaml:"path" env:"STORAGE_PATH" env-default:":memory:"`
}

// Load reads the config at path, or only the environment and defaults
// when path is empty, and checks the result.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read env: %w", err)
		}
	} else {
		// os.Stat first gives a clearer message than the open error later.
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config.Load: config file does not exist: %s", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read config: %w", err)
		}
	}

	switch cfg.Storage.Driver {
	case storage.DriverMemory, storage.DriverSQLite:
	default:
		return nil, fmt.Errorf("config.Load: unknown storage driver: %q", cfg.Storage.Driver)
	}

	return &cfg, nil
}

// MustLoad resolves the config path from CONFIG_PATH or --config and
// returns the loaded config. It exits the process on any failure, so
// callers do not need to check an error.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %s", err.Error())
	}

	return cfg
}
