package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// PathEnv names the optional YAML config file.
const PathEnv = "CONFIG_PATH"

type Config struct {
	Env           string `yaml:"env"`
	LogLevel      string `yaml:"log_level"`
	LogFile       string `yaml:"log_file"`
	LogMaxSizeMB  int    `yaml:"log_max_size_mb"`
	LogMaxBackups int    `yaml:"log_max_backups"`
	LogMaxAgeDays int    `yaml:"log_max_age_days"`
	HttpPort      int    `yaml:"http_port"`
	MaxBodyBytes  int64  `yaml:"max_body_bytes"`
}

func Default() *Config {
	return &Config{
		Env:           "local",
		LogLevel:      "warn",
		LogFile:       "logs/minigrep.log",
		LogMaxSizeMB:  100,
		LogMaxBackups: 3,
		LogMaxAgeDays: 30,
		HttpPort:      8080,
		MaxBodyBytes:  10 << 20,
	}
}

// LoadConfig reads path over the defaults, so a file only needs the keys it changes.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load uses CONFIG_PATH when it is set and the defaults otherwise.
func Load() (*Config, error) {
	path := os.Getenv(PathEnv)
	if path == "" {
		return Default(), nil
	}
	return LoadConfig(path)
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}
