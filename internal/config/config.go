package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config defines application configuration.
type Config struct {
	Mode   string       `yaml:"mode"` // "cli" or "mcp"
	Data   DataConfig   `yaml:"data"`
	Export ExportConfig `yaml:"export"`
	Log    LogConfig    `yaml:"log"`
}

type DataConfig struct {
	Dir string `yaml:"dir"`
}

type ExportConfig struct {
	Dir string `yaml:"dir"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional .env file, an optional YAML file,
// and environment variables, in that order of increasing precedence.
func Load() (Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := Config{
		Mode: "cli",
		Data: DataConfig{
			Dir: "data",
		},
		Export: ExportConfig{
			Dir: "exports",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("STUDYBUDDY_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if mode := os.Getenv("STUDYBUDDY_MODE"); mode != "" {
		cfg.Mode = mode
	}
	if dir := os.Getenv("STUDYBUDDY_DATA_DIR"); dir != "" {
		cfg.Data.Dir = dir
	}
	if dir := os.Getenv("STUDYBUDDY_EXPORT_DIR"); dir != "" {
		cfg.Export.Dir = dir
	}
	if level := os.Getenv("STUDYBUDDY_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if cfg.Mode != "cli" && cfg.Mode != "mcp" {
		return Config{}, fmt.Errorf("invalid mode %q (want cli or mcp)", cfg.Mode)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
