// Package config loads lv settings from config.yaml, .env and LV_* variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/bunchhieng/lv/internal/storage"
)

const (
	appDir         = "lv"
	configFilename = "config.yaml"
	envPrefix      = "lv"
)

// Config holds the resolved settings.
type Config struct {
	DBPath     string `mapstructure:"db_path" yaml:"db_path"`
	StorageKey string `mapstructure:"storage_key" yaml:"storage_key"`
	LogFormat  string `mapstructure:"log_format" yaml:"log_format"` // pretty, json, or text
	LogLevel   string `mapstructure:"log_level" yaml:"log_level"`   // debug, info, warn, error
	LogFile    string `mapstructure:"log_file" yaml:"log_file"`     // used while the TUI owns the terminal
}

// Dir returns the platform config directory for lv.
func Dir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, appDir), nil
}

// Defaults returns the settings used when nothing overrides them. Paths live
// under dir.
func Defaults(dir string) Config {
	return Config{
		DBPath:     filepath.Join(dir, "links.db"),
		StorageKey: storage.DefaultKey,
		LogFormat:  "pretty",
		LogLevel:   "warn",
		LogFile:    filepath.Join(dir, "lv.log"),
	}
}

// Load reads the config file at path, or config.yaml in Dir when path is
// empty. A missing file is created with the defaults. Values from a .env
// file in the working directory and LV_* environment variables win over
// the file.
func Load(path string) (*Config, error) {
	var dir string
	if path == "" {
		d, err := Dir()
		if err != nil {
			return nil, fmt.Errorf("locate config directory: %w", err)
		}
		dir = d
		path = filepath.Join(dir, configFilename)
	} else {
		dir = filepath.Dir(path)
	}

	// A missing .env is the common case.
	_ = godotenv.Load()

	defaults := Defaults(dir)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := writeFile(path, defaults); err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetDefault("db_path", defaults.DBPath)
	v.SetDefault("storage_key", defaults.StorageKey)
	v.SetDefault("log_format", defaults.LogFormat)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_file", defaults.LogFile)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

func writeFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer f.Close()

	if err := yaml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
