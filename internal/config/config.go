package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Telegram TelegramConfig `mapstructure:"telegram"`
	Google   GoogleConfig   `mapstructure:"google"`
	Deck     DeckConfig     `mapstructure:"deck"`
	Remote   RemoteConfig   `mapstructure:"remote"`
	Log      LogConfig      `mapstructure:"log"`

	// Source is the config file that was read, or "environment"
	Source string `mapstructure:"-"`
}

type TelegramConfig struct {
	Token string `mapstructure:"token" env:"TELEGRAM_BOT_TOKEN" validate:"required"`
}

type GoogleConfig struct {
	APIKey   string `mapstructure:"api_key" env:"GOOGLE_API_KEY" validate:"required"`
	FolderID string `mapstructure:"folder_id" env:"FOLDER_ID" validate:"required"`
}

type DeckConfig struct {
	// Path of the card catalog; empty uses the built-in catalog
	Path string `mapstructure:"path" env:"DECK_PATH" validate:"omitempty,file"`
}

type RemoteConfig struct {
	DownloadURL       string        `mapstructure:"download_url" validate:"required,url"`
	LookupTimeout     time.Duration `mapstructure:"lookup_timeout" validate:"gt=0"`
	DownloadTimeout   time.Duration `mapstructure:"download_timeout" validate:"gt=0"`
	LookupAttempts    uint          `mapstructure:"lookup_attempts" validate:"min=1,max=5"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second" validate:"gt=0"`
	Burst             int           `mapstructure:"burst" validate:"min=1"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

// Need names a group of settings that only some commands require
type Need int

const (
	// NeedDrive requires Google Drive credentials
	NeedDrive Need = iota
	// NeedTelegram requires the Telegram bot token
	NeedTelegram
)

// envBindings maps config keys to the environment variables that set them
var envBindings = map[string]string{
	"telegram.token":   "TELEGRAM_BOT_TOKEN",
	"google.api_key":   "GOOGLE_API_KEY",
	"google.folder_id": "FOLDER_ID",
	"deck.path":        "DECK_PATH",
	"log.level":        "LOG_LEVEL",
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "eventtarot", "config.toml")
}

// LoadDotEnv loads variables from a .env file if it exists. Variables that
// are already set are left alone.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return &ConfigError{Source: path, Err: err}
	}
	return nil
}

// Load reads configFile, or config.toml from the XDG config directory or the
// working directory when configFile is empty. A missing default config file
// is not an error; environment variables and defaults still apply.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("toml")

	if configFile != "" {
		if _, err := os.Stat(configFile); err != nil {
			return nil, &ConfigError{Source: configFile, Err: err}
		}
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(filepath.Dir(GetConfigFilePath()))
		v.AddConfigPath(".")
	}

	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, &ConfigError{Source: configFile, Err: fmt.Errorf("configuration file could not be read: %w", err)}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &ConfigError{Source: v.ConfigFileUsed(), Err: fmt.Errorf("invalid configuration format: %w", err)}
	}

	cfg.Source = v.ConfigFileUsed()
	if cfg.Source == "" {
		cfg.Source = "environment"
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("remote.download_url", "https://drive.google.com/uc")
	v.SetDefault("remote.lookup_timeout", 15*time.Second)
	v.SetDefault("remote.download_timeout", 30*time.Second)
	v.SetDefault("remote.lookup_attempts", 2)
	v.SetDefault("remote.requests_per_second", 8.0)
	v.SetDefault("remote.burst", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// defaultFile is the layout written by WriteDefault. Secrets are left to the
// environment.
type defaultFile struct {
	Deck struct {
		Path string `toml:"path"`
	} `toml:"deck"`
	Remote struct {
		DownloadURL       string  `toml:"download_url"`
		LookupTimeout     string  `toml:"lookup_timeout"`
		DownloadTimeout   string  `toml:"download_timeout"`
		LookupAttempts    int     `toml:"lookup_attempts"`
		RequestsPerSecond float64 `toml:"requests_per_second"`
		Burst             int     `toml:"burst"`
	} `toml:"remote"`
	Log struct {
		Level  string `toml:"level"`
		Format string `toml:"format"`
	} `toml:"log"`
}

// WriteDefault creates a config file with default settings at path. An
// existing file is left untouched and reported with created == false.
func WriteDefault(path string) (created bool, err error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("error creating config directory: %v", err)
	}

	var f defaultFile
	f.Remote.DownloadURL = "https://drive.google.com/uc"
	f.Remote.LookupTimeout = "15s"
	f.Remote.DownloadTimeout = "30s"
	f.Remote.LookupAttempts = 2
	f.Remote.RequestsPerSecond = 8
	f.Remote.Burst = 10
	f.Log.Level = "info"
	f.Log.Format = "json"

	file, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(f); err != nil {
		return false, fmt.Errorf("error encoding config: %v", err)
	}

	return true, nil
}
