package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// GlobalConfig is the root of config/config.yaml.
type GlobalConfig struct {
	Profile      ProfileConfig  `mapstructure:"profile"`
	Database     DatabaseConfig `mapstructure:"database"`
	Browser      BrowserConfig  `mapstructure:"browser"`
	Applications []string       `mapstructure:"applications"`
	Bot          BotConfig      `mapstructure:"bot"`
}

// ProfileConfig points at the candidate profile and résumé on disk.
type ProfileConfig struct {
	Path       string `mapstructure:"path"`
	ResumePath string `mapstructure:"resumePath"`
}

// DatabaseConfig holds the MySQL DSN for fill reports and cookies.
type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

// BrowserConfig controls the automation session.
type BrowserConfig struct {
	Headless bool `mapstructure:"headless"`
	// SlowTiming stretches every wait for constrained environments.
	SlowTiming bool `mapstructure:"slowTiming"`
}

// BotConfig configures the optional Telegram run summary.
type BotConfig struct {
	IsSend bool   `mapstructure:"is_send"`
	Token  string `mapstructure:"token"`
	ChatID int64  `mapstructure:"chat_id"`
}

// InitConfig loads config/config.yaml, letting environment variables
// (optionally from a .env file) override file values.
func InitConfig() (*GlobalConfig, error) {
	_ = godotenv.Load()
	return loadConfig("./config")
}

func loadConfig(dir string) (*GlobalConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	// Nested keys map to underscored variables, so DATABASE_DSN
	// overrides database.dsn.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var config GlobalConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return &config, nil
}
