package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Host          string        `mapstructure:"host"`
	Port          int           `mapstructure:"port"`
	Token         string        `mapstructure:"token"`
	DaemonPort    int           `mapstructure:"daemon_port"`
	Debounce      time.Duration `mapstructure:"debounce"`
	BufferSize    int           `mapstructure:"buffer_size"`
	IgnoreList    []string      `mapstructure:"ignore_list"`
	BundleCommand []string      `mapstructure:"bundle_command"`
	BundleTimeout time.Duration `mapstructure:"bundle_timeout"`
	DBPath        string        `mapstructure:"db_path"`
}

var Default = Config{
	Host:          "localhost",
	Port:          9990,
	DaemonPort:    9991,
	Debounce:      100 * time.Millisecond,
	BufferSize:    100,
	IgnoreList:    []string{".git", "node_modules", ".DS_Store", "*.swp", "*~"},
	BundleCommand: []string{"deno", "bundle"},
	BundleTimeout: 30 * time.Second,
	DBPath:        "bbsync.db",
}

func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home dir: %w", err)
	}

	return filepath.Join(home, ".bbsync"), nil
}

func Load() (*Config, error) {
	configDir, err := Dir()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config dir: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	viper.SetDefault("host", Default.Host)
	viper.SetDefault("port", Default.Port)
	viper.SetDefault("daemon_port", Default.DaemonPort)
	viper.SetDefault("debounce", Default.Debounce)
	viper.SetDefault("buffer_size", Default.BufferSize)
	viper.SetDefault("ignore_list", Default.IgnoreList)
	viper.SetDefault("bundle_command", Default.BundleCommand)
	viper.SetDefault("bundle_timeout", Default.BundleTimeout)
	viper.SetDefault("db_path", filepath.Join(configDir, Default.DBPath))

	viper.SetEnvPrefix("BBSYNC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := errors.AsType[viper.ConfigFileNotFoundError](err); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
