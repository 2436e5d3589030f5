// Package config loads application settings.
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultTasksURL is the remote tasks collection.
	DefaultTasksURL = "https://jsonplaceholder.typicode.com/todos"

	// DefaultUsersURL is the remote users collection.
	DefaultUsersURL = "https://jsonplaceholder.typicode.com/users"

	// DefaultListenAddr is where the web page is served.
	DefaultListenAddr = "0.0.0.0:8080"

	// DefaultConfigFile is read from the working directory when present.
	DefaultConfigFile = "tasklist.yaml"

	envPrefix = "TASKLIST"
)

// Config holds application settings.
type Config struct {
	TasksURL   string `mapstructure:"tasks_url"`
	UsersURL   string `mapstructure:"users_url"`
	ListenAddr string `mapstructure:"listen_addr"`

	// RequestTimeout bounds each remote read. Zero means no timeout.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	// LogFile receives log output while the terminal UI owns the screen.
	LogFile string `mapstructure:"log_file"`
}

// Load reads settings from defaults, an optional YAML file and TASKLIST_*
// environment variables, later sources overriding earlier ones.
// An explicit path must exist; the default file is optional.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("tasks_url", DefaultTasksURL)
	v.SetDefault("users_url", DefaultUsersURL)
	v.SetDefault("listen_addr", DefaultListenAddr)
	v.SetDefault("request_timeout", time.Duration(0))
	v.SetDefault("log_file", "tasklist.log")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat(DefaultConfigFile); err == nil {
		v.SetConfigFile(DefaultConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.TasksURL == "" || cfg.UsersURL == "" {
		return nil, errors.New("tasks_url and users_url must be set")
	}
	return &cfg, nil
}
