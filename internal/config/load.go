package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables take
// precedence over values from the config file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.log_level", "info")
	// Shared-cache DSN so every connection sees the same in-memory database.
	v.SetDefault("database.path", "file::memory:?cache=shared")
	v.SetDefault("auth.token_lifetime_minutes", 60)

	// Configure optional config file in the working directory
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Configure environment variables with TASKTRACK_ prefix
	v.SetEnvPrefix("TASKTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind critical environment variables so they are visible
	// to Unmarshal even when no config file sets the corresponding keys.
	bindEnvs := []struct {
		key    string
		envVar string
	}{
		{"server.port", "TASKTRACK_SERVER_PORT"},
		{"server.log_level", "TASKTRACK_SERVER_LOG_LEVEL"},
		{"database.path", "TASKTRACK_DATABASE_PATH"},
		{"auth.jwt_secret", "TASKTRACK_AUTH_JWT_SECRET"},
		{"auth.token_lifetime_minutes", "TASKTRACK_AUTH_TOKEN_LIFETIME_MINUTES"},
	}

	for _, env := range bindEnvs {
		if err := v.BindEnv(env.key, env.envVar); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", env.envVar, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
