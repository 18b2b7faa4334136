// Package config loads application settings from configs/config.yml,
// an optional .env file, and BRAINLY_-prefixed environment variables,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Fallback defaults keep local development runnable with no config at
// all. The jwt secret default is a deployment hazard by definition and
// must be overridden outside local environments.
const (
	defaultEnv       = "local"
	defaultPort      = "8080"
	defaultLogLevel  = "debug"
	defaultDBPath    = "brainly.db"
	defaultJWTSecret = "dev-secret-change-me"
	defaultTokenTTL  = 72 * time.Hour
)

type Config struct {
	Env  string
	Port string

	LogLevel string

	DBPath string

	JWTSecret string
	TokenTTL  time.Duration

	CORSAllowOrigins []string
}

// Load reads the config file if present and applies environment
// overrides on top. A missing config file is fine; a malformed one is not.
func Load() (*Config, error) {
	// .env is optional and only feeds the BRAINLY_* lookups below
	_ = godotenv.Load()

	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")

	viper.SetDefault("env", defaultEnv)
	viper.SetDefault("port", defaultPort)
	viper.SetDefault("log.level", defaultLogLevel)
	viper.SetDefault("db.path", defaultDBPath)
	viper.SetDefault("auth.jwt_secret", defaultJWTSecret)
	viper.SetDefault("auth.token_ttl", defaultTokenTTL)
	viper.SetDefault("cors.allow_origins", []string{"http://localhost:5173"})

	viper.SetEnvPrefix("BRAINLY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Env:              viper.GetString("env"),
		Port:             viper.GetString("port"),
		LogLevel:         viper.GetString("log.level"),
		DBPath:           viper.GetString("db.path"),
		JWTSecret:        viper.GetString("auth.jwt_secret"),
		TokenTTL:         viper.GetDuration("auth.token_ttl"),
		CORSAllowOrigins: viper.GetStringSlice("cors.allow_origins"),
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	return cfg, nil
}
