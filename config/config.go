package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App  AppConfig
	JWT  JWTConfig
	Auth AuthConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

// AuthConfig holds the single demo account the mock login accepts.
type AuthConfig struct {
	Email    string
	Password string
}

// LoadConfig reads .env (when present) and environment variables. Every key
// has a default so the server runs with no configuration at all.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("JWT_SECRET", "medicare-dev-secret")
	viper.SetDefault("JWT_EXPIRY", "1h")
	viper.SetDefault("AUTH_EMAIL", "pakonchai@gmail.com")
	viper.SetDefault("AUTH_PASSWORD", "1234")

	// A missing .env is fine; defaults and env vars still apply.
	_ = viper.ReadInConfig()

	expiry, err := time.ParseDuration(viper.GetString("JWT_EXPIRY"))
	if err != nil {
		expiry = time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
			Expiry: expiry,
		},
		Auth: AuthConfig{
			Email:    viper.GetString("AUTH_EMAIL"),
			Password: viper.GetString("AUTH_PASSWORD"),
		},
	}

	return config, nil
}
