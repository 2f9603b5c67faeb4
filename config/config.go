package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App AppConfig
	DB  DBConfig
}

type AppConfig struct {
	Port      string
	StaticDir string
}

type DBConfig struct {
	URL string
}

var ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// A .env file is optional; real environment variables always apply.
	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(".env"); statErr == nil {
			return nil, err
		}
	}

	viper.SetDefault("PORT", "3000")
	viper.SetDefault("STATIC_DIR", "./public")

	config := &Config{
		App: AppConfig{
			Port:      viper.GetString("PORT"),
			StaticDir: viper.GetString("STATIC_DIR"),
		},
		DB: DBConfig{
			URL: viper.GetString("DATABASE_URL"),
		},
	}

	if config.DB.URL == "" {
		return nil, ErrMissingDatabaseURL
	}

	return config, nil
}
