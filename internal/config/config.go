package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	Restaurant  RestaurantConfig
	Storage     StorageConfig
}

type RestaurantConfig struct {
	Name          string
	WhatsAppPhone string
}

type StorageConfig struct {
	DataDir string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("RESTAURANT_NAME", "Spice Terra")
	viper.SetDefault("WHATSAPP_PHONE", "6394993583")
	viper.SetDefault("DATA_DIR", "./data")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
		Restaurant: RestaurantConfig{
			Name:          getEnvOrViper("RESTAURANT_NAME", "Spice Terra"),
			WhatsAppPhone: getEnvOrViper("WHATSAPP_PHONE", "6394993583"),
		},
		Storage: StorageConfig{
			DataDir: getEnvOrViper("DATA_DIR", "./data"),
		},
	}

	// Validate required fields
	if cfg.Restaurant.Name == "" {
		return nil, fmt.Errorf("RESTAURANT_NAME is required")
	}
	if cfg.Restaurant.WhatsAppPhone == "" {
		return nil, fmt.Errorf("WHATSAPP_PHONE is required")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
