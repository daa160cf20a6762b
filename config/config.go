package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Marketplace backend API (availability load/save).
	BackendBaseURL string        `mapstructure:"BACKEND_BASE_URL"`
	BackendTimeout time.Duration `mapstructure:"BACKEND_TIMEOUT"`

	// Edit-draft lifetime before the janitor discards it.
	DraftTTLMinutes int `mapstructure:"DRAFT_TTL_MINUTES"`

	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisDraftDB   int    `mapstructure:"REDIS_DRAFT_DB"`
	RedisJanitorDB int    `mapstructure:"REDIS_JANITOR_DB"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("BACKEND_BASE_URL", "http://localhost:9000")
	viper.SetDefault("BACKEND_TIMEOUT", "10s")
	viper.SetDefault("DRAFT_TTL_MINUTES", 120)
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DRAFT_DB", 0)
	viper.SetDefault("REDIS_JANITOR_DB", 1)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
