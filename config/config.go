package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Conversational assistant specifics
	Telegram  TelegramConfig
	Weather   WeatherConfig
	Petfinder PetfinderConfig
	Market    MarketConfig
	Session   SessionConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type TelegramConfig struct {
	BotToken      string
	WebhookURL    string
	WebhookSecret string
}

type WeatherConfig struct {
	APIKey  string
	BaseURL string
}

type PetfinderConfig struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
}

type MarketConfig struct {
	BaseURL           string
	RequestsPerMinute int
}

type SessionConfig struct {
	TTL      time.Duration
	Capacity int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.WebhookSecret = viper.GetString("telegram.webhook_secret")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}
	if tgSecret := viper.GetString("telegram_webhook_secret"); tgSecret != "" {
		cfg.Telegram.WebhookSecret = tgSecret
	}

	// WeatherAPI
	cfg.Weather.APIKey = viper.GetString("weather.api_key")
	cfg.Weather.BaseURL = viper.GetString("weather.base_url")
	if weatherKey := viper.GetString("weather_api_key"); weatherKey != "" {
		cfg.Weather.APIKey = weatherKey
	}

	// Petfinder
	cfg.Petfinder.ClientID = viper.GetString("petfinder.client_id")
	cfg.Petfinder.ClientSecret = viper.GetString("petfinder.client_secret")
	cfg.Petfinder.BaseURL = viper.GetString("petfinder.base_url")
	if pfID := viper.GetString("petfinder_client_id"); pfID != "" {
		cfg.Petfinder.ClientID = pfID
	}
	if pfSecret := viper.GetString("petfinder_client_secret"); pfSecret != "" {
		cfg.Petfinder.ClientSecret = pfSecret
	}

	// Market data
	cfg.Market.BaseURL = viper.GetString("market.base_url")
	cfg.Market.RequestsPerMinute = viper.GetInt("market.requests_per_minute")

	// Session store
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.Capacity = viper.GetInt("session.capacity")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("market.requests_per_minute", 280)
	viper.SetDefault("session.ttl", "10m")
	viper.SetDefault("session.capacity", 1024)
}
