package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Relay specifics
	Brain    BrainConfig
	Telegram TelegramConfig
	Intent   IntentConfig

	// Inbound protection
	Guard GuardConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// BrainConfig describes the external answering service (usually an n8n webhook).
// An empty URL is valid: the relay then answers every delegated turn with the
// not-configured message.
type BrainConfig struct {
	URL     string
	Timeout time.Duration
}

type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	SecretToken string // echoed back by Telegram in X-Telegram-Bot-Api-Secret-Token
	// NgrokAPIURL is the local ngrok API, used to discover WebhookURL in development.
	NgrokAPIURL string
}

type IntentConfig struct {
	EmptyInput string // "delegate" or "prompt"
}

type GuardConfig struct {
	RateLimitPerMin int
	DedupeTTL       time.Duration
}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

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
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	if port := viper.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Brain
	cfg.Brain.URL = strings.TrimSpace(viper.GetString("brain.url"))
	if n8nURL := strings.TrimSpace(viper.GetString("n8n_url")); n8nURL != "" {
		cfg.Brain.URL = n8nURL
	}
	cfg.Brain.Timeout = viper.GetDuration("brain.timeout")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = viper.GetString("telegram.secret_token")
	cfg.Telegram.NgrokAPIURL = viper.GetString("telegram.ngrok_api_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// Intent router
	cfg.Intent.EmptyInput = strings.ToLower(viper.GetString("intent.empty_input"))

	// Guard
	cfg.Guard.RateLimitPerMin = viper.GetInt("guard.rate_limit_per_min")
	cfg.Guard.DedupeTTL = viper.GetDuration("guard.dedupe_ttl")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 3978)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "20s") // longer than brain.timeout so pending turns drain
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("brain.timeout", "15s")
	viper.SetDefault("intent.empty_input", "delegate")

	viper.SetDefault("guard.rate_limit_per_min", 60)
	viper.SetDefault("guard.dedupe_ttl", "10m")
}

func validate(cfg *Config) error {
	if err := ValidateEmptyInput(cfg.Intent.EmptyInput); err != nil {
		return err
	}
	if cfg.Brain.Timeout <= 0 {
		return fmt.Errorf("brain.timeout must be positive")
	}
	if cfg.Guard.RateLimitPerMin < 0 {
		return fmt.Errorf("guard.rate_limit_per_min must not be negative")
	}
	return nil
}

// ValidateEmptyInput checks an intent.empty_input value from any source.
func ValidateEmptyInput(policy string) error {
	switch policy {
	case "delegate", "prompt":
		return nil
	default:
		return fmt.Errorf("intent.empty_input must be \"delegate\" or \"prompt\", got %q", policy)
	}
}
