package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	AccessTokenTTLMin  int    `mapstructure:"ACCESS_TOKEN_TTL_MIN"`
	RefreshTokenTTLHrs int    `mapstructure:"REFRESH_TOKEN_TTL_HRS"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Redis configuration (cache, token revocation, asynq broker)
	RedisURL string `mapstructure:"REDIS_URL"`

	// ElevenLabs configuration (primary TTS)
	ElevenLabsAPIKey  string `mapstructure:"ELEVENLABS_API_KEY"`
	ElevenLabsBaseURL string `mapstructure:"ELEVENLABS_BASE_URL"`

	// Cartesia configuration (fallback TTS)
	CartesiaAPIKey  string `mapstructure:"CARTESIA_API_KEY"`
	CartesiaBaseURL string `mapstructure:"CARTESIA_BASE_URL"`

	// OpenAI configuration (conversation LLM)
	OpenAIAPIKey  string `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL string `mapstructure:"OPENAI_BASE_URL"`

	// MLS feed configuration
	MLSBaseURL string `mapstructure:"MLS_BASE_URL"`
	MLSAPIKey  string `mapstructure:"MLS_API_KEY"`

	// Salesforce CRM configuration
	SalesforceClientID     string `mapstructure:"SALESFORCE_CLIENT_ID"`
	SalesforceClientSecret string `mapstructure:"SALESFORCE_CLIENT_SECRET"`
	SalesforceTokenURL     string `mapstructure:"SALESFORCE_TOKEN_URL"`
	SalesforceInstanceURL  string `mapstructure:"SALESFORCE_INSTANCE_URL"`

	// SendGrid configuration
	SendGridAPIKey    string `mapstructure:"SENDGRID_API_KEY"`
	SendGridFromEmail string `mapstructure:"SENDGRID_FROM_EMAIL"`
	SendGridFromName  string `mapstructure:"SENDGRID_FROM_NAME"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "estatevoice")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")
	viper.SetDefault("ACCESS_TOKEN_TTL_MIN", 60)
	viper.SetDefault("REFRESH_TOKEN_TTL_HRS", 720)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Redis defaults
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")

	// TTS defaults
	viper.SetDefault("ELEVENLABS_API_KEY", "")
	viper.SetDefault("ELEVENLABS_BASE_URL", "wss://api.elevenlabs.io")
	viper.SetDefault("CARTESIA_API_KEY", "")
	viper.SetDefault("CARTESIA_BASE_URL", "wss://api.cartesia.ai")

	// OpenAI defaults
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")

	// MLS defaults
	viper.SetDefault("MLS_BASE_URL", "")
	viper.SetDefault("MLS_API_KEY", "")

	// Salesforce defaults
	viper.SetDefault("SALESFORCE_CLIENT_ID", "")
	viper.SetDefault("SALESFORCE_CLIENT_SECRET", "")
	viper.SetDefault("SALESFORCE_TOKEN_URL", "")
	viper.SetDefault("SALESFORCE_INSTANCE_URL", "")

	// SendGrid defaults
	viper.SetDefault("SENDGRID_API_KEY", "")
	viper.SetDefault("SENDGRID_FROM_EMAIL", "no-reply@estatevoice.io")
	viper.SetDefault("SENDGRID_FROM_NAME", "EstateVoice")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.AccessTokenTTLMin <= 0 || config.RefreshTokenTTLHrs <= 0 {
		return fmt.Errorf("token TTLs must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
