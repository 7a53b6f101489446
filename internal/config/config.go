package config

import (
	"fmt"
	"strings"
	"time"

	apperrors "dealflow-backend/internal/errors"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Spreadsheet configuration
	SheetsBackend            string `mapstructure:"SHEETS_BACKEND"`
	SpreadsheetID            string `mapstructure:"GOOGLE_SHEETS_SPREADSHEET_ID"`
	ServiceAccountEmail      string `mapstructure:"GOOGLE_SERVICE_ACCOUNT_EMAIL"`
	ServiceAccountPrivateKey string `mapstructure:"GOOGLE_PRIVATE_KEY"`

	// Read cache
	CacheTTL time.Duration `mapstructure:"CACHE_TTL"`
}

// Load reads configuration from environment variables and an optional config file
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7008")
	v.SetDefault("LOG_LEVEL", "info")

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	// Spreadsheet defaults
	v.SetDefault("SHEETS_BACKEND", "sheets")
	v.SetDefault("GOOGLE_SHEETS_SPREADSHEET_ID", "")
	v.SetDefault("GOOGLE_SERVICE_ACCOUNT_EMAIL", "")
	v.SetDefault("GOOGLE_PRIVATE_KEY", "")

	v.SetDefault("CACHE_TTL", "30s")
}

func validate(config *Config) error {
	if config.Port == "" {
		return apperrors.NewConfigurationError("PORT is required")
	}
	if config.CacheTTL <= 0 {
		return apperrors.NewConfigurationError("CACHE_TTL must be positive")
	}

	switch config.SheetsBackend {
	case "memory":
		if config.Environment == "production" {
			return apperrors.NewConfigurationError("SHEETS_BACKEND=memory is not allowed in production")
		}
	case "sheets":
		var missing []string
		if config.SpreadsheetID == "" {
			missing = append(missing, "GOOGLE_SHEETS_SPREADSHEET_ID")
		}
		if config.ServiceAccountEmail == "" {
			missing = append(missing, "GOOGLE_SERVICE_ACCOUNT_EMAIL")
		}
		if config.ServiceAccountPrivateKey == "" {
			missing = append(missing, "GOOGLE_PRIVATE_KEY")
		}
		if len(missing) > 0 {
			return apperrors.NewConfigurationError("missing Google Sheets settings: " + strings.Join(missing, ", "))
		}
	default:
		return apperrors.NewConfigurationError(fmt.Sprintf("unknown SHEETS_BACKEND %q (want sheets or memory)", config.SheetsBackend))
	}

	return nil
}
