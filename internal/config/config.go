package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port int        `mapstructure:"port"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Sheets     SheetsConfig     `mapstructure:"sheets"`
	Extraction ExtractionConfig `mapstructure:"extraction"`
	DataLayer  DataLayerConfig  `mapstructure:"data_layer"`
}

// DatabaseConfig configures the relational backend. Driver selects between
// "mysql" for server deployments and "sqlite" for single-user local storage.
type DatabaseConfig struct {
	Driver          string            `mapstructure:"driver" validate:"omitempty,oneof=mysql sqlite"`
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	Path            string            `mapstructure:"path"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

// SheetsConfig configures the legacy spreadsheet backend client.
type SheetsConfig struct {
	BaseURL       string `mapstructure:"base_url" validate:"omitempty,url"`
	SpreadsheetID string `mapstructure:"spreadsheet_id"`
	APIToken      string `mapstructure:"api_token"`
	RetryAttempts uint   `mapstructure:"retry_attempts"`
}

// ExtractionConfig configures the chord-chart extraction service client.
type ExtractionConfig struct {
	BaseURL       string `mapstructure:"base_url" validate:"omitempty,url"`
	APIKey        string `mapstructure:"api_key"`
	Model         string `mapstructure:"model"`
	RetryAttempts uint   `mapstructure:"retry_attempts"`
}

// DataLayerConfig selects which storage backend serves traffic.
type DataLayerConfig struct {
	Backend string `mapstructure:"backend" validate:"omitempty,oneof=relational sheets"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/fretlog")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "fretlog")
	v.SetDefault("database.username", "fretlog")
	v.SetDefault("database.path", "fretlog.db")
	v.SetDefault("sheets.retry_attempts", 3)
	v.SetDefault("extraction.retry_attempts", 2)
	v.SetDefault("data_layer.backend", "relational")

	// Bind secrets to environment variables only (not from config file)
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("sheets.api_token", "SHEETS_API_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind SHEETS_API_TOKEN environment variable: %w", err)
	}
	if err := v.BindEnv("extraction.api_key", "EXTRACTION_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind EXTRACTION_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("data_layer.backend", "DATA_LAYER_BACKEND"); err != nil {
		return nil, fmt.Errorf("failed to bind DATA_LAYER_BACKEND environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
