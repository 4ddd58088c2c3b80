package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/franciscosanchezn/pizza-factory/internal/orderlog"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		// Default to info level for other environments
		log.SetLevel(logrus.InfoLevel)
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Application configuration
	Environment string `json:"environment"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Receipt configuration
	ReceiptSink    string `json:"receipt_sink"`
	ReceiptLogPath string `json:"receipt_log_path"`

	// Metrics configuration
	MetricsEnabled bool `json:"metrics_enabled"`
}

// String returns a string representation of Config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, LogLevel: %s, ReceiptSink: %s, ReceiptLogPath: %s, MetricsEnabled: %t}",
		c.Environment, c.LogLevel, c.ReceiptSink, c.ReceiptLogPath, c.MetricsEnabled)
}

// ReceiptLog returns the receipt sink configuration
func (c *Config) ReceiptLog() orderlog.Config {
	return orderlog.Config{
		Sink: c.ReceiptSink,
		Path: c.ReceiptLogPath,
	}
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// It also validates the receipt sink selection
// Returns an error if any environment variable is invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")

	config := &Config{
		Environment:    GetEnvWithDefault("APP_ENV", "development"),
		LogLevel:       GetEnvWithDefault("LOG_LEVEL", "info"),
		ReceiptSink:    GetEnvWithDefault("RECEIPT_SINK", orderlog.SinkFile),
		ReceiptLogPath: GetEnvWithDefault("RECEIPT_LOG_PATH", orderlog.DefaultPath),
		MetricsEnabled: GetEnvAsType("METRICS_ENABLED", true),
	}

	if err := config.ReceiptLog().Validate(); err != nil {
		return nil, fmt.Errorf("invalid RECEIPT_SINK: %w", err)
	}

	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
