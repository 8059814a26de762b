package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Catalog     CatalogConfig
	Recommender RecommenderConfig
	RateLimit   RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig selects the catalog data source. An empty CSVPath means
// the built-in seed catalog is used.
type CatalogConfig struct {
	CSVPath string `mapstructure:"csv_path"`
}

// RecommenderConfig holds recommendation engine configuration
type RecommenderConfig struct {
	MaxFeatures        int  `mapstructure:"max_features"`
	DefaultTopN        int  `mapstructure:"default_top_n"`
	EnableDebugLogging bool `mapstructure:"enable_debug_logging"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute per client IP
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/glowmatch/")

	// Environment variable settings: GLOWMATCH_SERVER_PORT overrides
	// server.port, and so on
	v.SetEnvPrefix("GLOWMATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// Catalog defaults: empty csv_path selects the built-in seed catalog
	v.SetDefault("catalog.csv_path", "")

	// Recommender defaults
	v.SetDefault("recommender.max_features", 1000)
	v.SetDefault("recommender.default_top_n", 5)
	v.SetDefault("recommender.enable_debug_logging", false)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Recommender.MaxFeatures <= 0 {
		return fmt.Errorf("recommender max_features must be positive, got: %d", config.Recommender.MaxFeatures)
	}

	if config.Recommender.DefaultTopN <= 0 {
		return fmt.Errorf("recommender default_top_n must be positive, got: %d", config.Recommender.DefaultTopN)
	}

	if config.RateLimit.PerIP <= 0 {
		return fmt.Errorf("ratelimit per_ip must be positive, got: %d", config.RateLimit.PerIP)
	}

	return nil
}
