package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/keyforge/jwkforge/pkg/utils"
	"github.com/spf13/viper"
)

var (
	once              sync.Once
	instance          *Config
	rsaBits           = 2048  // Default RSA key size
	outputDir         = "."   // Default directory for generated PEM files
	keyUse            = "sig" // Default JWK use value
	cacheTTL          = "1h"  // Default key set cache TTL
	cacheMaxLocalSize = 16    // Default max entries for the key set cache
)

type Cache struct {
	TTL          time.Duration `mapstructure:"ttl"`            // Key set cache TTL duration (ex: "5m", "1h", "24h")
	MaxLocalSize int           `mapstructure:"max_local_size"` // Maximum number of cached key sets
}

type Config struct {
	RSABits   int    `mapstructure:"rsa_bits"`   // RSABits is the modulus size for generated RSA keys (2048 or 4096)
	OutputDir string `mapstructure:"output_dir"` // OutputDir is where generated PEM files are written
	KeyUse    string `mapstructure:"key_use"`    // KeyUse is the default "use" value stamped on assembled JWKs
	Cache     *Cache `mapstructure:"cache"`      // Cache is the key set cache configuration
}

// NewConfig initializes and returns the configuration. It ensures that the config is loaded only once.
func NewConfig() (*Config, error) {
	var err error
	once.Do(func() {
		instance = &Config{}
		err = instance.LoadConfig()
	})
	return instance, err
}

// LoadConfig attempts to load configuration from a file or uses default values if not found.
func (c *Config) LoadConfig() error {
	// Set default config file name and path (yaml, json or toml or ...)
	configName := utils.GetEnv("CONFIG_NAME", "config") // Configuration file name without extension
	configPath := utils.GetEnv("CONFIG_PATH", ".")      // Configuration file path, default to current directory

	// Set environment variable handling first
	viper.SetEnvPrefix("jwkforge") // Set the environment variable prefix ex: "JWKFORGE_"
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.AddConfigPath("/etc/jwkforge/")
	viper.AddConfigPath(configPath)
	viper.SetConfigName(configName)

	// Set default values
	viper.SetDefault("rsa_bits", rsaBits)
	viper.SetDefault("output_dir", outputDir)
	viper.SetDefault("key_use", keyUse)
	viper.SetDefault("cache.ttl", cacheTTL)
	viper.SetDefault("cache.max_local_size", cacheMaxLocalSize)

	// Explicitly bind all config keys to environment variables
	_ = viper.BindEnv("rsa_bits")   // JWKFORGE_RSA_BITS
	_ = viper.BindEnv("output_dir") // JWKFORGE_OUTPUT_DIR
	_ = viper.BindEnv("key_use")    // JWKFORGE_KEY_USE

	// Cache settings
	_ = viper.BindEnv("cache.ttl")            // JWKFORGE_CACHE_TTL
	_ = viper.BindEnv("cache.max_local_size") // JWKFORGE_CACHE_MAX_LOCAL_SIZE

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; rely on defaults
		} else {
			return fmt.Errorf("problem reading config file: %w", err)
		}
	}

	if err := viper.Unmarshal(c); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return c.Validate()
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.RSABits != 2048 && c.RSABits != 4096 {
		return fmt.Errorf("rsa_bits must be 2048 or 4096, got %d", c.RSABits)
	}

	if c.OutputDir == "" {
		return errors.New("output_dir is required")
	}

	if c.Cache != nil {
		if c.Cache.TTL <= 0 {
			return errors.New("cache ttl must be positive")
		}
		if c.Cache.MaxLocalSize <= 0 {
			return errors.New("cache max_local_size must be positive")
		}
	}

	return nil
}
