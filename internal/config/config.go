package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

// globalConfig stores the configuration loaded with command-line overrides.
// This allows other packages to access the same configuration that was
// loaded by the CLI entry point.
var (
	globalConfig *Config
	configMutex  sync.Mutex
)

// Config holds the application configuration.
type Config struct {
	Logging LoggingConfig `json:"logging"`
	Profile ProfileConfig `json:"profile"`
}

// LoadOptions holds command-line override options.
type LoadOptions struct {
	LogLevel    string
	ProfilePath string
	OutputFmt   string
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level        string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format       string `json:"format" env:"LOG_FORMAT" default:"text"`
	EnableCaller bool   `json:"enableCaller" env:"LOG_ENABLE_CALLER" default:"false"`
	File         string `json:"file" env:"LOG_FILE" default:""`
}

// ProfileConfig holds device-profile and output configuration.
type ProfileConfig struct {
	// Path names a directory or file of YAML device profiles. rdmtool does
	// not read it; the simulate subcommand takes its own -profile-dir flag.
	Path string `json:"path" env:"RDMTOOL_PROFILE_PATH" default:"./profiles"`
	// OutputFormat names a rendering format, "text" or "json". rdmtool
	// does not read it; encode and decode always print text.
	OutputFormat string `json:"outputFormat" env:"RDMTOOL_OUTPUT_FORMAT" default:"text"`
}

// Load loads configuration from environment variables with defaults.
func Load() (*Config, error) {
	return LoadWithOverrides(LoadOptions{})
}

// LoadWithOverrides loads configuration with command-line overrides.
func LoadWithOverrides(opts LoadOptions) (*Config, error) {
	config := &Config{}

	config.Logging.Level = getOverrideOrEnv(opts.LogLevel, "LOG_LEVEL", "info")
	config.Logging.Format = getEnvWithDefault("LOG_FORMAT", "text")
	config.Logging.EnableCaller = getBoolWithDefault("LOG_ENABLE_CALLER", false)
	config.Logging.File = getEnvWithDefault("LOG_FILE", "")

	config.Profile.Path = getOverrideOrEnv(opts.ProfilePath, "RDMTOOL_PROFILE_PATH", "./profiles")
	config.Profile.OutputFormat = getOverrideOrEnv(opts.OutputFmt, "RDMTOOL_OUTPUT_FORMAT", "text")

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	configMutex.Lock()
	globalConfig = config
	configMutex.Unlock()

	return config, nil
}

// GetGlobalConfig returns the globally stored configuration. This should be
// used by packages that need access to the configuration loaded by the CLI
// entry point with command-line overrides.
func GetGlobalConfig() *Config {
	configMutex.Lock()
	defer configMutex.Unlock()
	return globalConfig
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}

	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	if c.Profile.Path == "" {
		return fmt.Errorf("profile path cannot be empty")
	}

	validOutputFormats := map[string]bool{
		"text": true,
		"json": true,
	}

	if !validOutputFormats[c.Profile.OutputFormat] {
		return fmt.Errorf("invalid output format: %s", c.Profile.OutputFormat)
	}

	return nil
}

// Helper functions for environment variable parsing
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getOverrideOrEnv returns command-line override value, env value, or default
func getOverrideOrEnv(override, envKey, defaultValue string) string {
	if override != "" {
		return override
	}
	return getEnvWithDefault(envKey, defaultValue)
}
