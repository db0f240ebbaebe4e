package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file created in the user's home
// directory when none exists.
const DefaultFileName = ".quickbites-admin.yaml"

// Config represents the application configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	Auth   AuthConfig   `yaml:"auth"`
	Format FormatConfig `yaml:"format"`
}

// ServerConfig contains backend connection settings
type ServerConfig struct {
	URL     string `yaml:"url"`
	Timeout string `yaml:"timeout"`
}

// AuthConfig contains the persisted session: the raw bearer token and
// the JSON-serialized operator profile, mirroring the two values the
// dashboard kept in browser storage.
type AuthConfig struct {
	Token string `yaml:"token"`
	User  string `yaml:"user"`
}

// FormatConfig contains output formatting settings
type FormatConfig struct {
	Default string `yaml:"default"`
	Colors  bool   `yaml:"colors"`
}

var (
	globalConfig *Config
	configPath   string
	debug        bool
	outputFormat string
)

// Initialize loads the configuration from file
func Initialize(configFile string) error {
	if configFile != "" {
		viper.SetConfigFile(configFile)
		configPath = configFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("could not get home directory: %w", err)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".quickbites-admin")
		configPath = filepath.Join(home, DefaultFileName)
	}

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if err := createDefaultConfig(configPath); err != nil {
				return fmt.Errorf("could not create default config: %w", err)
			}
			viper.SetConfigFile(configPath)
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("could not read config file: %w", err)
			}
		} else {
			return fmt.Errorf("could not read config file: %w", err)
		}
	}

	globalConfig = &Config{}
	if err := viper.Unmarshal(globalConfig); err != nil {
		return fmt.Errorf("could not unmarshal config: %w", err)
	}

	// Auth values set at runtime bypass the mapstructure pass, so sync
	// them from viper explicitly.
	globalConfig.Auth.Token = viper.GetString("auth.token")
	globalConfig.Auth.User = viper.GetString("auth.user")

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("server.url", "http://localhost:5000")
	viper.SetDefault("server.timeout", "30s")
	viper.SetDefault("auth.token", "")
	viper.SetDefault("auth.user", "")
	viper.SetDefault("format.default", "table")
	viper.SetDefault("format.colors", true)
}

// createDefaultConfig creates a default configuration file
func createDefaultConfig(path string) error {
	defaultConfig := Config{
		Server: ServerConfig{
			URL:     "http://localhost:5000",
			Timeout: "30s",
		},
		Auth: AuthConfig{},
		Format: FormatConfig{
			Default: "table",
			Colors:  true,
		},
	}

	data, err := yaml.Marshal(defaultConfig)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// Get returns the global configuration
func Get() *Config {
	if globalConfig == nil {
		globalConfig = &Config{}
	}
	return globalConfig
}

// Path returns the location of the loaded configuration file
func Path() string {
	return configPath
}

// Timeout returns the configured request timeout, falling back to 30s
// when the configured value does not parse.
func Timeout() time.Duration {
	cfg := Get()
	d, err := time.ParseDuration(cfg.Server.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// Save saves the current configuration to file
func Save() error {
	if globalConfig == nil {
		return fmt.Errorf("no configuration to save")
	}

	data, err := yaml.Marshal(globalConfig)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

// Set updates a configuration value and persists it
func Set(key, value string) error {
	if globalConfig == nil {
		return fmt.Errorf("configuration not initialized")
	}

	switch key {
	case "server.url":
		globalConfig.Server.URL = value
	case "server.timeout":
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid timeout %q: %w", value, err)
		}
		globalConfig.Server.Timeout = value
	case "format.default":
		globalConfig.Format.Default = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	viper.Set(key, value)
	return Save()
}

// SetDebug sets the debug mode
func SetDebug(enabled bool) {
	debug = enabled
}

// IsDebug returns whether debug mode is enabled
func IsDebug() bool {
	return debug
}

// SetOutputFormat sets the output format
func SetOutputFormat(format string) {
	outputFormat = format
}

// GetOutputFormat returns the current output format
func GetOutputFormat() string {
	if outputFormat != "" {
		return outputFormat
	}
	if globalConfig != nil && globalConfig.Format.Default != "" {
		return globalConfig.Format.Default
	}
	return "table"
}

// UpdateAuth persists a new session: the bearer token and the
// serialized operator profile are written together.
func UpdateAuth(token, userJSON string) error {
	if globalConfig == nil {
		return fmt.Errorf("configuration not initialized")
	}

	viper.Set("auth.token", token)
	viper.Set("auth.user", userJSON)

	globalConfig.Auth.Token = token
	globalConfig.Auth.User = userJSON

	return Save()
}

// ClearAuth clears the persisted session
func ClearAuth() error {
	return UpdateAuth("", "")
}
