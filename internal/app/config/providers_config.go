package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "suomicast/internal/app/errors"
)

// ProvidersConfig represents the configuration for all content providers
type ProvidersConfig struct {
	DefaultProvider string                    `yaml:"default_provider"`
	Providers       map[string]ProviderConfig `yaml:"providers"`
	Translation     TranslationConfig         `yaml:"translation,omitempty"`
}

// ProviderConfig represents configuration for a single provider
type ProviderConfig struct {
	Type        string                 `yaml:"type"`
	Enabled     bool                   `yaml:"enabled"`
	Auth        map[string]interface{} `yaml:"auth,omitempty"`
	Settings    map[string]interface{} `yaml:"settings,omitempty"`
	Performance PerformanceConfig      `yaml:"performance,omitempty"`
	Retry       RetryConfig            `yaml:"retry,omitempty"`
}

// PerformanceConfig represents performance settings for a provider
type PerformanceConfig struct {
	TimeoutSec   int `yaml:"timeout_sec,omitempty"`
	RateLimitRPM int `yaml:"rate_limit_rpm,omitempty"`
}

// RetryConfig represents retry settings for a provider
type RetryConfig struct {
	MaxAttempts int `yaml:"max_attempts,omitempty"`
	BackoffSec  int `yaml:"backoff_sec,omitempty"`
}

// TranslationConfig selects which provider serves segment translations
type TranslationConfig struct {
	Provider string `yaml:"provider,omitempty"`
}

// LoadProvidersConfig loads provider configuration from a YAML file
func LoadProvidersConfig(configPath string) (*ProvidersConfig, error) {
	configPath = os.ExpandEnv(configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config ProvidersConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config.expandEnvironmentVariables()
	config.setDefaults()

	if err := config.Validate(); err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidConfig, "%s: %v", configPath, err)
	}

	return &config, nil
}

// SaveProvidersConfig saves provider configuration to a YAML file
func SaveProvidersConfig(config *ProvidersConfig, configPath string) error {
	configPath = os.ExpandEnv(configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// expandEnvironmentVariables expands ${VAR} placeholders in auth and settings
func (c *ProvidersConfig) expandEnvironmentVariables() {
	for _, provider := range c.Providers {
		for key, value := range provider.Auth {
			if strValue, ok := value.(string); ok {
				if strings.HasPrefix(strValue, "${") && strings.HasSuffix(strValue, "}") {
					envVar := strings.TrimSuffix(strings.TrimPrefix(strValue, "${"), "}")
					provider.Auth[key] = os.Getenv(envVar)
				}
			}
		}

		for key, value := range provider.Settings {
			if strValue, ok := value.(string); ok {
				if strings.HasPrefix(strValue, "${") && strings.HasSuffix(strValue, "}") {
					envVar := strings.TrimSuffix(strings.TrimPrefix(strValue, "${"), "}")
					provider.Settings[key] = os.Getenv(envVar)
				}
			}
		}
	}
}

// setDefaults sets default values for the configuration
func (c *ProvidersConfig) setDefaults() {
	if c.DefaultProvider == "" && len(c.Providers) > 0 {
		if _, ok := c.Providers["gemini"]; ok {
			c.DefaultProvider = "gemini"
		} else {
			for name, provider := range c.Providers {
				if provider.Enabled {
					c.DefaultProvider = name
					break
				}
			}
		}
	}

	if c.Translation.Provider == "" {
		c.Translation.Provider = c.DefaultProvider
	}

	for name, provider := range c.Providers {
		if provider.Performance.TimeoutSec == 0 {
			provider.Performance.TimeoutSec = 300
		}
		if provider.Retry.MaxAttempts == 0 {
			provider.Retry.MaxAttempts = 3
		}
		if provider.Retry.BackoffSec == 0 {
			provider.Retry.BackoffSec = 2
		}
		c.Providers[name] = provider
	}
}

// Validate validates the configuration
func (c *ProvidersConfig) Validate() error {
	hasEnabledProvider := false
	for _, provider := range c.Providers {
		if provider.Enabled {
			hasEnabledProvider = true
			break
		}
	}
	if !hasEnabledProvider {
		return fmt.Errorf("at least one provider must be enabled")
	}

	if c.DefaultProvider != "" {
		provider, exists := c.Providers[c.DefaultProvider]
		if !exists {
			return fmt.Errorf("default provider '%s' does not exist", c.DefaultProvider)
		}
		if !provider.Enabled {
			return fmt.Errorf("default provider '%s' is not enabled", c.DefaultProvider)
		}
	}

	validTypes := map[string]bool{
		"gemini": true,
		"openai": true,
	}
	for name, provider := range c.Providers {
		if !validTypes[provider.Type] {
			return fmt.Errorf("invalid provider type '%s' for provider '%s'", provider.Type, name)
		}
	}

	if c.Translation.Provider != "" {
		if _, exists := c.Providers[c.Translation.Provider]; !exists {
			return fmt.Errorf("translation provider '%s' does not exist", c.Translation.Provider)
		}
	}

	return nil
}

// ProviderEnabled reports whether the named provider exists and is enabled.
func (c *ProvidersConfig) ProviderEnabled(name string) bool {
	provider, ok := c.Providers[name]
	return ok && provider.Enabled
}

// TranslationProvider returns the provider name serving segment translations,
// falling back to the default provider when no override is set.
func (c *ProvidersConfig) TranslationProvider() string {
	if c.Translation.Provider != "" {
		return c.Translation.Provider
	}
	return c.DefaultProvider
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() string {
	if path := os.Getenv("PROVIDERS_CONFIG_PATH"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "providers.yaml"
	}

	return filepath.Join(home, ".suomicast", "providers.yaml")
}

// CreateDefaultConfig creates a default configuration
func CreateDefaultConfig() *ProvidersConfig {
	return &ProvidersConfig{
		DefaultProvider: "gemini",
		Providers: map[string]ProviderConfig{
			"gemini": {
				Type:    "gemini",
				Enabled: true,
				Auth: map[string]interface{}{
					"api_key": "${GEMINI_API_KEY}",
				},
				Settings: map[string]interface{}{
					"script_model": "gemini-3-flash-preview",
					"speech_model": "gemini-2.5-flash-preview-tts",
				},
				Performance: PerformanceConfig{
					TimeoutSec: 300,
				},
			},
			"openai": {
				Type:    "openai",
				Enabled: false,
				Auth: map[string]interface{}{
					"api_key": "${OPENAI_API_KEY}",
				},
				Settings: map[string]interface{}{
					"model": "gpt-4o-mini",
				},
				Performance: PerformanceConfig{
					TimeoutSec:   60,
					RateLimitRPM: 50,
				},
			},
		},
		Translation: TranslationConfig{Provider: "gemini"},
	}
}
