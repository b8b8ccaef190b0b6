package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load loads configuration from an optional JSON file and applies environment
// variable overrides. Validation is deferred so CLI flag overrides can be
// applied first; call cfg.Validate() afterwards.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		fileConfig, err := loadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = fileConfig
	}

	applyEnvironmentOverrides(cfg)

	return cfg, nil
}

// LoadFromEnvironment creates a configuration using only environment
// variables. Validation is deferred, as with Load.
func LoadFromEnvironment() (*Config, error) {
	cfg := DefaultConfig()
	applyEnvironmentOverrides(cfg)
	return cfg, nil
}

// loadFromFile loads configuration from a JSON file.
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigFileNotFound
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfigFormat, err)
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultConfig().APIBaseURL
	}

	return cfg, nil
}

// applyEnvironmentOverrides applies configuration from environment variables.
func applyEnvironmentOverrides(cfg *Config) {
	if token := os.Getenv("WEBEX_ACCESS_TOKEN"); token != "" {
		cfg.AccessToken = token
	}

	if baseURL := os.Getenv("WEBEX_API_BASE_URL"); baseURL != "" {
		cfg.APIBaseURL = baseURL
	}

	if issuerID := os.Getenv("WEBEX_GUEST_ISSUER_ID"); issuerID != "" {
		cfg.GuestIssuerID = issuerID
	}

	if secret := os.Getenv("WEBEX_GUEST_ISSUER_SECRET"); secret != "" {
		cfg.GuestIssuerSecret = secret
	}

	if addr := os.Getenv("MCP_HTTP_ADDR"); addr != "" {
		cfg.HTTPAddr = addr
	}

	if debug := os.Getenv("MCP_DEBUG"); debug == "true" || debug == "1" {
		cfg.Debug = true
	}

	if logLevel := os.Getenv("MCP_LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}
}
