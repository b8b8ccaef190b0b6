package config

import "webex-mcp/internal/webex"

// Config holds all configuration for the Webex MCP server.
type Config struct {
	AccessToken       string `json:"accessToken"`
	APIBaseURL        string `json:"apiBaseUrl"`
	GuestIssuerID     string `json:"guestIssuerId"`
	GuestIssuerSecret string `json:"guestIssuerSecret"`
	HTTPAddr          string `json:"httpAddr"` // empty means stdio transport only
	Debug             bool   `json:"debug"`
	LogLevel          string `json:"logLevel"`
}

// Validate checks if the configuration is valid.
//
// Credentials are deliberately not checked here: the client handle is built
// lazily, so a missing token surfaces as a tool failure on first invocation
// rather than preventing startup.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return ErrMissingAPIBaseURL
	}
	return nil
}

// HasCredentials reports whether any usable Webex credential is configured.
func (c *Config) HasCredentials() bool {
	return c.AccessToken != "" || (c.GuestIssuerID != "" && c.GuestIssuerSecret != "")
}

// Credentials maps the configuration onto the client credential set.
func (c *Config) Credentials() webex.Credentials {
	return webex.Credentials{
		BaseURL:           c.APIBaseURL,
		AccessToken:       c.AccessToken,
		GuestIssuerID:     c.GuestIssuerID,
		GuestIssuerSecret: c.GuestIssuerSecret,
	}
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		APIBaseURL: webex.DefaultBaseURL,
		Debug:      false,
		LogLevel:   "info",
	}
}
