package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateIGDB(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateIGDB() error {
	if c.IGDB.ClientID == "" {
		return credentialError("igdb.client_id", "IGDB_CLIENT_ID")
	}
	if c.IGDB.ClientSecret == "" {
		return credentialError("igdb.client_secret", "IGDB_CLIENT_SECRET")
	}
	if _, err := url.Parse(c.IGDB.APIURL); err != nil {
		return fmt.Errorf("igdb.api_url: %w", err)
	}
	if _, err := url.Parse(c.IGDB.AuthURL); err != nil {
		return fmt.Errorf("igdb.auth_url: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return errors.New("logging.level must be one of debug, info, warn, error")
	}
}

func credentialError(key, envVar string) error {
	defaultPath, err := DefaultConfigPath()
	if err != nil {
		defaultPath = "~/.config/gamedex/config.toml"
	}
	return fmt.Errorf("%s is required. Set %s env var or edit %s (create with 'gamedex config init')", key, envVar, defaultPath)
}
